package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OCharnyshevich/bedrockmate/internal/finder"
)

func TestStructure_Known(t *testing.T) {
	info := Structure("village")
	if info.Name != "Village" {
		t.Fatalf("name = %q, want Village", info.Name)
	}
	if info.Icon == "" {
		t.Fatal("icon is empty")
	}
}

func TestStructure_Unknown(t *testing.T) {
	info := Structure("stronghold")
	if info.Name != "stronghold" {
		t.Fatalf("name = %q, want passthrough", info.Name)
	}
	if info.Icon != "📍" {
		t.Fatalf("icon = %q, want default", info.Icon)
	}
}

func TestBiome_AllFinderNamesCovered(t *testing.T) {
	for kind := finder.BiomePlains; kind <= finder.BiomeMountain; kind++ {
		if _, ok := biomes[kind.String()]; !ok {
			t.Errorf("biome %q has no display metadata", kind)
		}
	}
}

func TestJobTypes(t *testing.T) {
	types := JobTypes()
	if len(types) != 4 {
		t.Fatalf("len = %d, want 4", len(types))
	}
	if types[0].Type != "structures" {
		t.Fatalf("first type = %q, want structures", types[0].Type)
	}
	for _, jt := range types {
		if jt.Name == "" || jt.Icon == "" {
			t.Errorf("job type %q missing name or icon", jt.Type)
		}
	}

	// Mutating the returned slice must not affect later calls.
	types[0].Name = "mutated"
	if JobTypes()[0].Name == "mutated" {
		t.Fatal("JobTypes returned shared backing storage")
	}
}

func TestCategoryIcon(t *testing.T) {
	if CategoryIcon("farm") != "🌾" {
		t.Fatal("farm icon mismatch")
	}
	if CategoryIcon("nope") != "📍" {
		t.Fatal("unknown category should use default icon")
	}
}

func TestDimensionName(t *testing.T) {
	if DimensionName("nether") != "The Nether" {
		t.Fatal("nether display name mismatch")
	}
	if DimensionName("aether") != "aether" {
		t.Fatal("unknown dimension should pass through")
	}
}

func TestLoadBiomeNames(t *testing.T) {
	dir := t.TempDir()
	data := `[
		{"id": 21, "name": "jungle", "displayName": "Jungle Edge"},
		{"id": 999, "name": "void", "displayName": "The Void"}
	]`
	if err := os.WriteFile(filepath.Join(dir, "biomes.json"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	orig := biomes["jungle"]
	defer func() { biomes["jungle"] = orig }()

	if err := LoadBiomeNames(dir); err != nil {
		t.Fatalf("LoadBiomeNames: %v", err)
	}
	if got := Biome("jungle").Name; got != "Jungle Edge" {
		t.Fatalf("jungle name = %q, want override applied", got)
	}
	if _, ok := biomes["void"]; ok {
		t.Fatal("unknown biome should not be added")
	}
}

func TestLoadBiomeNames_MissingFile(t *testing.T) {
	if err := LoadBiomeNames(t.TempDir()); err == nil {
		t.Fatal("expected error for missing biomes.json")
	}
}
