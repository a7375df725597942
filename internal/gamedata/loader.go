package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// dataBiome mirrors the minecraft-data biomes.json entries.
type dataBiome struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// LoadBiomeNames reads biomes.json from a minecraft-data checkout and
// overrides the builtin biome display names for matching entries. It is
// a no-op for biome names the finder does not produce.
func LoadBiomeNames(dir string) error {
	raw, err := os.ReadFile(filepath.Join(dir, "biomes.json"))
	if err != nil {
		return fmt.Errorf("read biomes.json: %w", err)
	}
	var entries []dataBiome
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse biomes.json: %w", err)
	}
	for _, e := range entries {
		if info, ok := biomes[e.Name]; ok && e.DisplayName != "" {
			info.Name = e.DisplayName
			biomes[e.Name] = info
		}
	}
	return nil
}
