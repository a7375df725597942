package finder

import (
	"fmt"
	"strings"
)

// StructureKind identifies a placeable structure type.
type StructureKind int

const (
	Village StructureKind = iota
	PillagerOutpost
	OceanMonument
	WoodlandMansion
	NetherFortress
	BastionRemnant
	Igloo
	WitchHut
	Shipwreck
	BuriedTreasure
)

var structureNames = [...]string{
	Village:         "village",
	PillagerOutpost: "pillager_outpost",
	OceanMonument:   "ocean_monument",
	WoodlandMansion: "woodland_mansion",
	NetherFortress:  "nether_fortress",
	BastionRemnant:  "bastion_remnant",
	Igloo:           "igloo",
	WitchHut:        "witch_hut",
	Shipwreck:       "shipwreck",
	BuriedTreasure:  "buried_treasure",
}

func (k StructureKind) String() string {
	if k < 0 || int(k) >= len(structureNames) {
		return "unknown"
	}
	return structureNames[k]
}

// structureAliases maps the short selector names accepted on the command
// line onto kinds, in addition to the canonical names above.
var structureAliases = map[string]StructureKind{
	"outpost":  PillagerOutpost,
	"monument": OceanMonument,
	"mansion":  WoodlandMansion,
	"fortress": NetherFortress,
	"bastion":  BastionRemnant,
	"treasure": BuriedTreasure,
}

// ParseStructureKind resolves a case-insensitive structure name or alias.
// Unknown names report ok=false rather than an error so callers can treat
// a bad selector as "nothing found".
func ParseStructureKind(s string) (StructureKind, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range structureNames {
		if n == name {
			return StructureKind(k), true
		}
	}
	if k, ok := structureAliases[name]; ok {
		return k, true
	}
	return 0, false
}

// kindParams fixes the placement grid for one structure kind. Spacing and
// separation are in chunk units; the salt decorrelates kinds that would
// otherwise share a region grid.
type kindParams struct {
	spacing    int32
	separation int32
	salt       int64
}

func (p kindParams) validate() error {
	if p.spacing <= 0 {
		return fmt.Errorf("spacing %d must be positive", p.spacing)
	}
	if p.separation < 0 {
		return fmt.Errorf("separation %d must not be negative", p.separation)
	}
	if p.separation >= p.spacing {
		return fmt.Errorf("separation %d must be less than spacing %d", p.separation, p.spacing)
	}
	return nil
}

// kindTable holds the per-kind placement constants of Bedrock world
// generation. Nether fortress and bastion share spacing and salt;
// they are disambiguated by the quadrant roll in FindNetherStructures.
var kindTable = [...]kindParams{
	Village:         {spacing: 32, separation: 8, salt: 10387312},
	PillagerOutpost: {spacing: 80, separation: 40, salt: 165745296},
	OceanMonument:   {spacing: 32, separation: 5, salt: 10387313},
	WoodlandMansion: {spacing: 80, separation: 20, salt: 10387319},
	NetherFortress:  {spacing: 30, separation: 4, salt: 30084232},
	BastionRemnant:  {spacing: 30, separation: 4, salt: 30084232},
	Igloo:           {spacing: 32, separation: 8, salt: 14357618},
	WitchHut:        {spacing: 32, separation: 8, salt: 14357620},
	Shipwreck:       {spacing: 24, separation: 4, salt: 165745295},
	BuriedTreasure:  {spacing: 8, separation: 4, salt: 16842397},
}

func init() {
	// Reject malformed kind parameters before any query can run. A
	// separation >= spacing would make the jitter bound non-positive.
	for k, p := range kindTable {
		if err := p.validate(); err != nil {
			panic(fmt.Sprintf("finder: structure kind %s: %v", StructureKind(k), err))
		}
	}
}

// Structure is one placed feature emitted by a search. Coordinates are in
// block units.
type Structure struct {
	Kind StructureKind
	X, Z int32
}

// FindStructures returns every placement of kind within radius blocks of
// the center. One result per region grid cell at most; results follow
// region iteration order (x ascending, then z). An out-of-range kind
// yields an empty result.
func FindStructures(seed int64, centerX, centerZ, radius int32, kind StructureKind) []Structure {
	if kind < 0 || int(kind) >= len(kindTable) {
		return nil
	}
	p := kindTable[kind]

	// Regions overlapping the bounding square, padded by one region on
	// each side so boundary jitter cannot escape the scan.
	spacingBlocks := p.spacing * 16
	minRX := (centerX-radius)/spacingBlocks - 1
	maxRX := (centerX+radius)/spacingBlocks + 1
	minRZ := (centerZ-radius)/spacingBlocks - 1
	maxRZ := (centerZ+radius)/spacingBlocks + 1

	offsetRange := p.spacing - p.separation
	radiusSq := int64(radius) * int64(radius)

	var results []Structure
	for rx := minRX; rx <= maxRX; rx++ {
		for rz := minRZ; rz <= maxRZ; rz++ {
			state := regionSeed(seed, rx, rz, p.salt)
			offsetX := nextInt(&state, offsetRange)
			offsetZ := nextInt(&state, offsetRange)

			chunkX := rx*p.spacing + offsetX
			chunkZ := rz*p.spacing + offsetZ

			// Chunk-center convention for the block position.
			blockX := chunkX*16 + 8
			blockZ := chunkZ*16 + 8

			dx := int64(blockX - centerX)
			dz := int64(blockZ - centerZ)
			if dx*dx+dz*dz <= radiusSq {
				results = append(results, Structure{Kind: kind, X: blockX, Z: blockZ})
			}
		}
	}
	return results
}
