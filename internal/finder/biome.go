package finder

import "strings"

// BiomeKind identifies a terrain label produced by the classifier.
type BiomeKind int

const (
	BiomePlains BiomeKind = iota
	BiomeForest
	BiomeJungle
	BiomeDesert
	BiomeMesa
	BiomeMushroom
	BiomeIceSpikes
	BiomeSwamp
	BiomeSavanna
	BiomeTaiga
	BiomeSnowyTaiga
	BiomeOcean
	BiomeDeepOcean
	BiomeBeach
	BiomeRiver
	BiomeMountain
)

var biomeNames = [...]string{
	BiomePlains:     "plains",
	BiomeForest:     "forest",
	BiomeJungle:     "jungle",
	BiomeDesert:     "desert",
	BiomeMesa:       "mesa",
	BiomeMushroom:   "mushroom",
	BiomeIceSpikes:  "ice_spikes",
	BiomeSwamp:      "swamp",
	BiomeSavanna:    "savanna",
	BiomeTaiga:      "taiga",
	BiomeSnowyTaiga: "snowy_taiga",
	BiomeOcean:      "ocean",
	BiomeDeepOcean:  "deep_ocean",
	BiomeBeach:      "beach",
	BiomeRiver:      "river",
	BiomeMountain:   "mountain",
}

func (b BiomeKind) String() string {
	if b < 0 || int(b) >= len(biomeNames) {
		return "unknown"
	}
	return biomeNames[b]
}

// biomeAliases covers the alternate names players know some biomes by.
var biomeAliases = map[string]BiomeKind{
	"badlands":        BiomeMesa,
	"mushroom_fields": BiomeMushroom,
	"icespikes":       BiomeIceSpikes,
	"extreme_hills":   BiomeMountain,
}

// ParseBiomeKind resolves a case-insensitive biome name or alias. Unknown
// names report ok=false.
func ParseBiomeKind(s string) (BiomeKind, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for b, n := range biomeNames {
		if n == name {
			return BiomeKind(b), true
		}
	}
	if b, ok := biomeAliases[name]; ok {
		return b, true
	}
	return 0, false
}

// Rarity scores how uncommon a biome is, in [0, 1]. It only selects the
// sampling density of nearest-biome searches and plays no part in
// classification.
func (b BiomeKind) Rarity() float64 {
	switch b {
	case BiomePlains, BiomeForest:
		return 0.1
	case BiomeJungle:
		return 0.6
	case BiomeDesert, BiomeSwamp, BiomeSavanna, BiomeDeepOcean:
		return 0.3
	case BiomeMesa:
		return 0.8
	case BiomeMushroom:
		return 0.95
	case BiomeIceSpikes:
		return 0.85
	case BiomeTaiga, BiomeOcean, BiomeBeach, BiomeRiver:
		return 0.2
	case BiomeSnowyTaiga, BiomeMountain:
		return 0.4
	default:
		return 1.0
	}
}

func temperatureAt(seed int64, x, z int32) float64 {
	return octaveField(seed, float64(x)/256.0, float64(z)/256.0)
}

func humidityAt(seed int64, x, z int32) float64 {
	return octaveField(seed+50000, float64(x)/256.0, float64(z)/256.0)
}

func continentalnessAt(seed int64, x, z int32) float64 {
	return fieldNoise(seed+100000, int32(float64(x)/512.0), int32(float64(z)/512.0))
}

// BiomeAt labels a block coordinate with exactly one biome. The branch
// order and every threshold are fixed contract; reordering branches or
// loosening a strict comparison changes classifications.
func BiomeAt(seed int64, x, z int32) BiomeKind {
	temp := temperatureAt(seed, x, z)
	humidity := humidityAt(seed, x, z)
	cont := continentalnessAt(seed, x, z)

	if cont < -0.2 {
		if cont < -0.5 {
			return BiomeDeepOcean
		}
		return BiomeOcean
	}

	if cont < 0.0 {
		if humidity > 0.7 {
			return BiomeRiver
		}
		return BiomeBeach
	}

	// Cold band.
	if temp < 0.2 {
		if humidity < 0.3 {
			if fieldNoise(seed+200000, x/256, z/256) > 0.9 {
				return BiomeIceSpikes
			}
			return BiomeSnowyTaiga
		}
		return BiomeTaiga
	}

	// Temperate band.
	if temp < 0.6 {
		if humidity > 0.7 {
			return BiomeSwamp
		}
		if humidity > 0.4 {
			return BiomeForest
		}
		if cont > 0.5 {
			return BiomeMountain
		}
		return BiomePlains
	}

	// Hot band.
	if humidity > 0.6 {
		if fieldNoise(seed+300000, x/512, z/512) > 0.7 {
			return BiomeJungle
		}
		return BiomeSavanna
	}

	if humidity < 0.3 {
		if fieldNoise(seed+400000, x/1024, z/1024) > 0.85 {
			return BiomeMesa
		}
		return BiomeDesert
	}

	// Mushroom islands only appear near the coast.
	if cont < 0.1 {
		if fieldNoise(seed+500000, x/2048, z/2048) > 0.95 {
			return BiomeMushroom
		}
	}

	return BiomeSavanna
}
