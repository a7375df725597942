// Package report builds the JSON result envelopes shared by the CLI and
// by stored job results.
package report

import (
	"math"
	"sort"

	"github.com/OCharnyshevich/bedrockmate/internal/finder"
)

// Structure is one found structure with its distance from the search
// center.
type Structure struct {
	Type     string  `json:"structure_type"`
	X        int32   `json:"x"`
	Z        int32   `json:"z"`
	Distance float64 `json:"distance"`
}

// StructureSearch is the envelope for structure and nether searches.
type StructureSearch struct {
	Seed       int64       `json:"seed"`
	CenterX    int32       `json:"center_x"`
	CenterZ    int32       `json:"center_z"`
	Radius     int32       `json:"radius"`
	Structures []Structure `json:"structures"`
}

// NewStructureSearch wraps finder results, sorted by distance from the
// center, nearest first.
func NewStructureSearch(seed int64, centerX, centerZ, radius int32, found []finder.Structure) StructureSearch {
	out := StructureSearch{
		Seed:       seed,
		CenterX:    centerX,
		CenterZ:    centerZ,
		Radius:     radius,
		Structures: make([]Structure, 0, len(found)),
	}
	for _, s := range found {
		out.Structures = append(out.Structures, Structure{
			Type:     s.Kind.String(),
			X:        s.X,
			Z:        s.Z,
			Distance: distance(s.X, s.Z, centerX, centerZ),
		})
	}
	sort.SliceStable(out.Structures, func(i, j int) bool {
		return out.Structures[i].Distance < out.Structures[j].Distance
	})
	return out
}

// BiomeSearch is the envelope for nearest-biome searches. Position fields
// are present only when Found.
type BiomeSearch struct {
	Seed     int64    `json:"seed"`
	Target   string   `json:"target_biome"`
	Found    bool     `json:"found"`
	X        *int32   `json:"x,omitempty"`
	Z        *int32   `json:"z,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

// NewBiomeSearch wraps a nearest-biome result.
func NewBiomeSearch(seed int64, target string, match finder.BiomeMatch, found bool) BiomeSearch {
	out := BiomeSearch{Seed: seed, Target: target, Found: found}
	if found {
		out.X = &match.X
		out.Z = &match.Z
		out.Distance = &match.Distance
	}
	return out
}

// ChunkPos is a slime chunk center in block coordinates.
type ChunkPos struct {
	X int32 `json:"x"`
	Z int32 `json:"z"`
}

// SlimeSearch is the envelope for slime chunk maps.
type SlimeSearch struct {
	CenterX     int32      `json:"center_x"`
	CenterZ     int32      `json:"center_z"`
	Radius      int32      `json:"radius"`
	SlimeChunks []ChunkPos `json:"slime_chunks"`
}

// NewSlimeSearch wraps slime chunk results, truncated to limit entries
// when limit is positive.
func NewSlimeSearch(centerX, centerZ, radius int32, chunks []finder.SlimeChunk, limit int) SlimeSearch {
	if limit > 0 && len(chunks) > limit {
		chunks = chunks[:limit]
	}
	out := SlimeSearch{
		CenterX:     centerX,
		CenterZ:     centerZ,
		Radius:      radius,
		SlimeChunks: make([]ChunkPos, 0, len(chunks)),
	}
	for _, c := range chunks {
		out.SlimeChunks = append(out.SlimeChunks, ChunkPos{X: c.X, Z: c.Z})
	}
	return out
}

func distance(x, z, centerX, centerZ int32) float64 {
	dx := float64(x) - float64(centerX)
	dz := float64(z) - float64(centerZ)
	return math.Sqrt(dx*dx + dz*dz)
}
