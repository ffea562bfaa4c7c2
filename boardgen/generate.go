// Package boardgen builds sample towns: noise-generated grids for load and
// fuzz testing, and a set of hand-built examples.
package boardgen

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/signalnine/townscore/board"
)

// GenConfig holds town generation parameters.
type GenConfig struct {
	Rows         int
	Cols         int
	Seed         int64   // Random seed (0 = random)
	EmptyLevel   float64 // Occupancy below this leaves the cell empty (0.0–1.0)
	ResourceBand float64 // Occupancy band above EmptyLevel that holds resources
}

// DefaultGenConfig returns a 4x4 town with a few gaps.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Rows:         4,
		Cols:         4,
		Seed:         0,
		EmptyLevel:   0.30,
		ResourceBand: 0.10,
	}
}

// Generate fills a grid from three noise layers: occupancy decides between
// empty, resource and building; the other two pick the color or resource.
// The same seed always yields the same grid.
func Generate(cfg GenConfig) *board.Grid {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	occupancy := opensimplex.NewNormalized(seed)
	colors := opensimplex.NewNormalized(seed + 1)
	resources := opensimplex.NewNormalized(seed + 2)

	g := board.New(cfg.Rows, cfg.Cols)
	for i := 0; i < g.Len(); i++ {
		x, y := float64(g.Col(i)), float64(g.Row(i))

		occ := octaveNoise(occupancy, x, y, 3, 0.45, 0.5)
		switch {
		case occ < cfg.EmptyLevel:
			continue
		case occ < cfg.EmptyLevel+cfg.ResourceBand:
			r := bucket(resources.Eval2(x*0.9, y*0.9), board.NumResources)
			g.Place(i, board.ResourceCell(board.Resource(r)))
		default:
			// A high frequency keeps neighboring colors varied.
			c := bucket(colors.Eval2(x*1.7, y*1.7), board.NumColors)
			g.Place(i, board.Building(board.Color(c)))
		}
	}
	return g
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// bucket maps v in [0, 1] to one of n buckets.
func bucket(v float64, n int) int {
	b := int(v * float64(n))
	if b < 0 {
		return 0
	}
	if b >= n {
		return n - 1
	}
	return b
}
