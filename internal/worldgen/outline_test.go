package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

func TestOutlineClassification(t *testing.T) {
	cases := []struct {
		name               string
		altitude, moisture float64
		want               world.Biome
	}{
		{"dry lowland", 0.2, 0.1, world.Desert},
		{"wet lowland", 0.2, 0.9, world.Prairie},
		{"dry highland", 0.9, 0.5, world.Mountain},
		{"wet highland", 0.9, 0.6, world.Forest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(16)
			cells := generateOutline(cfg, flatRaw(cfg.Size(), tc.altitude, tc.moisture), core.NewRNG(1))
			for _, c := range cells.Cells() {
				assert.Equal(t, tc.want, c.Biome)
			}
		})
	}
}

func TestOutlineDecorations(t *testing.T) {
	cfg := testConfig(32)
	cfg.Params.ForestTreeProbability = 0
	cells := generateOutline(cfg, flatRaw(cfg.Size(), 0.9, 0.9), core.NewRNG(1))
	for i, c := range cells.Cells() {
		pos := cells.Position(i)
		if cells.IsBorder(pos) {
			assert.Equal(t, world.DecorationTree, c.Decoration, "border forest must be dense at %v", pos)
		} else {
			assert.Equal(t, world.DecorationNone, c.Decoration)
		}
	}

	cfg.Params.PrairieHerbProbability = 1
	cells = generateOutline(cfg, flatRaw(cfg.Size(), 0.1, 1), core.NewRNG(1))
	for _, c := range cells.Cells() {
		assert.Equal(t, world.DecorationHerb, c.Decoration)
	}

	cells = generateOutline(cfg, flatRaw(cfg.Size(), 0.9, 0.5), core.NewRNG(1))
	for _, c := range cells.Cells() {
		assert.Equal(t, world.DecorationNone, c.Decoration, "mountains get cliffs later")
	}
}
