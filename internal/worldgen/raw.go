package worldgen

import (
	"frontier/internal/heightmap"
	"frontier/pkg/core"
)

// Raw holds the altitude and moisture fields. Both are normalized to [0, 1]
// and never modified once generated.
type Raw struct {
	Altitude *heightmap.Heightmap
	Moisture *heightmap.Heightmap
}

// Size reports the field dimensions.
func (r *Raw) Size() core.Size { return r.Altitude.Size() }

// generateRaw builds both fields from two noise sources seeded by rng,
// altitude first. Cells within Padding of a border are pulled toward high
// altitude so the world edge is never a basin.
func generateRaw(cfg Config, rng *core.RNG) *Raw {
	size := cfg.Size()
	p := cfg.Params

	altitude := heightmap.New(size)
	altitude.AddNoise(heightmap.NewPerlin(rng.Int64(), p.NoiseOctaves), p.NoiseScale)
	altitude.Normalize()

	moisture := heightmap.New(size)
	moisture.AddNoise(heightmap.NewPerlin(rng.Int64(), p.NoiseOctaves), p.NoiseScale)
	moisture.Normalize()

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			pos := core.Vec2I{X: x, Y: y}
			factor := edgeFactor(x, size.W, p.Padding) * edgeFactor(y, size.H, p.Padding)
			a := altitude.Value(pos)
			altitude.SetValue(pos, 1-(1-a)*heightmap.EaseOutCubic(factor))
		}
	}

	return &Raw{Altitude: altitude, Moisture: moisture}
}

// edgeFactor is 0 on the border, rising linearly to 1 at padding cells away.
func edgeFactor(v, extent, padding int) float64 {
	if padding <= 0 {
		return 1
	}
	switch {
	case v < padding:
		return float64(v) / float64(padding)
	case v >= extent-padding:
		return float64(extent-1-v) / float64(padding)
	}
	return 1
}
