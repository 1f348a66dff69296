// Package heightmap builds coherent-noise fields over a grid.
package heightmap

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"frontier/pkg/core"
)

// Noise is a 2D coherent noise source.
type Noise interface {
	Noise2D(x, y float64) float64
}

// NewPerlin returns fractal Perlin noise with the given octave count.
func NewPerlin(seed int64, octaves int) Noise {
	if octaves <= 0 {
		octaves = 1
	}
	return perlin.NewPerlin(2, 2, int32(octaves), seed)
}

// Heightmap is a field of float64 values over a grid.
type Heightmap struct {
	size core.Size
	data []float64
}

// New allocates a zeroed heightmap.
func New(size core.Size) *Heightmap {
	return &Heightmap{size: size, data: make([]float64, size.Area())}
}

// Size reports the dimensions.
func (h *Heightmap) Size() core.Size { return h.size }

// Value returns the value at p.
func (h *Heightmap) Value(p core.Vec2I) float64 { return h.data[p.Y*h.size.W+p.X] }

// SetValue stores v at p.
func (h *Heightmap) SetValue(p core.Vec2I, v float64) { h.data[p.Y*h.size.W+p.X] = v }

// AddNoise adds noise sampled so that scale noise periods span the heightmap
// along each axis.
func (h *Heightmap) AddNoise(n Noise, scale float64) {
	w := float64(h.size.W)
	hh := float64(h.size.H)
	for y := 0; y < h.size.H; y++ {
		fy := float64(y) / hh * scale
		row := h.data[y*h.size.W : (y+1)*h.size.W]
		for x := range row {
			row[x] += n.Noise2D(float64(x)/w*scale, fy)
		}
	}
}

// Normalize rescales the values to [0, 1]. A flat field becomes all zeros.
func (h *Heightmap) Normalize() {
	lo, hi := h.Range()
	span := hi - lo
	for i, v := range h.data {
		if span <= 0 {
			h.data[i] = 0
			continue
		}
		h.data[i] = (v - lo) / span
	}
}

// Range returns the minimum and maximum values.
func (h *Heightmap) Range() (float64, float64) {
	if len(h.data) == 0 {
		return 0, 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range h.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// EaseOutCubic maps t in [0,1] to 1-(1-t)^3.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
