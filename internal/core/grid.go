package core

import "frontier/pkg/core"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Generation stages use it for transient masks (automaton state, walkability,
// visit marks) that never reach the world snapshot.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// NewByteGridSize allocates a grid matching size.
func NewByteGridSize(size core.Size) *ByteGrid { return NewByteGrid(size.W, size.H) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Valid reports whether p lies inside the grid.
func (g *ByteGrid) Valid(p core.Vec2I) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the value at p, or 0 outside the grid.
func (g *ByteGrid) At(p core.Vec2I) uint8 {
	if !g.Valid(p) {
		return 0
	}
	return g.data[g.Index(p.X, p.Y)]
}

// Set stores v at p. Positions outside the grid are ignored.
func (g *ByteGrid) Set(p core.Vec2I, v uint8) {
	if g.Valid(p) {
		g.data[g.Index(p.X, p.Y)] = v
	}
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Count returns the number of cells equal to v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }
