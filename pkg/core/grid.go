package core

// Grid stores a 2D array of values in row-major order.
type Grid[T any] struct {
	size Size
	data []T
}

// NewGrid allocates a grid with the given dimensions, every cell set to fill.
func NewGrid[T any](size Size, fill T) *Grid[T] {
	if size.W < 0 {
		size.W = 0
	}
	if size.H < 0 {
		size.H = 0
	}
	data := make([]T, size.W*size.H)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{size: size, data: data}
}

// Size reports the grid dimensions.
func (g *Grid[T]) Size() Size { return g.size }

// Valid reports whether p lies inside the grid.
func (g *Grid[T]) Valid(p Vec2I) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.size.W && p.Y < g.size.H
}

// Index returns the linear slice index for p.
func (g *Grid[T]) Index(p Vec2I) int { return p.Y*g.size.W + p.X }

// Position returns the position of linear index i.
func (g *Grid[T]) Position(i int) Vec2I { return Vec2I{X: i % g.size.W, Y: i / g.size.W} }

// At returns the value at p. p must be valid.
func (g *Grid[T]) At(p Vec2I) T { return g.data[g.Index(p)] }

// Ptr returns a pointer to the value at p. p must be valid.
func (g *Grid[T]) Ptr(p Vec2I) *T { return &g.data[g.Index(p)] }

// Set stores v at p. Invalid positions are ignored.
func (g *Grid[T]) Set(p Vec2I, v T) {
	if g.Valid(p) {
		g.data[g.Index(p)] = v
	}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// IsBorder reports whether p lies on the outer ring of the grid.
func (g *Grid[T]) IsBorder(p Vec2I) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.size.W-1 || p.Y == g.size.H-1
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{size: g.size, data: data}
}

// Neighbors calls fn for every valid position p+offset.
func (g *Grid[T]) Neighbors(p Vec2I, offsets []Vec2I, fn func(n Vec2I)) {
	for _, off := range offsets {
		n := p.Add(off)
		if g.Valid(n) {
			fn(n)
		}
	}
}
