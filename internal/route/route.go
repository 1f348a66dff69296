// Package route finds cheapest orthogonal paths on a walkability grid.
package route

import (
	"math"

	"github.com/zyedidia/generic/heap"

	icore "frontier/internal/core"
	"frontier/pkg/core"
)

const (
	blocked  = 0
	walkable = 1
)

// CostFunc returns the cost of stepping from a cell to an adjacent one. It
// must return at least the Euclidean step distance so the search heuristic
// stays admissible.
type CostFunc func(from, to core.Vec2I) float64

// UnitCost charges the Euclidean step distance.
func UnitCost(from, to core.Vec2I) float64 { return core.Euclidean(from, to) }

// Grid is an orthogonal walkability grid. Every cell starts walkable.
type Grid struct {
	mask *icore.ByteGrid
}

// NewGrid returns a fully walkable grid.
func NewGrid(size core.Size) *Grid {
	g := &Grid{mask: icore.NewByteGridSize(size)}
	g.mask.Fill(walkable)
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.mask.W, H: g.mask.H} }

// Valid reports whether p lies inside the grid.
func (g *Grid) Valid(p core.Vec2I) bool { return g.mask.Valid(p) }

// SetWalkable marks p. Positions outside the grid are ignored.
func (g *Grid) SetWalkable(p core.Vec2I, ok bool) {
	v := uint8(blocked)
	if ok {
		v = walkable
	}
	g.mask.Set(p, v)
}

// Walkable reports whether p can be traversed. Outside the grid nothing is.
func (g *Grid) Walkable(p core.Vec2I) bool {
	return g.mask.At(p) == walkable
}

// BlockRect marks every cell of r as blocked.
func (g *Grid) BlockRect(r core.RectI) {
	r.Each(func(p core.Vec2I) { g.SetWalkable(p, false) })
}

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int { return g.mask.Count(walkable) }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{mask: icore.NewByteGrid(g.mask.W, g.mask.H)}
	copy(c.mask.Cells(), g.mask.Cells())
	return c
}

type node struct {
	pos core.Vec2I
	f   float64
	g   float64
	seq int
}

// Route returns the cheapest 4-connected path from start to goal, both
// included. The endpoints themselves are exempt from the walkability check.
// It reports false when the goal cannot be reached.
func (g *Grid) Route(start, goal core.Vec2I, cost CostFunc) ([]core.Vec2I, bool) {
	if !g.Valid(start) || !g.Valid(goal) {
		return nil, false
	}
	if cost == nil {
		cost = UnitCost
	}
	if start == goal {
		return []core.Vec2I{start}, true
	}

	w := g.mask.W
	total := g.mask.W * g.mask.H
	index := func(p core.Vec2I) int { return p.Y*w + p.X }

	best := make([]float64, total)
	for i := range best {
		best[i] = math.Inf(1)
	}
	parent := make([]int32, total)
	closed := make([]bool, total)

	open := heap.New(func(a, b node) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})

	seq := 0
	heuristic := func(p core.Vec2I) float64 { return float64(core.Manhattan(p, goal)) }

	best[index(start)] = 0
	parent[index(start)] = -1
	open.Push(node{pos: start, f: heuristic(start), seq: seq})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		ci := index(cur.pos)
		if closed[ci] {
			continue
		}
		closed[ci] = true

		if cur.pos == goal {
			return unwind(parent, ci, w), true
		}

		for _, off := range core.FourNeighbors {
			next := cur.pos.Add(off)
			if !g.Valid(next) {
				continue
			}
			if next != goal && !g.Walkable(next) {
				continue
			}
			ni := index(next)
			if closed[ni] {
				continue
			}
			gScore := cur.g + cost(cur.pos, next)
			if gScore >= best[ni] {
				continue
			}
			best[ni] = gScore
			parent[ni] = int32(ci)
			seq++
			open.Push(node{pos: next, f: gScore + heuristic(next), g: gScore, seq: seq})
		}
	}
	return nil, false
}

func unwind(parent []int32, end, w int) []core.Vec2I {
	var path []core.Vec2I
	for i := end; i >= 0; i = int(parent[i]) {
		path = append(path, core.Vec2I{X: i % w, Y: i / w})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
