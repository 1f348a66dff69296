package core

import "math"

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Center returns the middle cell of a grid of this size.
func (s Size) Center() Vec2I { return Vec2I{X: s.W / 2, Y: s.H / 2} }

// Vec2I is an integer grid position or displacement.
type Vec2I struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// V is shorthand for Vec2I{x, y}.
func V(x, y int) Vec2I { return Vec2I{X: x, Y: y} }

func (v Vec2I) Add(o Vec2I) Vec2I { return Vec2I{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2I) Sub(o Vec2I) Vec2I { return Vec2I{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2I) Mul(k int) Vec2I   { return Vec2I{X: v.X * k, Y: v.Y * k} }
func (v Vec2I) Div(k int) Vec2I   { return Vec2I{X: v.X / k, Y: v.Y / k} }

// Sign returns the component-wise sign of v.
func (v Vec2I) Sign() Vec2I { return Vec2I{X: sign(v.X), Y: sign(v.Y)} }

// Angle returns the angle of v in radians, as atan2(y, x).
func (v Vec2I) Angle() float64 { return math.Atan2(float64(v.Y), float64(v.X)) }

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Vec2I) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }

// Chebyshev returns the L∞ distance between a and b.
func Chebyshev(a, b Vec2I) int { return max(abs(a.X-b.X), abs(a.Y-b.Y)) }

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b Vec2I) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// RectI is an inclusive integer rectangle: both Min and Max belong to it.
type RectI struct {
	Min Vec2I `json:"min"`
	Max Vec2I `json:"max"`
}

// RectFromSize returns the rectangle [0, size.W) × [0, size.H).
func RectFromSize(size Size) RectI {
	return RectI{Max: Vec2I{X: size.W - 1, Y: size.H - 1}}
}

// RectFromPositionSize returns the rectangle whose top-left cell is pos.
func RectFromPositionSize(pos Vec2I, w, h int) RectI {
	return RectI{Min: pos, Max: Vec2I{X: pos.X + w - 1, Y: pos.Y + h - 1}}
}

// RectFromCenterSize returns the rectangle of the given size centered on c.
// Odd sizes are exactly centered.
func RectFromCenterSize(c Vec2I, w, h int) RectI {
	return RectFromPositionSize(Vec2I{X: c.X - w/2, Y: c.Y - h/2}, w, h)
}

func (r RectI) W() int { return r.Max.X - r.Min.X + 1 }
func (r RectI) H() int { return r.Max.Y - r.Min.Y + 1 }

// Contains reports whether p lies inside r.
func (r RectI) Contains(p Vec2I) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Grow returns r extended by n cells on every side.
func (r RectI) Grow(n int) RectI {
	return RectI{Min: Vec2I{X: r.Min.X - n, Y: r.Min.Y - n}, Max: Vec2I{X: r.Max.X + n, Y: r.Max.Y + n}}
}

// Extend returns the smallest rectangle containing r and p.
func (r RectI) Extend(p Vec2I) RectI {
	return RectI{
		Min: Vec2I{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Vec2I{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}

// Corner returns the corner cell of r facing the given orientation.
func (r RectI) Corner(o Orientation) Vec2I {
	switch o {
	case NorthWest:
		return r.Min
	case NorthEast:
		return Vec2I{X: r.Max.X, Y: r.Min.Y}
	case SouthEast:
		return r.Max
	case SouthWest:
		return Vec2I{X: r.Min.X, Y: r.Max.Y}
	}
	return r.Min
}

// Each calls fn for every cell of r in row-major order.
func (r RectI) Each(fn func(p Vec2I)) {
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			fn(Vec2I{X: x, Y: y})
		}
	}
}

// Direction is one of the four compass directions.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}

// Displacement returns the unit step for d. Up is toward negative Y.
func (d Direction) Displacement() Vec2I {
	switch d {
	case Up:
		return Vec2I{Y: -1}
	case Right:
		return Vec2I{X: 1}
	case Down:
		return Vec2I{Y: 1}
	case Left:
		return Vec2I{X: -1}
	}
	return Vec2I{}
}

// DirectionOf returns the compass quadrant of v: each direction covers a 90°
// cone centered on its axis.
func DirectionOf(v Vec2I) Direction {
	angle := v.Angle()
	switch {
	case angle >= -math.Pi/4 && angle < math.Pi/4:
		return Right
	case angle >= math.Pi/4 && angle < 3*math.Pi/4:
		return Down
	case angle >= -3*math.Pi/4 && angle < -math.Pi/4:
		return Up
	default:
		return Left
	}
}

// Orientation is one of the four diagonal compass points.
type Orientation uint8

const (
	NorthEast Orientation = iota
	SouthEast
	SouthWest
	NorthWest
)

// Displacement returns the diagonal unit step for o.
func (o Orientation) Displacement() Vec2I {
	switch o {
	case NorthEast:
		return Vec2I{X: 1, Y: -1}
	case SouthEast:
		return Vec2I{X: 1, Y: 1}
	case SouthWest:
		return Vec2I{X: -1, Y: 1}
	case NorthWest:
		return Vec2I{X: -1, Y: -1}
	}
	return Vec2I{}
}

// Neighborhoods expressed as relative offsets.
var (
	FourNeighbors = [4]Vec2I{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

	EightNeighbors = [8]Vec2I{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)
