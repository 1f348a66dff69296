package world

import "frontier/pkg/core"

// SpawnKind identifies a generated actor placement.
type SpawnKind uint8

const (
	SpawnHero SpawnKind = iota
	SpawnCow
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnHero:
		return "hero"
	case SpawnCow:
		return "cow"
	}
	return "invalid"
}

// Spawn is the initial position of an actor. Populating the actor itself is
// up to the runtime.
type Spawn struct {
	Kind     SpawnKind  `json:"kind"`
	Position core.Vec2I `json:"position"`
}

// World is the generated snapshot.
type World struct {
	Seed int64 `json:"seed"`

	Cells       *core.Grid[Cell]            `json:"-"`
	Underground *core.Grid[UndergroundCell] `json:"-"`

	Towns      []Town     `json:"towns"`
	Localities []Locality `json:"localities"`
	Network    Network    `json:"network"`
	Spawns     []Spawn    `json:"spawns"`
}

// New allocates an empty world of the given size. The surface is prairie
// without decoration and the underground is solid.
func New(size core.Size) *World {
	return FromCells(core.NewGrid(size, Cell{}))
}

// FromCells wraps an existing surface grid. The underground is solid.
func FromCells(cells *core.Grid[Cell]) *World {
	return &World{
		Cells:       cells,
		Underground: core.NewGrid(cells.Size(), UndergroundCell{Decoration: DecorationWall}),
	}
}

// Size reports the world dimensions.
func (w *World) Size() core.Size { return w.Cells.Size() }

// Spawn returns the first spawn of the given kind.
func (w *World) Spawn(kind SpawnKind) (Spawn, bool) {
	for _, s := range w.Spawns {
		if s.Kind == kind {
			return s, true
		}
	}
	return Spawn{}, false
}
