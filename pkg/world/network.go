package world

import (
	"slices"

	"frontier/pkg/core"
)

// Station is a stop on the railway.
type Station struct {
	// Index into Network.Railway.
	Index int `json:"index"`
	// StopTime is the dwell time in seconds.
	StopTime int `json:"stop_time"`
}

// Train is positioned on the railway by index.
type Train struct {
	RailwayIndex int `json:"railway_index"`
}

// Network is the closed railway loop with its stations, trains and roads.
type Network struct {
	// Railway is cyclic: the last point is adjacent to the first.
	Railway  []core.Vec2I `json:"railway"`
	Stations []Station    `json:"stations"`
	Trains   []Train      `json:"trains"`
	// Roads are sorted in row-major order and never overlap the railway.
	Roads []core.Vec2I `json:"roads"`
}

// Next returns the railway index following i on the loop.
func (n *Network) Next(i int) int {
	return (i + 1) % len(n.Railway)
}

// Prev returns the railway index preceding i on the loop.
func (n *Network) Prev(i int) int {
	return (i + len(n.Railway) - 1) % len(n.Railway)
}

// At returns the railway point at index i, wrapping around the loop.
func (n *Network) At(i int) core.Vec2I {
	l := len(n.Railway)
	return n.Railway[((i%l)+l)%l]
}

// IndexOf returns the railway index of p, or -1.
func (n *Network) IndexOf(p core.Vec2I) int {
	return slices.Index(n.Railway, p)
}

// StationPosition returns the railway point of station s.
func (n *Network) StationPosition(s Station) core.Vec2I {
	return n.Railway[s.Index]
}

// TotalStopTime sums the dwell time of every station.
func (n *Network) TotalStopTime() int {
	total := 0
	for _, s := range n.Stations {
		total += s.StopTime
	}
	return total
}

// IsClosedLoop reports whether consecutive railway points are adjacent and
// the last point is adjacent to the first.
func (n *Network) IsClosedLoop() bool {
	if len(n.Railway) < 2 {
		return false
	}
	for i := range n.Railway {
		if core.Chebyshev(n.Railway[i], n.At(i+1)) != 1 {
			return false
		}
	}
	return true
}
