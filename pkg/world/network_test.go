package world

import (
	"testing"

	"frontier/pkg/core"
)

func squareLoop() *Network {
	return &Network{
		Railway: []core.Vec2I{
			core.V(0, 0), core.V(1, 0), core.V(2, 0),
			core.V(2, 1), core.V(2, 2), core.V(1, 2),
			core.V(0, 2), core.V(0, 1),
		},
		Stations: []Station{{Index: 1, StopTime: 11}, {Index: 5, StopTime: 10}},
	}
}

func TestNetworkIndexing(t *testing.T) {
	n := squareLoop()
	if n.Next(7) != 0 || n.Prev(0) != 7 {
		t.Fatal("Next/Prev must wrap around the loop")
	}
	if n.At(-1) != core.V(0, 1) || n.At(8) != core.V(0, 0) {
		t.Fatal("At must wrap in both directions")
	}
	if n.IndexOf(core.V(2, 2)) != 4 || n.IndexOf(core.V(5, 5)) != -1 {
		t.Fatal("unexpected IndexOf result")
	}
	if n.StationPosition(n.Stations[1]) != core.V(1, 2) {
		t.Fatal("unexpected station position")
	}
	if n.TotalStopTime() != 21 {
		t.Fatalf("TotalStopTime = %d", n.TotalStopTime())
	}
}

func TestNetworkClosedLoop(t *testing.T) {
	n := squareLoop()
	if !n.IsClosedLoop() {
		t.Fatal("square loop must be closed")
	}
	n.Railway = n.Railway[:5]
	if n.IsClosedLoop() {
		t.Fatal("an open path must not report a closed loop")
	}
	n.Railway = []core.Vec2I{core.V(0, 0)}
	if n.IsClosedLoop() {
		t.Fatal("a single point is not a loop")
	}
}
