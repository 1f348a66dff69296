package world

import (
	"testing"

	"frontier/pkg/core"
)

func TestNewWorld(t *testing.T) {
	w := New(core.Size{W: 8, H: 4})
	if w.Size() != (core.Size{W: 8, H: 4}) {
		t.Fatalf("unexpected size %+v", w.Size())
	}
	for _, c := range w.Underground.Cells() {
		if c.Decoration != DecorationWall {
			t.Fatal("underground must start solid")
		}
	}
	if _, ok := w.Spawn(SpawnHero); ok {
		t.Fatal("a fresh world has no spawns")
	}
	w.Spawns = []Spawn{{Kind: SpawnCow, Position: core.V(1, 1)}, {Kind: SpawnHero, Position: core.V(2, 2)}}
	if s, ok := w.Spawn(SpawnHero); !ok || s.Position != core.V(2, 2) {
		t.Fatal("hero spawn not found")
	}
}

func TestEnums(t *testing.T) {
	for _, b := range Biomes {
		if !b.Valid() || b.String() == "invalid" {
			t.Fatalf("biome %d not named", b)
		}
	}
	if Biome(200).Valid() || Decoration(200).Valid() {
		t.Fatal("out of range values must be invalid")
	}
	if !DecorationCliff.Blocking() || DecorationFloorDown.Blocking() || DecorationHerb.Blocking() {
		t.Fatal("unexpected blocking classification")
	}
	if BuildingNone.IsStructure() || BuildingEmpty.IsStructure() || !BuildingSaloon.IsStructure() {
		t.Fatal("unexpected structure classification")
	}
	if BuildingWeaponShop.String() != "weapon-shop" {
		t.Fatalf("unexpected name %q", BuildingWeaponShop.String())
	}
}

func TestTownBlocks(t *testing.T) {
	var town Town
	town.Position = core.V(10, 20)
	town.SetBlock(core.V(4, 1), BuildingBank)
	if town.Buildings[1][4] != BuildingBank || town.Block(core.V(4, 1)) != BuildingBank {
		t.Fatal("blocks are indexed by row then column")
	}
	fp := town.Footprint(35)
	if fp.Min != core.V(10, 20) || fp.W() != 35 {
		t.Fatalf("unexpected footprint %+v", fp)
	}
}
