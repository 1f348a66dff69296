package world

import "frontier/pkg/core"

// Building identifies what stands on a town block.
type Building uint8

const (
	// BuildingEmpty marks a block that has not been assigned yet.
	BuildingEmpty Building = iota
	// BuildingNone is an assigned vacant lot.
	BuildingNone
	BuildingBank
	BuildingCasino
	BuildingChurch
	BuildingClothShop
	BuildingFoodShop
	BuildingHotel
	BuildingHouse1
	BuildingHouse2
	BuildingHouse3
	BuildingMarshalOffice
	BuildingRestaurant
	BuildingSaloon
	BuildingSchool
	BuildingWeaponShop
	buildingCount
)

var buildingNames = [buildingCount]string{
	"empty", "none", "bank", "casino", "church", "cloth-shop", "food-shop", "hotel",
	"house-1", "house-2", "house-3", "marshal-office", "restaurant", "saloon",
	"school", "weapon-shop",
}

func (b Building) String() string {
	if b >= buildingCount {
		return "invalid"
	}
	return buildingNames[b]
}

// IsStructure reports whether b is an actual building.
func (b Building) IsStructure() bool { return b > BuildingNone && b < buildingCount }

// TownBlocks is the number of blocks along each axis of a town.
const TownBlocks = 6

// Town is a placed town with its block layout.
type Town struct {
	// Center of the town footprint, in map coordinates.
	Center core.Vec2I `json:"center"`
	// Position is the top-left cell of the footprint.
	Position core.Vec2I `json:"position"`
	// RailArrival and RailDeparture are in map coordinates.
	RailArrival   core.Vec2I `json:"rail_arrival"`
	RailDeparture core.Vec2I `json:"rail_departure"`

	Buildings [TownBlocks][TownBlocks]Building `json:"buildings"`
	// HorizontalStreet runs between block rows HorizontalStreet-1 and
	// HorizontalStreet; VerticalStreet between columns likewise.
	HorizontalStreet int `json:"horizontal_street"`
	VerticalStreet   int `json:"vertical_street"`
}

// Block returns the building at block position p (x = column, y = row).
func (t *Town) Block(p core.Vec2I) Building { return t.Buildings[p.Y][p.X] }

// SetBlock stores b at block position p.
func (t *Town) SetBlock(p core.Vec2I, b Building) { t.Buildings[p.Y][p.X] = b }

// Footprint returns the town rectangle of the given diameter.
func (t *Town) Footprint(diameter int) core.RectI {
	return core.RectFromPositionSize(t.Position, diameter, diameter)
}

// LocalityType distinguishes rural settlements.
type LocalityType uint8

const (
	LocalityFarm LocalityType = iota
	LocalityCamp
	LocalityVillage
	localityTypeCount
)

// LocalityTypes lists every locality type in declaration order.
var LocalityTypes = [localityTypeCount]LocalityType{LocalityFarm, LocalityCamp, LocalityVillage}

func (l LocalityType) String() string {
	switch l {
	case LocalityFarm:
		return "farm"
	case LocalityCamp:
		return "camp"
	case LocalityVillage:
		return "village"
	}
	return "invalid"
}

// Locality is a farm, cavalry camp or native village.
type Locality struct {
	Position  core.Vec2I     `json:"position"`
	Type      LocalityType   `json:"type"`
	Direction core.Direction `json:"direction"`
}
