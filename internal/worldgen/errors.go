package worldgen

import "errors"

var (
	// ErrInvalidConfig reports a configuration the pipeline cannot work with.
	ErrInvalidConfig = errors.New("worldgen: invalid config")
	// ErrPlacementInfeasible reports that rejection sampling ran out of rounds
	// or tries before satisfying its distance constraint.
	ErrPlacementInfeasible = errors.New("worldgen: placement infeasible")
	// ErrNoRoute reports two towns that cannot be connected by rail.
	ErrNoRoute = errors.New("worldgen: no route")
	// ErrBrokenRailway reports a railway that is not a closed adjacent loop.
	ErrBrokenRailway = errors.New("worldgen: broken railway")
	// ErrStationOffRailway reports a station whose position is not on the railway.
	ErrStationOffRailway = errors.New("worldgen: station off railway")
	// ErrLayoutMismatch reports a town layout that did not consume its whole
	// building pool.
	ErrLayoutMismatch = errors.New("worldgen: town layout mismatch")
	// ErrInvalidEnum reports an enum value outside its declared range.
	ErrInvalidEnum = errors.New("worldgen: invalid enum value")
)
