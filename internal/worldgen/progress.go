package worldgen

import "sync/atomic"

// Stage identifies the pipeline step currently running.
type Stage uint32

const (
	StageStart Stage = iota
	StageTerrain
	StageBiomes
	StageMountains
	StageTowns
	StageRails
	StageBuildings
	StageRegions
	StageUnderground
	StageHero
	StageDone
)

var stageNames = [...]string{
	StageStart:       "start",
	StageTerrain:     "terrain",
	StageBiomes:      "biomes",
	StageMountains:   "mountains",
	StageTowns:       "towns",
	StageRails:       "rails",
	StageBuildings:   "buildings",
	StageRegions:     "regions",
	StageUnderground: "underground",
	StageHero:        "hero",
	StageDone:        "done",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "invalid"
}

// Progress publishes the current stage to a polling reader. Only the
// generator writes to it and stages only ever move forward.
type Progress struct {
	stage atomic.Uint32
}

// Stage returns the most recently entered stage.
func (p *Progress) Stage() Stage {
	return Stage(p.stage.Load())
}

// Fraction maps the current stage onto [0, 1] for loading indicators.
func (p *Progress) Fraction() float64 {
	return float64(p.Stage()) / float64(StageDone)
}

func (p *Progress) set(s Stage) {
	if p == nil {
		return
	}
	p.stage.Store(uint32(s))
}
