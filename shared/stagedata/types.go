// Package stagedata parses TMX stage files into the bounds and spawn
// points a match needs. Pure data: no donburi or resolv.
package stagedata

import cfg "github.com/automoto/beatchain/config"

// Stage is the playable area of a match. X runs 0..Width, Y is height
// above the ground.
type Stage struct {
	Name   string
	Width  float64
	Height float64
	Spawns []SpawnPoint // sorted left to right
}

// SpawnPoint is a fighter start position.
type SpawnPoint struct {
	X     float64
	Index int
}

// Default is the stage used when no TMX file is given.
func Default() *Stage {
	return &Stage{
		Name:   "default",
		Width:  float64(cfg.Stage.Width),
		Height: float64(cfg.Stage.Height),
		Spawns: []SpawnPoint{
			{X: cfg.Stage.SpawnLeft, Index: 0},
			{X: cfg.Stage.SpawnRight, Index: 1},
		},
	}
}

// SpawnX returns the start x for player slot i, falling back to the
// configured spawns when the stage defines too few.
func (s *Stage) SpawnX(i int) float64 {
	if i >= 0 && i < len(s.Spawns) {
		return s.Spawns[i].X
	}
	if i == 0 {
		return cfg.Stage.SpawnLeft
	}
	return cfg.Stage.SpawnRight
}

// Clamp keeps x inside the stage walls for a box of width w.
func (s *Stage) Clamp(x, w float64) float64 {
	if x < 0 {
		return 0
	}
	if max := s.Width - w; x > max {
		return max
	}
	return x
}
