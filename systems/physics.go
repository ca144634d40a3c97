package systems

import (
	"github.com/automoto/beatchain/components"
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates each fighter by one frame and writes the
// positions table. It is the only writer of that table.
func UpdatePhysics(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Match.Get(matchEntry).Stage
	positionsEntry, ok := components.Positions.First(ecs.World)
	if !ok {
		return
	}
	positions := components.Positions.Get(positionsEntry)

	for _, e := range fighters(ecs.World) {
		if e == nil {
			continue
		}
		fighter := components.Fighter.Get(e)
		physics := components.Physics.Get(e)

		pos := physics.Position.Add(fighter.Displacement())
		if pos.Y < cfg.Physics.GroundY {
			pos.Y = cfg.Physics.GroundY
		}
		pos.X = stage.Clamp(pos.X, physics.Width)
		physics.Position = pos

		positions.Slots[fighter.Slot] = gamemath.Vector{X: pos.X + physics.Width/2, Y: pos.Y}
	}
}
