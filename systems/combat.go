package systems

import (
	"github.com/automoto/beatchain/components"
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/combat"
	"github.com/automoto/beatchain/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHurtboxes moves each hurtbox to its fighter and derives the guard
// it is holding this frame.
func UpdateHurtboxes(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Match.Get(matchEntry).Stage

	for _, e := range fighters(ecs.World) {
		if e == nil {
			continue
		}
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		buf := components.Input.Get(e).Buffer
		hurt := components.Hurtbox.Get(e)

		factory.PlaceObject(stage, physics, components.Object.Get(e).Object)

		hurt.Grounded = physics.Position.Y <= cfg.Physics.GroundY
		hurt.BackFrames = buf.HeldFor(combat.IsBack)
		hurt.Block, hurt.Modifier = combat.Guard(combat.GuardInput{
			CanBlock:   state.Current.CanBlock(),
			Airborne:   !hurt.Grounded,
			Motion:     buf.CurrentMotion,
			Held:       buf.Held(),
			BackFrames: hurt.BackFrames,
		})
	}
}
