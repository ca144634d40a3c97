package systems

import (
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/shared/action"
	"github.com/automoto/beatchain/systems/factory"
	"github.com/automoto/beatchain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnAttackHitboxes creates the hitboxes an attack's timeline schedules
// for this frame.
func SpawnAttackHitboxes(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Match.Get(matchEntry).Stage

	for _, e := range fighters(ecs.World) {
		if e == nil {
			continue
		}
		state := components.State.Get(e)
		if state.Current.Kind != action.Attacking || state.Current.Attack == nil {
			continue
		}
		attack := state.Current.Attack
		for _, event := range attack.EventsOnFrame(state.Current.Duration) {
			hitbox := factory.CreateHitbox(ecs, stage, e, attack.Name, event, state.Hits)
			components.Hitbox.Get(hitbox).AttackID = state.AttackID
		}
	}
}

// UpdateHitboxLifetimes ticks every hitbox once and despawns the ones
// whose duration ran out. Runs after collisions, so a hitbox collides on
// exactly as many frames as its duration.
func UpdateHitboxLifetimes(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if !hitbox.Tick() {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.RemoveHitbox(ecs, e)
	}
}
