package systems

import (
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/logging"
	"github.com/automoto/beatchain/shared/action"
	"github.com/automoto/beatchain/shared/combat"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/automoto/beatchain/systems/factory"
	"github.com/automoto/beatchain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions tests every active hitbox against the hurtboxes it
// overlaps and publishes one Hit or Block per (attack, defender).
func UpdateCollisions(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Match.Get(matchEntry).Stage

	var hitboxes []*donburi.Entry
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitboxes = append(hitboxes, e)
	})

	for _, e := range hitboxes {
		hitbox := components.Hitbox.Get(e)
		physics := components.Physics.Get(e)
		object := components.Object.Get(e).Object

		if hitbox.Follow && hitbox.OwnerEntity != nil && hitbox.OwnerEntity.Valid() {
			owner := components.Physics.Get(hitbox.OwnerEntity)
			physics.Position = owner.Position.Add(hitbox.Offset)
		}
		factory.PlaceObject(stage, physics, object)

		if !hitbox.Active {
			continue
		}

		// Broad phase through the space, then an exact overlap test.
		check := object.Check(0, 0, tags.ResolvHurtbox)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			target, ok := obj.Data.(*donburi.Entry)
			if !ok || !target.Valid() || hitbox.HitEntities[target] {
				continue
			}
			if !overlaps(physics, components.Physics.Get(target)) {
				continue
			}
			resolveContact(ecs.World, hitbox, target)
		}
	}
}

func resolveContact(w donburi.World, hitbox *components.HitboxData, target *donburi.Entry) {
	hurt := components.Hurtbox.Get(target)
	outcome := combat.Resolve(&hitbox.Hitbox, &hurt.Hurtbox)
	if outcome == combat.OutcomeNone {
		return
	}

	if hitbox.HitEntities != nil {
		hitbox.HitEntities[target] = true
	}
	tick := currentTick(w)
	payload := hitbox.Payload()

	switch outcome {
	case combat.OutcomeHit:
		hitbox.HitState = combat.HitConnected
		components.Fighter.Get(target).Chain.Reset()
		logging.Log.Debugw("hit",
			"tick", tick, "attacker", hitbox.Owner, "defender", hurt.Owner, "attack", payload.Attack, "damage", payload.Damage)
		Hits.Publish(w, messages.HitEvent{
			Tick:       tick,
			AttackerID: hitbox.Owner,
			DefenderID: hurt.Owner,
			Payload:    payload,
		})
	case combat.OutcomeBlock:
		hitbox.HitState = combat.HitBlocked
		logging.Log.Debugw("block",
			"tick", tick, "attacker", hitbox.Owner, "defender", hurt.Owner, "attack", payload.Attack)
		Blocks.Publish(w, messages.BlockEvent{
			Tick:       tick,
			AttackerID: hitbox.Owner,
			DefenderID: hurt.Owner,
			Payload:    payload,
		})
	}

	// Contact lets the attacker cancel into another attack.
	owner := hitbox.OwnerEntity
	if owner == nil || !owner.Valid() {
		return
	}
	state := components.State.Get(owner)
	if state.Current.Kind == action.Attacking && state.AttackID == hitbox.AttackID {
		state.Current.Cancellable = true
	}
}

// overlaps is a strict AABB test in world coordinates.
func overlaps(a, b *components.PhysicsData) bool {
	return a.Position.X < b.Position.X+b.Width &&
		b.Position.X < a.Position.X+a.Width &&
		a.Position.Y < b.Position.Y+b.Height &&
		b.Position.Y < a.Position.Y+a.Height
}
