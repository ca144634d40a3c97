package factory

import (
	"github.com/automoto/beatchain/archetypes"
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/combat"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/automoto/beatchain/shared/stagedata"
	"github.com/automoto/beatchain/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns one hitbox event of owner's current attack. The
// event position is relative to the owner's bottom-left corner for a
// right-facing fighter; it is mirrored about the owner's center when
// facing left.
func CreateHitbox(ecs *ecs.ECS, stage *stagedata.Stage, owner *donburi.Entry, attack string, event chardata.HitboxEvent, hits map[*donburi.Entry]bool) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	ownerPhys := components.Physics.Get(owner)

	offset := gamemath.Vector{X: event.Position.X, Y: event.Position.Y}
	if fighter.Facing < 0 {
		offset.X = ownerPhys.Width - event.Position.X - event.Size.X
	}

	hitbox := archetypes.Hitbox.Spawn(ecs)
	phys := components.PhysicsData{
		Position: ownerPhys.Position.Add(offset),
		Width:    event.Size.X,
		Height:   event.Size.Y,
	}
	components.Physics.SetValue(hitbox, phys)

	resolvTags := []string{tags.ResolvHitbox}
	if event.Template.Projectile {
		resolvTags = append(resolvTags, tags.ResolvProjectile)
	}
	obj := resolv.NewObject(phys.Position.X, SpaceY(stage, phys.Position.Y, phys.Height), phys.Width, phys.Height, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, phys.Width, phys.Height))
	obj.Data = hitbox // Linked for O(1) lookup
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Hitbox:      combat.NewHitbox(fighter.Slot, attack, event.Template),
		OwnerEntity: owner,
		Offset:      offset,
		Follow:      !event.Template.Projectile,
		HitEntities: hits,
	})
	return hitbox
}

// RemoveHitbox despawns a hitbox and takes it out of the space.
func RemoveHitbox(ecs *ecs.ECS, hitbox *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(hitbox)
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	ecs.World.Remove(hitbox.Entity())
}
