package archetypes

import (
	"github.com/automoto/beatchain/components"
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Input,
		components.State,
		components.Physics,
		components.Object,
		components.Hurtbox,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Physics,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Positions = newArchetype(
		components.Positions,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
}
