package factory

import (
	"fmt"

	"github.com/automoto/beatchain/archetypes"
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/shared/action"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/combat"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/automoto/beatchain/shared/input"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/automoto/beatchain/shared/stagedata"
	"github.com/automoto/beatchain/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the fighter for slot standing on the ground at x.
// Slot 0 starts facing right, slot 1 facing left.
func CreateFighter(ecs *ecs.ECS, lib *chardata.Library, stage *stagedata.Stage, slot int, character string, x float64) (*donburi.Entry, error) {
	profile, err := lib.Profile(character)
	if err != nil {
		return nil, fmt.Errorf("create fighter %d: %w", slot, err)
	}
	attacks := make(map[string]chardata.Attack, len(profile.Attacks))
	for _, name := range profile.Attacks {
		a, err := lib.Attack(character, name)
		if err != nil {
			return nil, fmt.Errorf("create fighter %d: %w", slot, err)
		}
		attacks[name] = a
	}

	facing := 1.0
	if slot == 1 {
		facing = -1
	}

	fighter := archetypes.Fighter.Spawn(ecs)
	components.Fighter.SetValue(fighter, components.FighterData{
		Slot:      slot,
		Character: character,
		Fighter:   action.NewFighter(&profile, attacks, facing),
	})
	components.Input.SetValue(fighter, components.InputData{
		Buffer:  input.NewBuffer(),
		Pending: messages.NeutralInput(slot),
	})
	components.State.SetValue(fighter, components.StateData{
		Current:  action.State{Kind: action.Idle},
		Previous: action.State{Kind: action.Idle},
	})

	phys := components.PhysicsData{
		Position: gamemath.Vector{X: stage.Clamp(x-profile.HurtboxWidth/2, profile.HurtboxWidth)},
		Width:    profile.HurtboxWidth,
		Height:   profile.HurtboxHeight,
	}
	components.Physics.SetValue(fighter, phys)
	components.Hurtbox.SetValue(fighter, components.HurtboxData{
		Hurtbox: combat.Hurtbox{
			Owner:    slot,
			Grounded: true,
			Ignored:  profile.IgnoredProperties,
		},
	})

	obj := resolv.NewObject(phys.Position.X, SpaceY(stage, 0, phys.Height), phys.Width, phys.Height, tags.ResolvHurtbox)
	obj.SetShape(resolv.NewRectangle(0, 0, phys.Width, phys.Height))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return fighter, nil
}
