package systems

import (
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/logging"
	"github.com/automoto/beatchain/shared/action"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates resolves each fighter's action state for the tick. The
// positions table is only read here: a fighter may look at its opponent
// to pick a facing, never move it.
func UpdateStates(ecs *ecs.ECS) {
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
		state := components.State.Get(e)
		buf := components.Input.Get(e).Buffer
		self := positions.Slots[fighter.Slot]

		if state.Current.CanTurn() {
			fighter.Facing = gamemath.Facing(self, positions.Opponent(fighter.Slot), fighter.Facing)
		}

		next, transition := fighter.Update(state.Current, buf, self)
		fighter.DetermineVelocity(next)

		state.Previous = state.Current
		state.Current = next
		state.Transition = transition
		if next.Kind == action.Attacking && next.Attack != state.Previous.Attack {
			state.AttackID++
			state.Hits = make(map[*donburi.Entry]bool)
		}

		if transition != action.TransitionNone {
			publishTransition(ecs.World, fighter, next, transition)
		}
	}
}

func publishTransition(w donburi.World, fighter *components.FighterData, next action.State, t action.Transition) {
	clip := action.Clip(t, next)
	event := messages.AnimationTransitionEvent{
		Tick:        currentTick(w),
		CharacterID: fighter.Slot,
		Transition:  t.String(),
	}
	if t == action.ToAttack && next.Attack != nil {
		event.Attack = next.Attack.Name
	}

	if matchEntry, ok := components.Match.First(w); ok {
		lib := components.Match.Get(matchEntry).Library
		if _, found := lib.Animation(chardata.Key(fighter.Character, clip)); !found {
			logging.Log.Warnw("no animation for transition",
				"character", fighter.Character, "transition", t.String(), "clip", clip)
		}
	}

	logging.Log.Debugw("transition",
		"tick", event.Tick, "fighter", fighter.Slot, "transition", event.Transition, "attack", event.Attack)
	AnimationTransitions.Publish(w, event)
}
