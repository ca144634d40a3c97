// Package core owns a match: the donburi world, the fixed system order
// and the loop that steps it.
package core

import (
	"fmt"

	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/logging"
	"github.com/automoto/beatchain/shared/action"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/automoto/beatchain/shared/stagedata"
	"github.com/automoto/beatchain/systems"
	"github.com/automoto/beatchain/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// TickResult is everything a tick emitted plus where it left the fighters.
type TickResult struct {
	Tick        uint64
	Transitions []messages.AnimationTransitionEvent
	Hits        []messages.HitEvent
	Blocks      []messages.BlockEvent
	Fighters    [2]FighterSnapshot
}

// FighterSnapshot is the observable state of one fighter after a tick.
type FighterSnapshot struct {
	State     action.Kind
	Attack    string
	Position  gamemath.Vector // bottom-left, world coordinates
	Velocity  gamemath.Vector
	Facing    float64
	AirJumps  int
	Airdashes int
	Command   string
}

// Match is one 1v1 simulation.
type Match struct {
	ecs      *ecs.ECS
	match    *donburi.Entry
	fighters [2]*donburi.Entry
	pending  TickResult
}

// NewMatch builds the world for characters[0] on the left and
// characters[1] on the right. A nil stage uses the configured default.
func NewMatch(lib *chardata.Library, stage *stagedata.Stage, characters [2]string) (*Match, error) {
	if stage == nil {
		stage = stagedata.Default()
	}

	world := donburi.NewWorld()
	m := &Match{ecs: ecs.NewECS(world)}

	m.match = factory.CreateMatch(m.ecs, lib, stage, characters)
	factory.CreateSpace(m.ecs, stage)
	factory.CreatePositions(m.ecs, [2]float64{stage.SpawnX(0), stage.SpawnX(1)})
	for slot, character := range characters {
		fighter, err := factory.CreateFighter(m.ecs, lib, stage, slot, character, stage.SpawnX(slot))
		if err != nil {
			return nil, fmt.Errorf("new match: %w", err)
		}
		m.fighters[slot] = fighter
	}

	m.ecs.AddSystem(systems.UpdateInputBuffers)
	m.ecs.AddSystem(systems.UpdateStates)
	m.ecs.AddSystem(systems.UpdatePhysics)
	m.ecs.AddSystem(systems.UpdateHurtboxes)
	m.ecs.AddSystem(systems.SpawnAttackHitboxes)
	m.ecs.AddSystem(systems.UpdateCollisions)
	m.ecs.AddSystem(systems.UpdateHitboxLifetimes)

	systems.AnimationTransitions.Subscribe(world, m.onTransition)
	systems.Hits.Subscribe(world, m.onHit)
	systems.Blocks.Subscribe(world, m.onBlock)

	logging.Log.Infow("match created",
		"stage", stage.Name, "p1", characters[0], "p2", characters[1])
	return m, nil
}

// Step advances the match one tick with one input per slot.
func (m *Match) Step(inputs [2]messages.FighterInput) TickResult {
	data := components.Match.Get(m.match)
	data.Tick++

	for slot, in := range inputs {
		if in.CharacterID != slot {
			logging.Log.Warnw("input id does not match slot", "slot", slot, "id", in.CharacterID)
			in.CharacterID = slot
		}
		components.Input.Get(m.fighters[slot]).Pending = in
	}

	m.pending = TickResult{Tick: data.Tick}
	m.ecs.Update()
	events.ProcessAllEvents(m.ecs.World)

	for slot := range m.fighters {
		m.pending.Fighters[slot] = m.Snapshot(slot)
	}
	return m.pending
}

// Tick is the number of completed steps.
func (m *Match) Tick() uint64 {
	return components.Match.Get(m.match).Tick
}

// World exposes the donburi world for inspection.
func (m *Match) World() donburi.World {
	return m.ecs.World
}

// Fighter returns the entry for slot.
func (m *Match) Fighter(slot int) *donburi.Entry {
	return m.fighters[slot]
}

// Snapshot reads slot's observable state.
func (m *Match) Snapshot(slot int) FighterSnapshot {
	e := m.fighters[slot]
	fighter := components.Fighter.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	buf := components.Input.Get(e).Buffer

	snap := FighterSnapshot{
		State:     state.Current.Kind,
		Position:  physics.Position,
		Velocity:  fighter.Velocity,
		Facing:    fighter.Facing,
		AirJumps:  fighter.AirJumps,
		Airdashes: fighter.Airdashes,
		Command:   buf.Active().String(),
	}
	if state.Current.Attack != nil {
		snap.Attack = state.Current.Attack.Name
	}
	return snap
}

func (m *Match) onTransition(_ donburi.World, e messages.AnimationTransitionEvent) {
	m.pending.Transitions = append(m.pending.Transitions, e)
}

func (m *Match) onHit(_ donburi.World, e messages.HitEvent) {
	m.pending.Hits = append(m.pending.Hits, e)
}

func (m *Match) onBlock(_ donburi.World, e messages.BlockEvent) {
	m.pending.Blocks = append(m.pending.Blocks, e)
}
