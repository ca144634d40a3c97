// Package action is the per-fighter action state machine: the tagged
// state, how it advances each frame, the attack resolver and the
// animation transition table. It has no dependencies on donburi or resolv.
package action

import (
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/gamemath"
)

// Kind is the discriminant of a State.
type Kind int

const (
	Idle Kind = iota
	Walking
	BackWalking
	Crouching
	Dashing
	BackDashing
	Jumpsquat
	AirJumpsquat
	Rising
	Falling
	AirDashing
	AirBackDashing
	Attacking
)

var kindNames = map[Kind]string{
	Idle:           "Idle",
	Walking:        "Walking",
	BackWalking:    "BackWalking",
	Crouching:      "Crouching",
	Dashing:        "Dashing",
	BackDashing:    "BackDashing",
	Jumpsquat:      "Jumpsquat",
	AirJumpsquat:   "AirJumpsquat",
	Rising:         "Rising",
	Falling:        "Falling",
	AirDashing:     "AirDashing",
	AirBackDashing: "AirBackDashing",
	Attacking:      "Attacking",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// State is one fighter's action state. Which payload fields are live
// depends on Kind:
//
//	BackDashing                 Duration
//	Jumpsquat, AirJumpsquat     Duration, Velocity
//	Rising                      Busy
//	AirDashing, AirBackDashing  Busy, Duration, Velocity
//	Attacking                   Duration, Attack, Cancellable, Airborne
type State struct {
	Kind        Kind
	Duration    int
	Busy        int
	Velocity    gamemath.Vector
	Attack      *chardata.Attack
	Cancellable bool
	Airborne    bool
}

// Same compares discriminants only; payload differences are not a
// different state.
func (s State) Same(o State) bool {
	return s.Kind == o.Kind
}

// IsAirborne reports whether the state is only reachable off the ground.
func (s State) IsAirborne() bool {
	switch s.Kind {
	case AirJumpsquat, Rising, Falling, AirDashing, AirBackDashing:
		return true
	case Attacking:
		return s.Airborne
	}
	return false
}

// CanTurn reports whether facing may follow the opponent this frame.
func (s State) CanTurn() bool {
	switch s.Kind {
	case Idle, Walking, BackWalking, Crouching, Rising, Falling:
		return true
	}
	return false
}

// CanBlock reports whether a back input in this state is a guard.
func (s State) CanBlock() bool {
	switch s.Kind {
	case Idle, Walking, BackWalking, Crouching, Rising, Falling:
		return true
	}
	return false
}

// tick counts every live timer down one frame.
func (s *State) tick() {
	switch s.Kind {
	case BackDashing, Jumpsquat, AirJumpsquat, Attacking:
		s.Duration = gamemath.Countdown(s.Duration)
	case Rising:
		s.Busy = gamemath.Countdown(s.Busy)
	case AirDashing, AirBackDashing:
		s.Busy = gamemath.Countdown(s.Busy)
		s.Duration = gamemath.Countdown(s.Duration)
	}
}

func attackState(a chardata.Attack, airborne bool) State {
	return State{
		Kind:     Attacking,
		Duration: a.Busy,
		Attack:   &a,
		Airborne: airborne,
	}
}
