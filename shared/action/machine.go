package action

import (
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/automoto/beatchain/shared/input"
)

// Fighter is the mutable per-fighter data the machine reads and writes
// besides the state itself.
type Fighter struct {
	Profile *chardata.Profile
	Attacks map[string]chardata.Attack // by sheet-local name
	Chain   *BeatChain

	Facing   float64 // 1 facing right, -1 facing left
	Velocity gamemath.Vector
	Force    *gamemath.InterpolatedForce

	AirJumps  int // remaining until landing
	Airdashes int
}

// NewFighter builds the runtime data for a profile with full air charges.
func NewFighter(profile *chardata.Profile, attacks map[string]chardata.Attack, facing float64) *Fighter {
	return &Fighter{
		Profile:   profile,
		Attacks:   attacks,
		Chain:     NewBeatChain(profile.Attacks),
		Facing:    facing,
		AirJumps:  profile.AirJumps,
		Airdashes: profile.Airdashes,
	}
}

// Update advances s by one frame: timers tick, then the state group
// decides the next state from the buffer, the profile and the fighter's
// position. The transition is TransitionNone unless the kind changed.
func (f *Fighter) Update(s State, buf *input.Buffer, pos gamemath.Vector) (State, Transition) {
	next := s
	next.tick()
	next = f.dispatch(next, buf, pos)

	if s.Kind == Attacking && next.Kind != Attacking && !next.IsAirborne() {
		f.Chain.Reset()
	}
	return next, TransitionFor(s, next)
}

func (f *Fighter) dispatch(s State, buf *input.Buffer, pos gamemath.Vector) State {
	switch s.Kind {
	case Idle, Walking, BackWalking, Crouching:
		return f.fromNeutral(buf)
	case Dashing:
		return f.fromDashing(buf)
	case Jumpsquat, AirJumpsquat:
		return f.fromJumpsquat(s)
	case Rising, Falling:
		if f.grounded(pos) {
			return f.land()
		}
		if s.Kind == Rising && s.Busy > 0 {
			return s
		}
		return f.fromAirborneInput(s, buf)
	case BackDashing:
		if s.Duration == 0 {
			return f.fromNeutral(buf)
		}
		return s
	case AirDashing, AirBackDashing:
		if f.grounded(pos) {
			return f.land()
		}
		if s.Duration == 0 {
			return f.fromAirborneNeutral(s, buf)
		}
		return s
	case Attacking:
		if s.Airborne && f.grounded(pos) {
			return f.land()
		}
		if s.Duration == 0 {
			if s.Airborne {
				return f.fromAirborneNeutral(s, buf)
			}
			return f.fromNeutral(buf)
		}
		// After contact only a new attack cuts the recovery short.
		if s.Cancellable {
			if a, ok := FindAttack(buf, f.Chain, f.Attacks, s.Airborne); ok {
				return attackState(a, s.Airborne)
			}
		}
		return s
	}
	return s
}

func (f *Fighter) fromNeutral(buf *input.Buffer) State {
	if a, ok := FindAttack(buf, f.Chain, f.Attacks, false); ok {
		return attackState(a, false)
	}

	switch buf.Active() {
	case input.CommandDash:
		buf.Consume()
		return State{Kind: Dashing}
	case input.CommandBackDash:
		buf.Consume()
		return f.bufferBackdash()
	}

	switch m := buf.CurrentMotion; {
	case m == cfg.MotionBack:
		return State{Kind: BackWalking}
	case m == cfg.MotionForward:
		return State{Kind: Walking}
	case m.IsDown():
		return State{Kind: Crouching}
	case m.IsUp():
		return f.bufferJump(buf, false)
	}
	return State{Kind: Idle}
}

func (f *Fighter) fromDashing(buf *input.Buffer) State {
	switch m := buf.CurrentMotion; {
	case m == cfg.MotionBack:
		return State{Kind: BackWalking}
	case m == cfg.MotionForward:
		return State{Kind: Dashing}
	case m.IsDown():
		return State{Kind: Crouching}
	case m.IsUp():
		return f.bufferJump(buf, true)
	}
	return State{Kind: Idle}
}

func (f *Fighter) fromJumpsquat(s State) State {
	if s.Duration > 0 {
		return s
	}
	f.Velocity = s.Velocity
	return State{Kind: Rising, Busy: cfg.Kernel.JumpLockout}
}

// fromAirborneInput handles Rising (once its lockout is over), Falling
// and finished air dashes.
func (f *Fighter) fromAirborneInput(s State, buf *input.Buffer) State {
	if next, ok := f.airborneAction(buf); ok {
		return next
	}
	switch s.Kind {
	case AirDashing, AirBackDashing:
		if s.Duration == 0 {
			return State{Kind: Falling}
		}
	case Rising:
		if f.Velocity.Y < 0 {
			return State{Kind: Falling}
		}
	}
	return s
}

// fromAirborneNeutral resolves a finished air dash or air attack.
func (f *Fighter) fromAirborneNeutral(s State, buf *input.Buffer) State {
	if s.Kind == AirDashing || s.Kind == AirBackDashing {
		return f.fromAirborneInput(s, buf)
	}
	if next, ok := f.airborneAction(buf); ok {
		return next
	}
	if f.Velocity.Y < 0 {
		return State{Kind: Falling}
	}
	return State{Kind: Rising}
}

// airborneAction looks for an air attack, air dash or air jump.
func (f *Fighter) airborneAction(buf *input.Buffer) (State, bool) {
	if a, ok := FindAttack(buf, f.Chain, f.Attacks, true); ok {
		return attackState(a, true), true
	}

	p := f.Profile
	if f.Airdashes > 0 {
		switch buf.Active() {
		case input.CommandDash:
			buf.Consume()
			f.Airdashes--
			return State{
				Kind:     AirDashing,
				Busy:     cfg.Kernel.AirdashBusy,
				Duration: p.MaxAirdashTime,
				Velocity: gamemath.Vector{X: p.AirDashSpeed * f.Facing},
			}, true
		case input.CommandBackDash:
			buf.Consume()
			f.Airdashes--
			return State{
				Kind:     AirBackDashing,
				Busy:     cfg.Kernel.AirdashBusy,
				Duration: p.MaxAirBackdashTime,
				Velocity: gamemath.Vector{X: -p.AirBackDashSpeed * f.Facing},
			}, true
		}
	}

	if f.AirJumps > 0 && buf.CurrentMotion.IsUp() && !buf.PreviousMotion.IsUp() {
		f.AirJumps--
		var x float64
		switch buf.CurrentMotion {
		case cfg.MotionUpBack:
			x = -p.BackWalkSpeed * f.Facing
		case cfg.MotionUpForward:
			x = p.WalkSpeed * f.Facing
		}
		return State{
			Kind:     AirJumpsquat,
			Duration: cfg.Kernel.AirJumpsquatFrames,
			Velocity: gamemath.Vector{X: x, Y: p.JumpHeight * cfg.Kernel.AirJumpFactor},
		}, true
	}
	return State{}, false
}

func (f *Fighter) bufferJump(buf *input.Buffer, fromDash bool) State {
	p := f.Profile
	var x float64
	switch buf.CurrentMotion {
	case cfg.MotionUpBack:
		if fromDash {
			x = -p.BackWalkSpeed * f.Facing
		} else {
			x = -p.BackWalkSpeed * cfg.Kernel.BackJumpFactor * f.Facing
		}
	case cfg.MotionUpForward:
		if fromDash {
			x = p.WalkSpeed * 2 * f.Facing
		} else {
			x = p.WalkSpeed * f.Facing
		}
	default:
		if fromDash {
			x = p.WalkSpeed * 0.5 * f.Facing
		}
	}

	y := p.JumpHeight
	if !fromDash && superjump(buf) {
		y *= cfg.Kernel.SuperjumpFactor
	}
	return State{
		Kind:     Jumpsquat,
		Duration: p.Jumpsquat,
		Velocity: gamemath.Vector{X: x, Y: y},
	}
}

// superjump is true when a down input shortly precedes the jump.
func superjump(buf *input.Buffer) bool {
	recent := buf.Recent(cfg.Kernel.SuperjumpWindow)
	if len(recent) < 2 {
		return false
	}
	for _, m := range recent[:len(recent)-1] {
		if m.IsDown() {
			return true
		}
	}
	return false
}

func (f *Fighter) bufferBackdash() State {
	b := f.Profile.Backdash
	facing := f.Facing
	end := cfg.Physics.BackdashEnd

	var force *gamemath.InterpolatedForce
	switch b.Style {
	case chardata.BackdashStandard:
		force = gamemath.NewInterpolatedForce(
			gamemath.Vector{X: -b.Speed * facing},
			gamemath.Vector{X: -end * facing},
			b.MotionDuration,
		)
	case chardata.BackdashTeleport:
		v := gamemath.Vector{X: -b.Distance / float64(b.MotionDuration) * facing}
		force = gamemath.NewInterpolatedForce(v, v, b.MotionDuration)
	case chardata.BackdashLeap:
		lift := f.Profile.JumpHeight * 0.5
		force = gamemath.NewInterpolatedForce(
			gamemath.Vector{X: -f.Profile.BackWalkSpeed * 2 * facing, Y: lift},
			gamemath.Vector{X: -end * facing, Y: -lift},
			b.MotionDuration,
		)
	}
	if force != nil {
		f.Force = force.WithEasing(b.Easing)
	}
	return State{Kind: BackDashing, Duration: b.Busy}
}

func (f *Fighter) grounded(pos gamemath.Vector) bool {
	return pos.Y <= cfg.Physics.GroundY
}

// land restores air charges and the beat chain.
func (f *Fighter) land() State {
	f.AirJumps = f.Profile.AirJumps
	f.Airdashes = f.Profile.Airdashes
	f.Chain.Reset()
	f.Velocity.Y = 0
	return State{Kind: Idle}
}

// DetermineVelocity sets the fighter's base velocity for the state it
// just entered.
func (f *Fighter) DetermineVelocity(s State) {
	p := f.Profile
	gravity := gamemath.Vector{Y: p.Gravity}
	switch s.Kind {
	case Walking:
		f.Velocity = gamemath.Vector{X: f.Facing * p.WalkSpeed}
	case BackWalking:
		f.Velocity = gamemath.Vector{X: -f.Facing * p.BackWalkSpeed}
	case Rising, Falling:
		f.Velocity = f.Velocity.Sub(gravity)
	case Dashing:
		f.Velocity = gamemath.Vector{X: f.Facing * p.DashSpeed}
	case BackDashing:
		f.Velocity = gamemath.Zero
	case AirDashing, AirBackDashing:
		f.Velocity = s.Velocity
	case Attacking:
		if s.Airborne {
			f.Velocity = f.Velocity.Sub(gravity)
			return
		}
		f.Velocity = f.Velocity.CustomLerp(gamemath.Zero, cfg.Physics.NeutralEasing)
	default:
		f.Velocity = f.Velocity.CustomLerp(gamemath.Zero, cfg.Physics.NeutralEasing)
	}
}

// Displacement is this frame's movement: an active force wins over the
// base velocity and is dropped once it finishes.
func (f *Fighter) Displacement() gamemath.Vector {
	if f.Force == nil {
		return f.Velocity
	}
	v := f.Force.Update()
	if f.Force.IsFinished() {
		f.Force = nil
	}
	return v
}
