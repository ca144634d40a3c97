package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer the kernel uses.
const Default ecs.LayerID = 0

// KernelConfig contains the frame-timing rules of the simulation kernel
type KernelConfig struct {
	TickRate int `ini:"tick_rate"` // fixed steps per second

	// Input buffer
	HistoryLength  int `ini:"history_length"`  // motion/button entries kept per fighter
	CommandWindow  int `ini:"command_window"`  // frames a recognized command stays actionable
	ConsumeLockout int `ini:"consume_lockout"` // frames the matcher is gated after consume()

	// Action state machine
	JumpsquatFrames    int     `ini:"jumpsquat_frames"`     // used when a profile leaves jumpsquat at 0
	AirJumpsquatFrames int     `ini:"air_jumpsquat_frames"` // pre-jump frames in the air
	JumpLockout        int     `ini:"jump_lockout"`         // Rising frames before airborne input is read
	AirdashBusy        int     `ini:"airdash_busy"`
	SuperjumpFactor    float64 `ini:"superjump_factor"`
	SuperjumpWindow    int     `ini:"superjump_window"` // motions searched for a down-to-up input
	AirJumpFactor      float64 `ini:"air_jump_factor"`
	BackJumpFactor     float64 `ini:"back_jump_factor"`
}

// PhysicsConfig contains the integration constants
type PhysicsConfig struct {
	DeadZone      float64 `ini:"dead_zone"`      // lerp distance snapped to the target
	NeutralEasing float64 `ini:"neutral_easing"` // lerp factor toward zero for non-moving states
	BackdashEnd   float64 `ini:"backdash_end"`   // backdash force end speed, applied against facing
	GroundY       float64 `ini:"ground_y"`
}

// FighterConfig contains per-fighter geometry defaults
type FighterConfig struct {
	HurtboxWidth  float64 `ini:"hurtbox_width"`
	HurtboxHeight float64 `ini:"hurtbox_height"`
}

// CombatConfig contains defending rules that are not part of a character sheet
type CombatConfig struct {
	InstantBlockWindow int `ini:"instant_block_window"` // frames since back was first held
	BarrierButtons     int `ini:"barrier_buttons"`      // button mask that raises a barrier block
}

// StageConfig is used when no stage file is supplied
type StageConfig struct {
	Width      int     `ini:"width"`
	Height     int     `ini:"height"`
	CellSize   int     `ini:"cell_size"` // resolv space cell
	SpawnLeft  float64 `ini:"spawn_left"`
	SpawnRight float64 `ini:"spawn_right"`
}

var (
	Kernel  KernelConfig
	Physics PhysicsConfig
	Fighter FighterConfig
	Combat  CombatConfig
	Stage   StageConfig
)

func init() {
	Kernel = KernelConfig{
		TickRate:           60,
		HistoryLength:      20,
		CommandWindow:      5,
		ConsumeLockout:     3,
		JumpsquatFrames:    3,
		AirJumpsquatFrames: 1,
		JumpLockout:        10,
		AirdashBusy:        10,
		SuperjumpFactor:    1.25,
		SuperjumpWindow:    6,
		AirJumpFactor:      0.75,
		BackJumpFactor:     1.75,
	}

	Physics = PhysicsConfig{
		DeadZone:      0.02,
		NeutralEasing: 0.5,
		BackdashEnd:   2.0,
		GroundY:       0,
	}

	Fighter = FighterConfig{
		HurtboxWidth:  30,
		HurtboxHeight: 60,
	}

	Combat = CombatConfig{
		InstantBlockWindow: 8,
		BarrierButtons:     int(ButtonA | ButtonB),
	}

	// World x runs 0..Width with the fighters mirrored around the centre.
	Stage = StageConfig{
		Width:      640,
		Height:     360,
		CellSize:   16,
		SpawnLeft:  270,
		SpawnRight: 370,
	}
}
