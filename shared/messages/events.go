package messages

// DamagePayload is the hitbox data carried by hit and block events.
// Applying it (damage, hitstun, pushback) is left to the consumer.
type DamagePayload struct {
	Attack      string // attack that spawned the hitbox, e.g. "5B"
	Hitbox      string
	AttackLevel int
	Damage      int
	Proration   float64
	ForceX      float64
	ForceY      float64
	Chip        bool
}

// HitEvent is emitted when an attack connects unblocked
type HitEvent struct {
	Tick       uint64
	AttackerID int // fighter slot of the attacker
	DefenderID int
	Payload    DamagePayload
}

// BlockEvent is emitted when an attack connects and is blocked
type BlockEvent struct {
	Tick       uint64
	AttackerID int
	DefenderID int
	Payload    DamagePayload
}

// AnimationTransitionEvent is the only signal handed to rendering.
// Attack is set for ToAttack transitions.
type AnimationTransitionEvent struct {
	Tick        uint64
	CharacterID int
	Transition  string
	Attack      string
}
