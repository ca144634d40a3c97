package combat

import (
	cfg "github.com/automoto/beatchain/config"
)

// GuardInput is what a defender is doing on the current frame.
type GuardInput struct {
	CanBlock   bool // false while attacking, dashing or committed to a jump
	Airborne   bool
	Motion     cfg.Motion
	Held       cfg.Button
	BackFrames int // consecutive frames a back direction has been held
}

// IsBack is true for 1, 4 and 7.
func IsBack(m cfg.Motion) bool {
	return m == cfg.MotionDownBack || m == cfg.MotionBack || m == cfg.MotionUpBack
}

// Guard derives a hurtbox's block state. Standing back (4, 7) guards
// high, down-back (1) guards low; in the air any back direction guards.
func Guard(in GuardInput) (BlockType, BlockModifier) {
	if !in.CanBlock || !IsBack(in.Motion) {
		return BlockNone, ModifierNone
	}

	block := BlockHigh
	if !in.Airborne && in.Motion == cfg.MotionDownBack {
		block = BlockLow
	}

	modifier := ModifierNone
	barrier := cfg.Button(cfg.Combat.BarrierButtons)
	switch {
	case barrier != 0 && in.Held.Has(barrier):
		modifier = ModifierBarrier
	case in.BackFrames > 0 && in.BackFrames <= cfg.Combat.InstantBlockWindow:
		modifier = ModifierInstant
	}
	return block, modifier
}
