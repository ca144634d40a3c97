// Package combat holds the hitbox/hurtbox rules: who can be hit, what
// connects and what is blocked. Geometry is the caller's concern.
package combat

import (
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/automoto/beatchain/shared/messages"
)

// HitState records whether a hitbox has connected yet.
type HitState int

const (
	HitNone HitState = iota
	HitConnected
	HitBlocked
)

// BlockType is the guard a hurtbox is holding.
type BlockType int

const (
	BlockNone BlockType = iota
	BlockHigh
	BlockLow
)

// BlockModifier is a special guard layered on top of a block.
type BlockModifier int

const (
	ModifierNone BlockModifier = iota
	ModifierBarrier
	ModifierInstant
)

// Outcome is the result of one hitbox against one hurtbox.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHit
	OutcomeBlock
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeBlock:
		return "block"
	}
	return "none"
}

// Hitbox is an attack hitbox while it is out.
type Hitbox struct {
	Owner    int
	Attack   string
	Template chardata.HitboxTemplate
	Duration int
	Active   bool
	HitState HitState
}

func NewHitbox(owner int, attack string, template chardata.HitboxTemplate) Hitbox {
	return Hitbox{
		Owner:    owner,
		Attack:   attack,
		Template: template,
		Duration: template.Duration,
		Active:   true,
	}
}

// Tick counts the hitbox down one frame and reports whether it is still
// out. A hitbox never survives its duration.
func (h *Hitbox) Tick() bool {
	h.Duration = gamemath.Countdown(h.Duration)
	if h.Duration == 0 {
		h.Active = false
	}
	return h.Active
}

// Payload is the damage data handed to hit and block consumers.
func (h *Hitbox) Payload() messages.DamagePayload {
	return messages.DamagePayload{
		Attack:      h.Attack,
		Hitbox:      h.Template.Name,
		AttackLevel: h.Template.AttackLevel,
		Damage:      h.Template.Damage,
		Proration:   h.Template.Proration,
		ForceX:      h.Template.Force.X,
		ForceY:      h.Template.Force.Y,
		Chip:        h.Template.Chip,
	}
}

// Hurtbox is the vulnerable area of a fighter.
type Hurtbox struct {
	Owner    int
	Grounded bool
	Block    BlockType
	Modifier BlockModifier
	Ignored  []chardata.Property
}

// Ignores reports whether attacks of property p pass through.
func (h *Hurtbox) Ignores(p chardata.Property) bool {
	for _, ignored := range h.Ignored {
		if ignored == p {
			return true
		}
	}
	return false
}

// Connects is false only when the hurtbox ignores the hitbox's property.
func (h *Hitbox) Connects(hurt *Hurtbox) bool {
	return !hurt.Ignores(h.Template.Property)
}

// Blocked applies the guard rules. Grounded: mids are always blocked,
// highs and lows need the matching guard. Airborne: air-blockable attacks
// are blocked by any guard; others only with a modifier, and every
// modifier kind currently counts.
func (h *Hitbox) Blocked(hurt *Hurtbox) bool {
	if hurt.Block == BlockNone {
		return false
	}
	if hurt.Grounded {
		switch h.Template.Property {
		case chardata.PropertyMid:
			return true
		case chardata.PropertyHigh:
			return hurt.Block == BlockHigh
		case chardata.PropertyLow:
			return hurt.Block == BlockLow
		}
		return false
	}
	if h.Template.AirBlockable {
		return true
	}
	return hurt.Modifier != ModifierNone
}

// Resolve decides the outcome of one pair. A fighter never hits itself.
func Resolve(hit *Hitbox, hurt *Hurtbox) Outcome {
	if !hit.Active || hit.Owner == hurt.Owner {
		return OutcomeNone
	}
	if !hit.Connects(hurt) {
		return OutcomeNone
	}
	if hit.Blocked(hurt) {
		return OutcomeBlock
	}
	return OutcomeHit
}
