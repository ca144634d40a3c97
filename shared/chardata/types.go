// Package chardata describes character sheets: the animations, hitbox
// templates, attacks and movement profile authored for each fighter.
// It is pure data and has no dependencies on donburi or resolv.
package chardata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sheet is the on-disk form of one character.
type Sheet struct {
	Animations []AnimationDef   `json:"animations" jsonschema:"required"`
	Hitboxes   []HitboxTemplate `json:"hitboxes" jsonschema:"required"`
	Attacks    []AttackDef      `json:"attacks" jsonschema:"required"`
	Movement   MovementDef      `json:"movement" jsonschema:"required"`
	Hurtbox    *HurtboxDef      `json:"hurtbox,omitempty"`
}

type AnimationDef struct {
	Name       string `json:"name" jsonschema:"required"`
	FirstFrame int    `json:"first_frame"`
	Length     int    `json:"length" jsonschema:"minimum=1"`
	Loopable   bool   `json:"loopable"`
	Hold       int    `json:"hold"`
}

// Vec is a JSON {x, y} pair.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Property is the zone an attack must be blocked in.
type Property int

const (
	PropertyMid Property = iota
	PropertyHigh
	PropertyLow
)

var propertyNames = map[Property]string{
	PropertyMid:  "Mid",
	PropertyHigh: "High",
	PropertyLow:  "Low",
}

func (p Property) String() string {
	return propertyNames[p]
}

func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for k, v := range propertyNames {
		if strings.EqualFold(v, s) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown hitbox property %q", s)
}

// HitboxTemplate is the payload a hitbox carries once spawned.
type HitboxTemplate struct {
	Name         string   `json:"name" jsonschema:"required"`
	AttackLevel  int      `json:"attack_level"`
	Damage       int      `json:"damage"`
	Proration    float64  `json:"proration"`
	Force        Vec      `json:"force"`
	AirBlockable bool     `json:"air_blockable"`
	Property     Property `json:"property"`
	Duration     int      `json:"duration" jsonschema:"minimum=1"`
	Chip         bool     `json:"chip"`
	Projectile   bool     `json:"projectile"`
}

type HitboxEventDef struct {
	Hitbox   string `json:"hitbox" jsonschema:"required"`
	Position Vec    `json:"position"`
	Size     Vec    `json:"size"`
	Frame    int    `json:"frame"`
}

type AttackDef struct {
	Name         string           `json:"name" jsonschema:"required"`
	Busy         int              `json:"busy" jsonschema:"minimum=1"`
	HitboxEvents []HitboxEventDef `json:"hitbox_events"`
}

type MovementDef struct {
	Jumpsquat          int      `json:"jumpsquat"`
	AirJumps           int      `json:"air_jumps"`
	Airdashes          int      `json:"airdashes"`
	AirDashSpeed       float64  `json:"air_dash_speed"`
	AirBackDashSpeed   float64  `json:"air_back_dash_speed"`
	WalkSpeed          float64  `json:"walk_speed"`
	BackWalkSpeed      float64  `json:"back_walk_speed"`
	DashSpeed          float64  `json:"dash_speed"`
	Gravity            float64  `json:"gravity"`
	JumpHeight         float64  `json:"jump_height"`
	MaxAirdashTime     int      `json:"max_airdash_time"`
	MaxAirBackdashTime int      `json:"max_air_backdash_time"`
	Backdash           Backdash `json:"backdash" jsonschema:"required"`
}

type HurtboxDef struct {
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	IgnoredProperties []Property `json:"ignored_properties,omitempty"`
}

// Animation is a resolved clip in the library.
type Animation struct {
	Name       string
	FirstFrame int
	FinalFrame int
	Loopable   bool
	Hold       int
}

// HitboxEvent spawns Template at Position (relative to the owner, x
// towards the facing side) on Frame of the attack.
type HitboxEvent struct {
	Template HitboxTemplate
	Position Vec
	Size     Vec
	Frame    int
}

// Attack is an attack with its hitbox templates resolved.
type Attack struct {
	Name         string // without the character prefix, e.g. "5A"
	Busy         int
	HitboxEvents []HitboxEvent
}

// Airborne is true for attacks that may only be used in the air.
func (a *Attack) Airborne() bool {
	return strings.HasPrefix(a.Name, AirPrefix)
}

// AirPrefix marks air-only attack names, e.g. "j.2B".
const AirPrefix = "j."

// EventsOnFrame returns the hitbox events due when an attack has
// remaining frames left on its busy timer.
func (a *Attack) EventsOnFrame(remaining int) []HitboxEvent {
	var due []HitboxEvent
	for _, e := range a.HitboxEvents {
		if a.Busy-e.Frame == remaining {
			due = append(due, e)
		}
	}
	return due
}

// Profile is the resolved movement profile of one character.
type Profile struct {
	Character string
	MovementDef
	HurtboxWidth      float64
	HurtboxHeight     float64
	IgnoredProperties []Property
	Attacks           []string // attack names in sheet order
}
