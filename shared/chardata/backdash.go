package chardata

import (
	"encoding/json"
	"fmt"
)

// BackdashStyle selects how a backdash moves the character.
type BackdashStyle int

const (
	BackdashStandard BackdashStyle = iota
	BackdashTeleport
	BackdashLeap
)

var backdashStyleNames = map[BackdashStyle]string{
	BackdashStandard: "Standard",
	BackdashTeleport: "Teleport",
	BackdashLeap:     "Leap",
}

func (s BackdashStyle) String() string {
	return backdashStyleNames[s]
}

// Backdash is a tagged variant; which fields matter depends on Style.
//
//	Standard: Busy, Speed, MotionDuration
//	Teleport: Busy, Distance, MotionDuration
//	Leap:     Busy, MotionDuration
//
// On disk it is externally tagged:
//
//	{"Standard": {"busy": 20, "speed": 25, "motion_duration": 20}}
type Backdash struct {
	Style          BackdashStyle
	Busy           int
	Speed          float64
	Distance       float64
	MotionDuration int
	Easing         string
}

type backdashFields struct {
	Busy           int     `json:"busy"`
	Speed          float64 `json:"speed,omitempty"`
	Distance       float64 `json:"distance,omitempty"`
	MotionDuration int     `json:"motion_duration"`
	Easing         string  `json:"easing,omitempty"`
}

func (b Backdash) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]backdashFields{
		b.Style.String(): {
			Busy:           b.Busy,
			Speed:          b.Speed,
			Distance:       b.Distance,
			MotionDuration: b.MotionDuration,
			Easing:         b.Easing,
		},
	})
}

func (b *Backdash) UnmarshalJSON(data []byte) error {
	var tagged map[string]backdashFields
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("backdash: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("backdash: want exactly one style, got %d", len(tagged))
	}
	for name, f := range tagged {
		style, ok := parseBackdashStyle(name)
		if !ok {
			return fmt.Errorf("backdash: unknown style %q", name)
		}
		*b = Backdash{
			Style:          style,
			Busy:           f.Busy,
			Speed:          f.Speed,
			Distance:       f.Distance,
			MotionDuration: f.MotionDuration,
			Easing:         f.Easing,
		}
	}
	return nil
}

func parseBackdashStyle(name string) (BackdashStyle, bool) {
	for style, n := range backdashStyleNames {
		if n == name {
			return style, true
		}
	}
	return 0, false
}
