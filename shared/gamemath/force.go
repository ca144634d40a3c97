package gamemath

import (
	cfg "github.com/automoto/beatchain/config"
	"github.com/tanema/gween/ease"
)

// Easings that a character sheet may name for an interpolated force.
var Easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"outCubic":  ease.OutCubic,
	"outSine":   ease.OutSine,
}

// InterpolatedForce moves a velocity from Start toward End over Duration
// frames. Each step interpolates from the current value, not from Start,
// so the curve decelerates and lands on End on the final frame.
type InterpolatedForce struct {
	Current  Vector
	Start    Vector
	End      Vector
	Duration int
	Elapsed  int

	easing ease.TweenFunc
}

func NewInterpolatedForce(start, end Vector, duration int) *InterpolatedForce {
	return &InterpolatedForce{
		Current:  start,
		Start:    start,
		End:      end,
		Duration: duration,
		easing:   ease.Linear,
	}
}

// WithEasing replaces the step curve. Unknown names keep linear.
func (f *InterpolatedForce) WithEasing(name string) *InterpolatedForce {
	if fn, ok := Easings[name]; ok {
		f.easing = fn
	}
	return f
}

// Update advances one frame and returns the velocity for that frame.
func (f *InterpolatedForce) Update() Vector {
	if f.Duration <= 0 {
		f.Current = f.End
		return f.Current
	}
	if f.Elapsed < f.Duration {
		f.Elapsed++
	}

	if f.Current.Distance(f.End) <= cfg.Physics.DeadZone {
		f.Current = f.End
		return f.Current
	}

	easing := f.easing
	if easing == nil {
		easing = ease.Linear
	}
	t := float32(f.Elapsed)
	d := float32(f.Duration)
	f.Current = Vector{
		X: float64(easing(t, float32(f.Current.X), float32(f.End.X-f.Current.X), d)),
		Y: float64(easing(t, float32(f.Current.Y), float32(f.End.Y-f.Current.Y), d)),
	}
	return f.Current
}

// IsFinished is true exactly when every frame has been consumed.
func (f *InterpolatedForce) IsFinished() bool {
	return f.Elapsed == f.Duration
}
