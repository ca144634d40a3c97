package gamemath

import (
	"math"

	cfg "github.com/automoto/beatchain/config"
)

// Vector is a 2D velocity or position. Y grows upward; the ground is y = 0.
type Vector struct {
	X, Y float64
}

var Zero = Vector{}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Distance returns the euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Lerp linearly interpolates each component toward target.
func (v Vector) Lerp(target Vector, t float64) Vector {
	return Vector{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}

// CustomLerp is Lerp with a dead-zone: once v is within the configured
// distance of target it snaps to target exactly.
func (v Vector) CustomLerp(target Vector, t float64) Vector {
	if v.Distance(target) > cfg.Physics.DeadZone {
		return v.Lerp(target, t)
	}
	return target
}

// Countdown decrements a frame counter, saturating at zero.
func Countdown(frames int) int {
	if frames > 0 {
		return frames - 1
	}
	return 0
}

// Facing returns the facing sign for the fighter at self given the
// opponent's position: -1 when standing to the right of the opponent.
// current is kept when both share the same x.
func Facing(self, opponent Vector, current float64) float64 {
	switch {
	case self.X > opponent.X:
		return -1
	case self.X < opponent.X:
		return 1
	}
	return current
}
