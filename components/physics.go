package components

import (
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is a box in world coordinates: Position is the bottom-left
// corner, y is height above the ground.
type PhysicsData struct {
	Position gamemath.Vector
	Width    float64
	Height   float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Center returns the middle of the box.
func (p *PhysicsData) Center() gamemath.Vector {
	return gamemath.Vector{X: p.Position.X + p.Width/2, Y: p.Position.Y + p.Height/2}
}
