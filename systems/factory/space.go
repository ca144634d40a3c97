package factory

import (
	"github.com/automoto/beatchain/archetypes"
	"github.com/automoto/beatchain/components"
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/stagedata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space covering the stage.
func CreateSpace(ecs *ecs.ECS, stage *stagedata.Stage) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := cfg.Stage.CellSize
	spaceData := resolv.NewSpace(int(stage.Width), int(stage.Height), cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceY converts a world box (y up from the ground) to the space's
// top-left y.
func SpaceY(stage *stagedata.Stage, y, h float64) float64 {
	return stage.Height - y - h
}

// PlaceObject moves obj to the world box held by phys.
func PlaceObject(stage *stagedata.Stage, phys *components.PhysicsData, obj *resolv.Object) {
	obj.X = phys.Position.X
	obj.Y = SpaceY(stage, phys.Position.Y, phys.Height)
	obj.W = phys.Width
	obj.H = phys.Height
	obj.Update()
}
