package factory

import (
	"github.com/automoto/beatchain/archetypes"
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/stagedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton.
func CreateMatch(ecs *ecs.ECS, lib *chardata.Library, stage *stagedata.Stage, characters [2]string) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		Stage:      stage,
		Library:    lib,
		Characters: characters,
	})
	return match
}

// CreatePositions spawns the positions table seeded with the spawn points.
func CreatePositions(ecs *ecs.ECS, spawns [2]float64) *donburi.Entry {
	positions := archetypes.Positions.Spawn(ecs)
	data := components.PositionsData{}
	for i, x := range spawns {
		data.Slots[i].X = x
	}
	components.Positions.SetValue(positions, data)
	return positions
}
