package components

import (
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/stagedata"
	"github.com/yohamta/donburi"
)

// MatchData is the singleton describing the running match.
type MatchData struct {
	Tick       uint64
	Stage      *stagedata.Stage
	Library    *chardata.Library
	Characters [2]string
}

var Match = donburi.NewComponentType[MatchData]()
