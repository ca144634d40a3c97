package components

import (
	"github.com/automoto/beatchain/shared/input"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/yohamta/donburi"
)

// InputData is a fighter's buffer and the input queued for the next tick.
type InputData struct {
	Buffer  *input.Buffer
	Pending messages.FighterInput
}

var Input = donburi.NewComponentType[InputData]()
