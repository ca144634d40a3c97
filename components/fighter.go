package components

import (
	"github.com/automoto/beatchain/shared/action"
	"github.com/yohamta/donburi"
)

// FighterData links an entity to its machine data. Slot is the player
// index (0 left, 1 right) and doubles as the character id in signals.
type FighterData struct {
	Slot      int
	Character string
	*action.Fighter
}

var Fighter = donburi.NewComponentType[FighterData]()
