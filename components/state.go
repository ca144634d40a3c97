package components

import (
	"github.com/automoto/beatchain/shared/action"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Current    action.State
	Previous   action.State
	Transition action.Transition // signal for Previous -> Current, if any

	// AttackID counts attacks started; Hits is shared by every hitbox of
	// the current attack so it connects at most once per defender.
	AttackID int
	Hits     map[*donburi.Entry]bool
}

var State = donburi.NewComponentType[StateData]()
