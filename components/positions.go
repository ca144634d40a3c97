package components

import (
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PositionsData is the per-match positions table, one slot per fighter.
// Only the physics system writes it.
type PositionsData struct {
	Slots [2]gamemath.Vector
}

var Positions = donburi.NewComponentType[PositionsData]()

// Opponent returns the other slot's position.
func (p *PositionsData) Opponent(slot int) gamemath.Vector {
	return p.Slots[1-slot]
}
