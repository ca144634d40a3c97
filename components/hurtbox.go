package components

import (
	"github.com/automoto/beatchain/shared/combat"
	"github.com/yohamta/donburi"
)

// HurtboxData is the fighter's vulnerable box. Guard fields are derived
// from the owner every tick.
type HurtboxData struct {
	combat.Hurtbox
	BackFrames int // consecutive frames holding back
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
