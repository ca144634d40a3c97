package components

import (
	"github.com/automoto/beatchain/shared/combat"
	"github.com/automoto/beatchain/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	combat.Hitbox
	OwnerEntity *donburi.Entry          // The fighter that spawned this hitbox
	Offset      gamemath.Vector         // From the owner's position, already mirrored by facing
	Follow      bool                    // Tracks the owner; projectiles stay where spawned
	AttackID    int                     // Owner's StateData.AttackID at spawn
	HitEntities map[*donburi.Entry]bool // Shared by all hitboxes of one attack
}

var Hitbox = donburi.NewComponentType[HitboxData]()
