package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for collision lookups
const (
	ResolvHurtbox    = "hurtbox"
	ResolvHitbox     = "hitbox"
	ResolvProjectile = "projectile"
)
