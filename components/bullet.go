package components

import "github.com/yohamta/donburi"

// BulletData carries a projectile's damage and a back-reference to the
// shooter so a shot never hurts the entity that fired it.
type BulletData struct {
	Shooter *donburi.Entry
	Damage  int
	Speed   float64
}

var Bullet = donburi.NewComponentType[BulletData]()
