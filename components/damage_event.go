package components

import "github.com/yohamta/donburi"

// DamageEventData queues damage against an entity with Health. The
// combat system drains these once per tick.
type DamageEventData struct {
	Amount int
	Source *donburi.Entry // attacker, nil for environment
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
