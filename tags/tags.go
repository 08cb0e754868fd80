package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Guard      = donburi.NewTag().SetName("Guard")
	Wall       = donburi.NewTag().SetName("Wall")
	Bullet     = donburi.NewTag().SetName("Bullet")
	HidingZone = donburi.NewTag().SetName("HidingZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvGuard  = "Guard"
	ResolvBullet = "Bullet"
	ResolvHiding = "hiding"

	// Characters use this shared tag so rays and pushback checks can
	// address players and guards together.
	ResolvCharacter = "character"
)
