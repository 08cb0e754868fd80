package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/automoto/breachpoint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the player's input intent into movement, stealth
// and gunfire.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		health := components.Health.Get(e)
		object := components.Object.Get(e)

		if health.Current <= 0 {
			physics.SpeedX = 0
			physics.SpeedY = 0
			return
		}

		speed := cfg.Player.MoveSpeed
		if player.Crouching {
			speed = cfg.Player.CrouchSpeed
		}
		physics.SpeedX = player.Direction.X * speed
		physics.SpeedY = player.Direction.Y * speed

		updateStealth(player)
		player.Hiding = insideHidingZone(object)

		if player.FireCooldown > 0 {
			player.FireCooldown -= cfg.Time.Delta
		}
		if player.Firing && player.FireCooldown <= 0 {
			firePlayerWeapon(ecs, e, player, object)
			player.FireCooldown = 1.0 / cfg.Player.FireRate
		}
	})
}

// updateStealth ramps the stealth level toward the crouch target instead
// of snapping, so vision range shrinks and recovers smoothly.
func updateStealth(player *components.PlayerData) {
	target := 0.0
	if player.Crouching {
		target = cfg.Player.CrouchStealth
	}

	step := cfg.Player.StealthRampSpeed * cfg.Time.Delta
	switch {
	case player.StealthLevel < target:
		player.StealthLevel = min(player.StealthLevel+step, target)
	case player.StealthLevel > target:
		player.StealthLevel = max(player.StealthLevel-step, target)
	}
}

func insideHidingZone(object *components.ObjectData) bool {
	return object.Check(0, 0, tags.ResolvHiding) != nil
}

func firePlayerWeapon(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, object *components.ObjectData) {
	dir := player.AimDir
	if dir.Length() == 0 {
		dir = components.Vector{X: 1, Y: 0}
	}
	dir = dir.Normalized()

	factory.CreateBullet(ecs, e, object.Center(), dir, cfg.Player.BulletSpeed, cfg.Player.BulletDamage)
	triggerMuzzleFlash(e)
	EmitEvent(ecs, components.Event{
		Kind:  components.EventShotFired,
		Actor: e,
		Pos:   object.Center(),
		Dir:   dir,
	})
	PlayFeedback(ecs, "player_shot", 0.6)

	// Gunfire is loud: every patrolling guard in hearing range turns
	// toward the shot.
	origin := object.Center()
	tags.Guard.Each(ecs.World, func(g *donburi.Entry) {
		guard := components.Guard.Get(g)
		guardPos := components.Object.Get(g).Center()
		if distanceBetween(guardPos, origin) <= guard.TypeConfig.HearingRange {
			AlertGuardToPosition(g, origin)
		}
	})
}
