package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events to their targets. Entries
// are collected first because applying damage mutates archetypes.
func UpdateCombat(ecs *ecs.ECS) {
	var pending []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		pending = append(pending, e)
	})

	for _, e := range pending {
		amount := components.DamageEvent.Get(e).Amount
		e.RemoveComponent(components.DamageEvent)

		switch {
		case e.HasComponent(tags.Guard):
			DamageGuard(ecs, e, amount)
		case e.HasComponent(tags.Player):
			damagePlayer(ecs, e, amount)
		}
	}
}

func damagePlayer(ecs *ecs.ECS, e *donburi.Entry, amount int) {
	health := components.Health.Get(e)
	if health.Current <= 0 {
		return
	}
	health.Damage(amount)
	triggerHitFlash(e)
	PlayFeedback(ecs, "hit", 1.0)

	if health.Current <= 0 {
		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0
		if !e.HasComponent(components.Death) {
			e.AddComponent(components.Death)
			components.Death.SetValue(e, components.DeathData{Timer: 1.5})
		}
		EmitEvent(ecs, components.Event{
			Kind:  components.EventPlayerDied,
			Actor: e,
			Pos:   components.Object.Get(e).Center(),
		})
		PlayFeedback(ecs, "player_died", 1.0)
	}
}

// triggerMuzzleFlash tints the shooter for a frame or two of gunfire.
func triggerMuzzleFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Duration = cfg.Combat.MuzzleFlashDuration
	flash.R, flash.G, flash.B = 1, 1, 0.6
}

// UpdateFlashes fades out hit and muzzle flashes.
func UpdateFlashes(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		flash.Duration -= cfg.Time.Delta
		if flash.Duration <= 0 {
			flash.Duration = 0
		}
	})
}
