package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput reads the keyboard and writes the player's intent for this
// tick. Movement is suppressed while a cutscene is running.
func UpdateInput(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		SaveCurrentSettings(ecs)
	}

	scripted := false
	if entry, ok := components.Cutscene.First(ecs.World); ok {
		scripted = components.Cutscene.Get(entry).Active
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Direction = components.Vector{}
		player.Firing = false

		if scripted {
			return
		}

		if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			player.Direction.X -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			player.Direction.X += 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
			player.Direction.Y -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
			player.Direction.Y += 1
		}
		if player.Direction.Length() > 0 {
			player.Direction = player.Direction.Normalized()
			player.AimDir = player.Direction
		}

		player.Crouching = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
			ebiten.IsKeyPressed(ebiten.KeyShiftRight)
		player.Firing = ebiten.IsKeyPressed(ebiten.KeySpace)
	})
}
