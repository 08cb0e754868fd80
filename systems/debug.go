package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/fonts"
	"github.com/automoto/breachpoint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the diagnostic overlay: level geometry, guard state
// and vision cones, detection bars and projectiles. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	camX, camY := cameraOffset(ecs)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := float32(obj.X - camX)
			y := float32(obj.Y - camY)
			w := float32(obj.W)
			h := float32(obj.H)

			switch {
			case obj.HasTags(tags.ResolvSolid):
				strokeRect(screen, x, y, w, h, color.RGBA{110, 110, 110, 255})
			case obj.HasTags(tags.ResolvHiding):
				vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{30, 120, 40, 70}, false)
				strokeRect(screen, x, y, w, h, color.RGBA{60, 200, 80, 255})
			}
		}
	}

	tags.Guard.Each(ecs.World, func(e *donburi.Entry) {
		drawGuard(screen, e, camX, camY)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, e, camX, camY)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x := float32(obj.X - camX)
		y := float32(obj.Y - camY)
		vector.DrawFilledRect(screen, x, y, float32(obj.W), float32(obj.H), cfg.Yellow, false)
	})
}

func drawGuard(screen *ebiten.Image, e *donburi.Entry, camX, camY float64) {
	guard := components.Guard.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)
	center := obj.Center()

	cx := float32(center.X - camX)
	cy := float32(center.Y - camY)

	body := guardBodyColor(state.CurrentState)
	strokeRect(screen, float32(obj.X-camX), float32(obj.Y-camY), float32(obj.W), float32(obj.H), body)

	// Type tint marks Marines, Heavies and Sentries apart.
	vector.DrawFilledRect(screen, cx-2, cy-2, 4, 4, guard.TypeConfig.TintColor, false)

	drawFlash(screen, e, obj, camX, camY)

	if state.CurrentState != cfg.StateDead {
		drawVisionCone(screen, guard, center, camX, camY, body)

		// Detection bar above the head.
		if guard.DetectionLevel > 0 {
			barW := float32(16)
			fill := barW * float32(guard.DetectionLevel)
			vector.DrawFilledRect(screen, cx-barW/2, cy-14, barW, 3, color.RGBA{40, 40, 40, 200}, false)
			vector.DrawFilledRect(screen, cx-barW/2, cy-14, fill, 3, cfg.Orange, false)
		}
	}

	label := GuardStateName(e)
	text.Draw(screen, label, fonts.OverlaySmall.Get(), int(cx)-len(label)*3, int(cy)-18, body)
}

func drawVisionCone(screen *ebiten.Image, guard *components.GuardData, center components.Vector, camX, camY float64, c color.RGBA) {
	half := guard.TypeConfig.VisionHalfAngle
	facing := guard.Facing.Angle()
	reach := guard.TypeConfig.VisionRange

	cx := float32(center.X - camX)
	cy := float32(center.Y - camY)
	for _, a := range []float64{facing - half, facing + half} {
		ex := cx + float32(math.Cos(a)*reach)
		ey := cy + float32(math.Sin(a)*reach)
		vector.StrokeLine(screen, cx, cy, ex, ey, 1, fadeColor(c, 90), false)
	}
}

func drawPlayer(screen *ebiten.Image, e *donburi.Entry, camX, camY float64) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	c := cfg.Blue
	if player.Hiding {
		c = color.RGBA{80, 200, 120, 255}
	} else if player.Crouching {
		c = color.RGBA{90, 120, 220, 255}
	}
	strokeRect(screen, float32(obj.X-camX), float32(obj.Y-camY), float32(obj.W), float32(obj.H), c)
	drawFlash(screen, e, obj, camX, camY)
}

func drawFlash(screen *ebiten.Image, e *donburi.Entry, obj *components.ObjectData, camX, camY float64) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	if flash.Duration <= 0 {
		return
	}
	c := color.RGBA{
		R: uint8(flash.R * 255),
		G: uint8(flash.G * 255),
		B: uint8(flash.B * 255),
		A: 160,
	}
	vector.DrawFilledRect(screen, float32(obj.X-camX), float32(obj.Y-camY), float32(obj.W), float32(obj.H), c, false)
}

// DrawCaption renders the active cutscene caption and any fade overlay.
func DrawCaption(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cutscene.First(ecs.World)
	if !ok {
		return
	}
	cutscene := components.Cutscene.Get(entry)
	if cutscene.Caption == "" || cutscene.CaptionAlpha <= 0 {
		return
	}

	alpha := uint8(min(cutscene.CaptionAlpha, 1) * 255)
	c := color.RGBA{255, 255, 255, alpha}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := width/2 - len(cutscene.Caption)*3
	text.Draw(screen, cutscene.Caption, fonts.Caption.Get(), x, height-30, c)
}

// DrawStats prints a one-line tick summary in the corner.
func DrawStats(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	alerted := 0
	total := 0
	tags.Guard.Each(ecs.World, func(e *donburi.Entry) {
		total++
		if GuardIsAlerted(e) {
			alerted++
		}
	})
	line := fmt.Sprintf("guards %d alerted %d tps %.0f", total, alerted, ebiten.ActualTPS())
	text.Draw(screen, line, fonts.OverlaySmall.Get(), 4, 12, color.RGBA{200, 200, 200, 255})
}

func cameraOffset(ecs *ecs.ECS) (float64, float64) {
	if entry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(entry)
		return camera.Position.X, camera.Position.Y
	}
	return 0, 0
}

func guardBodyColor(state cfg.StateID) color.RGBA {
	switch state {
	case cfg.StatePatrol:
		return color.RGBA{120, 170, 120, 255}
	case cfg.StateSuspicious, cfg.StateSearch:
		return color.RGBA{220, 190, 80, 255}
	case cfg.StateAlert, cfg.StateChase, cfg.StateAttack:
		return color.RGBA{220, 80, 80, 255}
	case cfg.StateDead:
		return color.RGBA{90, 90, 90, 255}
	}
	return color.RGBA{200, 200, 200, 255}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x, y, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y, 1, h, c, false)
	vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false)
}

func fadeColor(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
