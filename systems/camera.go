package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player unless a cutscene has
// taken it over.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Scripted {
		return
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Center()
	target.X -= float64(cfg.C.Width) / 2
	target.Y -= float64(cfg.C.Height) / 2

	s := cfg.Camera.FollowSmoothing
	camera.Position.X += (target.X - camera.Position.X) * s
	camera.Position.Y += (target.Y - camera.Position.Y) * s

	clampCamera(ecs.World, camera)
}

func clampCamera(w donburi.World, camera *components.CameraData) {
	width, height := levelBounds(w)
	maxX := width - float64(cfg.C.Width)
	maxY := height - float64(cfg.C.Height)
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	camera.Position.X = min(max(camera.Position.X, 0), maxX)
	camera.Position.Y = min(max(camera.Position.Y, 0), maxY)
}
