package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/breachpoint/systems"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	ecslib "github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecslib.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecslib.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWorldScene))

	ms.ecs.AddRenderer(ecslib.LayerDefault, systems.DrawMenu)

	factory.CreateAudio(ms.ecs)

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ms.ecs, saved)
	}
}
