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

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecslib.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, levelIndex int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecslib.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldSceneAtLevel(gs.sceneChanger, gs.levelIndex)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	gs.ecs.AddRenderer(ecslib.LayerDefault, systems.DrawGameOver)

	factory.CreateAudio(gs.ecs)
}
