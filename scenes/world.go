package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/systems"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/automoto/breachpoint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	ecslib "github.com/yohamta/donburi/ecs"
)

// WorldScene runs one boarding action on a ship deck.
type WorldScene struct {
	ecs          *ecslib.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewWorldScene creates a new world scene on the first deck
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

// NewWorldSceneAtLevel creates a new world scene on the given deck
func NewWorldSceneAtLevel(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.checkGameOver() {
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.levelIndex))
	}
}

// checkGameOver returns true once the player entity has been removed
// after the death sequence completes.
func (ws *WorldScene) checkGameOver() bool {
	if ws.ecs == nil {
		return false
	}

	playerCount := 0
	tags.Player.Each(ws.ecs.World, func(entry *donburi.Entry) {
		playerCount++
	})
	return playerCount == 0
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecslib.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateCutscene)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateGuards)
	ecs.AddSystem(systems.UpdateBullets)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateFlashes)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateCamera)

	// Event drain runs last so every system sees this tick's events.
	ecs.AddSystem(systems.UpdateEvents)

	ecs.AddRenderer(ecslib.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(ecslib.LayerDefault, systems.DrawStats)
	ecs.AddRenderer(ecslib.LayerDefault, systems.DrawCaption)

	ws.ecs = ecs

	// Create the level entity and load level data first.
	level := factory.CreateLevelAtIndex(ws.ecs, ws.levelIndex)
	levelData := components.Level.Get(level)
	deck := levelData.CurrentLevel

	// Collision space sized to the deck.
	factory.CreateSpace(ws.ecs, deck.Width, deck.Height, 16, 16)

	for _, wall := range deck.Walls {
		factory.CreateWall(ws.ecs, wall.X, wall.Y, wall.Width, wall.Height)
	}
	for _, zone := range deck.HidingZones {
		factory.CreateHidingZone(ws.ecs, zone.X, zone.Y, zone.Width, zone.Height)
	}

	factory.CreateCamera(ws.ecs)
	factory.CreateEventQueue(ws.ecs)
	factory.CreateAudio(ws.ecs)
	factory.CreateFeedback(ws.ecs, systems.NewAudioFeedbackSink(ws.ecs))

	playerX, playerY := 32.0, 32.0
	if len(deck.PlayerSpawns) > 0 {
		playerX, playerY = deck.PlayerSpawns[0].X, deck.PlayerSpawns[0].Y
	}
	factory.CreatePlayer(ws.ecs, playerX, playerY)

	for _, spawn := range deck.GuardSpawns {
		guard := factory.CreateGuard(ws.ecs, spawn.X, spawn.Y, spawn.GuardType)
		if path, ok := deck.PatrolPaths[spawn.PatrolPath]; ok {
			points := make([]components.Vector, len(path.Points))
			for i, p := range path.Points {
				points[i] = components.Vector{X: p.X, Y: p.Y}
			}
			systems.SetGuardPatrolPath(guard, points)
		}
	}

	factory.CreateCutscene(ws.ecs, introSteps(deck.Name, playerX, playerY))

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ws.ecs, saved)
	}
}

// introSteps scripts the short establishing pan played when a deck
// starts.
func introSteps(deckName string, playerX, playerY float64) []components.CutsceneStep {
	if cfg.Debug.SkipMenu {
		return nil
	}
	return []components.CutsceneStep{
		{Kind: components.StepCaption, Duration: 1.6, Text: "BOARDING " + deckName},
		{Kind: components.StepFeedback, Cue: "alarm", Intensity: 0.4},
		{Kind: components.StepCameraPan, Duration: 1.8, Target: components.Vector{X: playerX, Y: playerY}},
		{Kind: components.StepWait, Duration: 0.4},
	}
}
