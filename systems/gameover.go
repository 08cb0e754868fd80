package systems

import (
	"image/color"

	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createWorldScene())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "YOU WERE CAUGHT"
	text.Draw(screen, title, fonts.Overlay.Get(), width/2-len(title)*4, height/3, cfg.Red)

	hint := "R to retry  /  M for menu"
	text.Draw(screen, hint, fonts.OverlaySmall.Get(), width/2-len(hint)*3, height/3+30, color.RGBA{170, 170, 170, 255})
}
