package systems

import (
	"image/color"

	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	title := "BREACHPOINT"
	titleFont := fonts.Overlay.Get()
	text.Draw(screen, title, titleFont, width/2-len(title)*4, height/3, cfg.White)

	hint := "ENTER to board  /  F1 toggles overlay"
	hintFont := fonts.OverlaySmall.Get()
	text.Draw(screen, hint, hintFont, width/2-len(hint)*3, height/3+30, color.RGBA{170, 170, 170, 255})
}
