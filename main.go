package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/fonts"
	"github.com/automoto/breachpoint/scenes"
	"github.com/automoto/breachpoint/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if config.Debug.FontPath != "" {
		if err := fonts.LoadFromFile(fonts.Overlay, config.Debug.FontPath, 16); err != nil {
			log.Printf("overlay font unavailable, using builtin: %v", err)
		}
		_ = fonts.LoadFromFile(fonts.OverlaySmall, config.Debug.FontPath, 10)
		_ = fonts.LoadFromFile(fonts.Caption, config.Debug.FontPath, 14)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "overlay", config.Debug.Overlay, "draw the debug overlay")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "skip the menu and start on deck 1")
	flag.StringVar(&config.Debug.FontPath, "font", config.Debug.FontPath, "ttf used for overlay text")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Breachpoint")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
