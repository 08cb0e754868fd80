package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Overlay      FontName = "overlay"
	OverlaySmall FontName = "overlay-small"
	Caption      FontName = "caption"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFromFile registers a font from a ttf on disk. A missing or broken
// file is tolerated; lookups fall back to the builtin face.
func LoadFromFile(name FontName, path string, size float64) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
