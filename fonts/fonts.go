package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts used by the HUD.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 16); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, gobold.TTF, 20); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether name has been registered.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
