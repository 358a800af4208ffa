package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed all:layouts
var layoutFS embed.FS

// Object group names read from layout maps
const (
	GroupContainers = "Containers"
	GroupIcon       = "Icon"
	GroupTargets    = "Targets"
)

// RectSpawn is a rectangle from the layout, already converted to canvas
// space: X, Y is the center and y points up.
type RectSpawn struct {
	Name          string
	X, Y          float64
	Width, Height float64
	Rotation      float64 // degrees, counter-clockwise
	Scale         float64
	Stars         int // pooled stars parented here (containers only)
}

type Layout struct {
	Name       string
	Width      int
	Height     int
	Containers []RectSpawn
	Icon       *RectSpawn
	Targets    []RectSpawn
}

// LoadLayout parses a Tiled map describing the canvas. Tiled objects are
// top-left anchored in a y-down space; they are re-expressed as centers in a
// y-up canvas of the map's pixel size.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   tmxPath,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	height := float64(layout.Height)

	toSpawn := func(o *tiled.Object) RectSpawn {
		scale := o.Properties.GetFloat("scale")
		if scale == 0 {
			scale = 1
		}
		return RectSpawn{
			Name:     o.Name,
			X:        o.X + o.Width/2,
			Y:        height - (o.Y + o.Height/2),
			Width:    o.Width,
			Height:   o.Height,
			Rotation: o.Properties.GetFloat("tilt"),
			Scale:    scale,
			Stars:    int(o.Properties.GetInt("stars")),
		}
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupContainers:
			for _, o := range og.Objects {
				layout.Containers = append(layout.Containers, toSpawn(o))
			}
		case GroupIcon:
			if len(og.Objects) > 0 {
				icon := toSpawn(og.Objects[0])
				layout.Icon = &icon
			}
		case GroupTargets:
			for _, o := range og.Objects {
				layout.Targets = append(layout.Targets, toSpawn(o))
			}
		}
	}

	if len(layout.Containers) == 0 {
		return nil, fmt.Errorf("layout %s: no objects in %q group", tmxPath, GroupContainers)
	}
	return layout, nil
}

// MustLoadLayout loads an embedded layout and panics on failure.
func MustLoadLayout(tmxPath string) *Layout {
	layout, err := LoadLayout(layoutFS, tmxPath)
	if err != nil {
		panic(err)
	}
	return layout
}
