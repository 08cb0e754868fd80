package assets

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

// Level holds the parsed geometry and spawn data for one ship deck. No
// tile art is rendered; the loader keeps collision rectangles, patrol
// polylines and object spawns only.
type Level struct {
	Walls        []WallRect
	PatrolPaths  map[string]PatrolPath
	GuardSpawns  []GuardSpawn
	PlayerSpawns []PlayerSpawn
	HidingZones  []ZoneRect
	Name         string
	Width        int
	Height       int
}

// WallRect is a solid collision rectangle.
type WallRect struct {
	X, Y, Width, Height float64
}

// ZoneRect is a non-solid trigger area.
type ZoneRect struct {
	X, Y, Width, Height float64
}

type GuardSpawn struct {
	X          float64
	Y          float64
	GuardType  string
	PatrolPath string
}

type PlayerSpawn struct {
	X float64
	Y float64
}

type PatrolPath struct {
	Name   string
	Points []math.Vec2 // polyline points in world coordinates
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			level := l.MustLoadLevel(levelPath)
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Walls:        []WallRect{},
		PatrolPaths:  make(map[string]PatrolPath),
		GuardSpawns:  []GuardSpawn{},
		PlayerSpawns: []PlayerSpawn{},
		HidingZones:  []ZoneRect{},
		Name:         levelPath,
		Width:        levelMap.Width * levelMap.TileWidth,
		Height:       levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, WallRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PatrolPaths":
			// Patrol routes are polyline objects; points are stored
			// relative to the object origin.
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: o.X + point.X,
						Y: o.Y + point.Y,
					}
				}
				level.PatrolPaths[o.Name] = PatrolPath{
					Name:   o.Name,
					Points: points,
				}
			}
		case "GuardSpawn":
			for _, o := range og.Objects {
				guardType := o.Properties.GetString("guardType")
				patrolPath := o.Properties.GetString("pathName")
				level.GuardSpawns = append(level.GuardSpawns, GuardSpawn{
					X:          o.X,
					Y:          o.Y,
					GuardType:  guardType,
					PatrolPath: patrolPath,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X: o.X,
					Y: o.Y,
				})
			}
		case "HidingZones":
			for _, o := range og.Objects {
				level.HidingZones = append(level.HidingZones, ZoneRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	return level
}
