package render

import "github.com/gdamore/tcell/v2"

// Palette of the room, door and minimap shading.
var (
	ColorBackground   = tcell.NewRGBColor(40, 40, 50)
	ColorFloor        = tcell.NewRGBColor(60, 60, 70)
	ColorWall         = tcell.NewRGBColor(100, 100, 120)
	ColorDoorLocked   = tcell.NewRGBColor(80, 40, 40)
	ColorDoorOpen     = tcell.NewRGBColor(100, 150, 100)
	ColorExitPad      = tcell.NewRGBColor(200, 200, 100)
	ColorAttack       = tcell.NewRGBColor(255, 255, 255)
	ColorHeart        = tcell.ColorRed
	ColorHeartEmpty   = tcell.NewRGBColor(80, 40, 40)
	ColorFloorBar     = tcell.NewRGBColor(200, 200, 100)
	ColorMapCurrent   = tcell.NewRGBColor(100, 200, 100)
	ColorMapVisited   = tcell.NewRGBColor(100, 100, 140)
	ColorMapUnvisited = tcell.NewRGBColor(60, 60, 80)
)

// fadeShades darken the view as a room transition progresses.
var fadeShades = [...]rune{'░', '▒', '▓', '█'}
