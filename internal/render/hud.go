package render

import (
	"fmt"

	"roomcrawl/internal/dungeon"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is a full-screen or overlay page outside of play.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPaused
	ScreenGameOver
	ScreenVictory
)

// drawHUD renders hearts, floor bars and counters below the room, plus the
// latest message.
func (r *Renderer) drawHUD(s Stats, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	x := 1
	for i := 0; i < s.MaxHealth; i++ {
		color := ColorHeart
		if i >= s.Health {
			color = ColorHeartEmpty
		}
		r.screen.SetContent(x, hudY+1, '♥', nil, tcell.StyleDefault.Foreground(color))
		x += 2
	}

	x = r.drawText(x+1, hudY+1, "Floor ", tcell.StyleDefault.Foreground(tcell.ColorWhite))
	for i := 0; i < s.MaxFloor; i++ {
		color := ColorFloorBar
		if i >= s.Floor {
			color = tcell.ColorGray
		}
		r.screen.SetContent(x, hudY+1, '▮', nil, tcell.StyleDefault.Foreground(color))
		x++
	}

	counters := fmt.Sprintf("  Kills: %d  Rooms: %d", s.Kills, s.Rooms)
	r.drawText(x, hudY+1, counters, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if len(messages) > 0 {
		r.drawText(1, hudY+2, messages[len(messages)-1], tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

// drawMinimap draws the floor layout in the top-right corner: the current
// room bright, visited rooms muted, the rest dark.
func (r *Renderer) drawMinimap(f *dungeon.Floor, visited func(int) bool) {
	positions := f.Positions()
	if len(positions) == 0 {
		return
	}
	minX, maxX, minY := positions[0].X, positions[0].X, positions[0].Y
	for _, p := range positions {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
	}

	left := r.camera.ViewWidth - (maxX-minX+1)*2 - 1
	for id, p := range positions {
		color := ColorMapUnvisited
		switch {
		case id == f.CurrentRoomID():
			color = ColorMapCurrent
		case visited != nil && visited(id):
			color = ColorMapVisited
		}
		x := left + (p.X-minX)*2
		y := 1 + p.Y - minY
		r.screen.SetContent(x, y, '■', nil, tcell.StyleDefault.Foreground(color).Background(ColorBackground))
	}
}

// DrawScreen draws a menu page. The pause page is an overlay on top of the
// last frame; the others clear the screen.
func (r *Renderer) DrawScreen(kind Screen, s Stats) {
	w, h := r.screen.Size()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	if kind != ScreenPaused {
		r.screen.Clear()
	}
	y := h/2 - 4

	switch kind {
	case ScreenMenu:
		r.centerText(y, "R O O M C R A W L", gold)
		r.centerText(y+2, fmt.Sprintf("Clear every room. Find the stairs. Survive %d floors.", s.MaxFloor), white)
		r.centerText(y+4, "Move: arrows / WASD   Attack: space / J   Pause: Esc / P", gray)
		r.centerText(y+6, "[Enter] start    [Q] quit", white)
	case ScreenPaused:
		for row := y - 1; row <= y+3; row++ {
			for x := w/2 - 20; x < w/2+20; x++ {
				r.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault.Background(tcell.ColorBlack))
			}
		}
		r.centerText(y, "PAUSED", gold)
		r.centerText(y+2, "[Enter] resume  [R] restart  [Q] quit", white)
	case ScreenGameOver, ScreenVictory:
		if kind == ScreenVictory {
			r.centerText(y, "VICTORY", green)
		} else {
			r.centerText(y, "YOU DIED", red)
		}
		r.centerText(y+2, fmt.Sprintf("Floor %d/%d   Kills %d   Rooms %d   Pickups %d",
			s.Floor, s.MaxFloor, s.Kills, s.Rooms, s.Pickups), white)
		if s.RunID != "" {
			r.centerText(y+3, "run "+s.RunID, gray)
		}
		r.centerText(y+5, "[R] play again   [Enter] menu   [Q] quit", white)
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

func (r *Renderer) centerText(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-runewidth.StringWidth(text))/2, y, text, style)
}
