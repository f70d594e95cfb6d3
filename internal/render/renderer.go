package render

import (
	"sort"

	"roomcrawl/internal/component"
	"roomcrawl/internal/dungeon"
	"roomcrawl/internal/ecs"
	"roomcrawl/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the height of the status area under the room.
const hudRows = 3

// Stats are the run counters shown by the HUD and end screens.
type Stats struct {
	Health    int
	MaxHealth int
	Floor     int
	MaxFloor  int
	Kills     int
	Rooms     int
	Pickups   int
	RunID     string
}

// Frame is everything needed to draw one frame of play.
type Frame struct {
	World    *ecs.World
	Floor    *dungeon.Floor
	Stats    Stats
	Visited  func(roomID int) bool
	Fade     float64 // 0..1 transition overlay opacity
	Messages []string
}

// Renderer draws rooms and screens onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	world  geom.Vec2
	camera *Camera
}

// NewRenderer creates a Renderer that fits rooms of size world into screen.
func NewRenderer(screen tcell.Screen, world geom.Vec2) *Renderer {
	r := &Renderer{screen: screen, world: world}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = FitCamera(r.world, w, max(h-hudRows, 1))
}

// Camera returns the camera of the last Resize.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders the current room, its entities, the HUD and the
// transition fade, then shows the screen.
func (r *Renderer) DrawFrame(f Frame) {
	r.screen.Clear()
	r.fillView(' ', tcell.StyleDefault.Background(ColorBackground))

	room := f.Floor.CurrentRoom()
	r.drawRoom(room)
	r.drawAttacks(f.World)
	r.drawEntities(f.World)
	r.drawMinimap(f.Floor, f.Visited)
	r.drawHUD(f.Stats, f.Messages)
	r.drawFade(f.Fade)
	r.screen.Show()
}

func (r *Renderer) fillView(ch rune, style tcell.Style) {
	for y := 0; y < r.camera.ViewHeight; y++ {
		for x := 0; x < r.camera.ViewWidth; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) fillRect(rect geom.Rect, ch rune, style tcell.Style) {
	r.camera.cells(rect, func(x, y int) {
		r.screen.SetContent(x, y, ch, nil, style)
	})
}

// drawRoom draws walls, floor, doors and the exit pad.
func (r *Renderer) drawRoom(room *dungeon.Room) {
	size := room.Size()
	r.fillRect(geom.R(0, 0, size.X, size.Y), '█', tcell.StyleDefault.Foreground(ColorWall).Background(ColorBackground))
	r.fillRect(room.Bounds(), '·', tcell.StyleDefault.Foreground(ColorWall).Background(ColorFloor))

	for _, d := range room.Doors() {
		if !d.Connected() {
			continue
		}
		color, ch := ColorDoorOpen, ' '
		if d.Locked {
			color, ch = ColorDoorLocked, '#'
		}
		r.fillRect(d.Bounds, ch, tcell.StyleDefault.Foreground(ColorWall).Background(color))
	}

	if room.Type() == dungeon.RoomExit && room.Cleared() {
		r.fillRect(room.ExitPad(), '>', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(ColorExitPad))
	}
}

// drawAttacks shades every active attack rectangle.
func (r *Renderer) drawAttacks(w *ecs.World) {
	style := tcell.StyleDefault.Foreground(ColorAttack).Background(ColorFloor)
	for _, id := range w.Query(component.CHitbox) {
		hb := w.Get(id, component.CHitbox).(component.Hitbox)
		if !hb.Active {
			continue
		}
		pos, _ := w.Position(id)
		r.fillRect(hb.Bounds(pos), '░', style)
	}
}

type spriteEntry struct {
	pos    geom.Vec2
	sprite component.Sprite
}

// drawEntities draws every sprite at its entity's position, lowest Order
// first. Invincible entities blink.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CSprite)
	entries := make([]spriteEntry, 0, len(ids))
	for _, id := range ids {
		if hp, ok := ecs.GetAs[component.Health](w, id); ok && hp.Invincible() && int(hp.InvincibilityTimer*10)%2 == 1 {
			continue
		}
		pos, _ := w.Position(id)
		entries = append(entries, spriteEntry{pos: pos, sprite: w.Get(id, component.CSprite).(component.Sprite)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sprite.Order < entries[j].sprite.Order
	})

	for _, e := range entries {
		sx, sy, ok := r.camera.WorldToScreen(e.pos)
		if !ok {
			continue
		}
		glyph := e.sprite.Glyph
		if glyph == "" {
			glyph = "■"
		}
		_, _, under, _ := r.screen.GetContent(sx, sy)
		_, bg, _ := under.Decompose()
		style := tcell.StyleDefault.Foreground(e.sprite.Color).Background(bg).Bold(true)
		r.putGlyph(sx, sy, glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawFade covers the view with a darker shade the further the fade is.
func (r *Renderer) drawFade(fade float64) {
	if fade <= 0 {
		return
	}
	i := min(int(fade*float64(len(fadeShades))), len(fadeShades)-1)
	r.fillView(fadeShades[i], tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(ColorBackground))
}
