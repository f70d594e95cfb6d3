package render

import (
	"math"

	"roomcrawl/internal/geom"
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2.0

// Camera maps world units onto terminal cells. A column covers Unit world
// units horizontally and a row covers Unit*cellAspect vertically.
type Camera struct {
	OffsetX    int // screen column of world x=0
	OffsetY    int // screen row of world y=0
	Unit       float64
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// FitCamera scales a world of the given size to fit a viewW×viewH view,
// centred horizontally.
func FitCamera(world geom.Vec2, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, Unit: 1}
	if viewW <= 0 || viewH <= 0 {
		return c
	}
	c.Unit = math.Max(world.X/float64(viewW), world.Y/(cellAspect*float64(viewH)))
	if c.Unit <= 0 {
		c.Unit = 1
	}
	used := int(world.X / c.Unit)
	c.OffsetX = (viewW - used) / 2
	return c
}

// WorldToScreen converts a world point to the cell containing it.
// visible is false when the cell falls outside the viewport.
func (c *Camera) WorldToScreen(p geom.Vec2) (sx, sy int, visible bool) {
	sx = c.OffsetX + int(math.Floor(p.X/c.Unit))
	sy = c.OffsetY + int(math.Floor(p.Y/(c.Unit*cellAspect)))
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld returns the world point at the top-left of cell (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) geom.Vec2 {
	return geom.V(float64(sx-c.OffsetX)*c.Unit, float64(sy-c.OffsetY)*c.Unit*cellAspect)
}

// cells calls fn for every visible cell whose centre lies inside r. Rects
// thinner than a cell still cover the cell holding their centre.
func (c *Camera) cells(r geom.Rect, fn func(x, y int)) {
	x0, y0, _ := c.WorldToScreen(geom.V(r.X, r.Y))
	x1, y1, _ := c.WorldToScreen(geom.V(r.Right(), r.Bottom()))
	hit := false
	for y := max(y0, 0); y <= min(y1, c.ViewHeight-1); y++ {
		for x := max(x0, 0); x <= min(x1, c.ViewWidth-1); x++ {
			if r.Contains(c.ScreenToWorld(x, y).Add(geom.V(c.Unit/2, c.Unit*cellAspect/2))) {
				fn(x, y)
				hit = true
			}
		}
	}
	if !hit {
		if x, y, ok := c.WorldToScreen(r.Center()); ok {
			fn(x, y)
		}
	}
}
