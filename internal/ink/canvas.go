package ink

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"noteink/pkg/geometry"
)

// Canvas is the overlay's pixel buffer. It is sized once at activation and
// does not track viewport resizes.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image exposes the live pixel buffer for display and encoding.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets every pixel to full transparency.
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
}

// SetBackground composites a previously saved drawing under the current
// strokes, scaled to the canvas bounds. Used when the overlay re-opens and
// the viewport no longer matches the snapshot's size.
func (c *Canvas) SetBackground(bg image.Image) {
	if bg == nil {
		return
	}
	if bg.Bounds() == c.img.Bounds() {
		xdraw.Draw(c.img, c.img.Bounds(), bg, bg.Bounds().Min, xdraw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(c.img, c.img.Bounds(), bg, bg.Bounds(), xdraw.Over, nil)
}

// StrokeSegment renders one independent segment from one pointer position to
// the next, with round caps and joins: a round brush is stamped at every
// step of a Bresenham walk. A zero-length segment leaves a dot.
func (c *Canvas) StrokeSegment(from, to geometry.PointInt, col color.RGBA, width int, mode Mode) {
	if width < 1 {
		width = 1
	}
	radius := width / 2

	x1, y1 := from.X, from.Y
	x2, y2 := to.X, to.Y

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.stamp(x1, y1, radius, col, mode)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Dot renders a single-point mark, the result of a click with no movement.
func (c *Canvas) Dot(p geometry.PointInt, col color.RGBA, width int, mode Mode) {
	c.StrokeSegment(p, p, col, width, mode)
}

// stamp fills a disc of the given radius. Erasing writes transparency
// instead of the stroke color.
func (c *Canvas) stamp(cx, cy, radius int, col color.RGBA, mode Mode) {
	if mode == ModeErase {
		col = color.RGBA{}
	}
	bounds := c.img.Bounds()
	r2 := radius * radius

	for y := cy - radius; y <= cy+radius; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			ddx := x - cx
			ddy := y - cy
			if ddx*ddx+ddy*ddy <= r2 {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}
