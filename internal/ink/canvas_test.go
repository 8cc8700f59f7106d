package ink

import (
	"image"
	"image/color"
	"testing"

	"noteink/pkg/geometry"
)

func TestCanvasClampsToMinimumSize(t *testing.T) {
	c := NewCanvas(0, -5)
	w, h := c.Size()
	if w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want 1x1", w, h)
	}
}

func TestStrokeSegmentClipsAtBounds(t *testing.T) {
	c := NewCanvas(20, 20)
	// Runs off the canvas; must not panic and must paint the in-bounds part.
	c.StrokeSegment(geometry.PointInt{X: 10, Y: 10}, geometry.PointInt{X: 40, Y: 10},
		color.RGBA{R: 255, A: 255}, 3, ModePaint)

	if got := c.Image().RGBAAt(15, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel(15,10) = %v, want painted", got)
	}
}

func TestClearResetsAllPixels(t *testing.T) {
	c := NewCanvas(30, 30)
	c.Dot(geometry.PointInt{X: 15, Y: 15}, color.RGBA{G: 255, A: 255}, 11, ModePaint)
	c.Clear()

	for _, p := range []image.Point{{15, 15}, {12, 15}, {15, 18}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("pixel(%d,%d) = %v after Clear, want transparent", p.X, p.Y, got)
		}
	}
}

func TestSetBackgroundSameSize(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	bg.SetRGBA(3, 3, color.RGBA{B: 255, A: 255})

	c := NewCanvas(10, 10)
	c.SetBackground(bg)

	if got := c.Image().RGBAAt(3, 3); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel(3,3) = %v, want background pixel", got)
	}
}

func TestSetBackgroundScalesToCanvas(t *testing.T) {
	// A solid background must stay solid after scaling.
	bg := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bg.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	c := NewCanvas(16, 16)
	c.SetBackground(bg)

	if got := c.Image().RGBAAt(8, 8); got.A == 0 {
		t.Errorf("pixel(8,8) transparent after scaled background")
	}
}

func TestSetBackgroundNilIsNoop(t *testing.T) {
	c := NewCanvas(5, 5)
	c.SetBackground(nil)
	if got := c.Image().RGBAAt(2, 2); got != (color.RGBA{}) {
		t.Errorf("pixel(2,2) = %v, want transparent", got)
	}
}
