// Package overlay provides the full-viewport freehand drawing overlay: the
// drawing surface, its toolbar, and the save/close action bar. The overlay
// mounts and unmounts on the host window as a unit.
package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"noteink/internal/ink"
	"noteink/pkg/geometry"
)

// drawSurface translates pointer events into session strokes and displays
// the canvas raster over a dimmed backdrop.
type drawSurface struct {
	widget.BaseWidget
	session *ink.Session
	raster  *fynecanvas.Raster
}

var _ fyne.Widget = (*drawSurface)(nil)
var _ desktop.Mouseable = (*drawSurface)(nil)
var _ desktop.Hoverable = (*drawSurface)(nil)
var _ fyne.Draggable = (*drawSurface)(nil)

func newDrawSurface(session *ink.Session) *drawSurface {
	s := &drawSurface{
		session: session,
		raster:  fynecanvas.NewRasterFromImage(session.Canvas().Image()),
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *drawSurface) CreateRenderer() fyne.WidgetRenderer {
	backdrop := fynecanvas.NewRectangle(color.NRGBA{R: 250, G: 250, B: 248, A: 242})
	return widget.NewSimpleRenderer(container.NewStack(backdrop, s.raster))
}

func point(pos fyne.Position) geometry.PointInt {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y)).Round()
}

// MouseDown starts a stroke; a plain click leaves a dot.
func (s *drawSurface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.session.PointerDown(point(ev.Position))
	s.raster.Refresh()
}

// MouseUp ends the stroke.
func (s *drawSurface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.session.PointerUp()
}

// Dragged extends the stroke one segment per event.
func (s *drawSurface) Dragged(ev *fyne.DragEvent) {
	if !s.session.IsDrawing() {
		return
	}
	s.session.PointerMove(point(ev.Position))
	s.raster.Refresh()
}

// DragEnd ends the stroke.
func (s *drawSurface) DragEnd() {
	s.session.PointerUp()
}

func (s *drawSurface) MouseIn(*desktop.MouseEvent) {}

// MouseMoved is handled through Dragged while the button is held.
func (s *drawSurface) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends any stroke in progress when the pointer leaves the surface.
func (s *drawSurface) MouseOut() {
	s.session.PointerLeave()
}
