package ink

import (
	"image/color"

	"noteink/internal/settings"
	"noteink/pkg/colorutil"
	"noteink/pkg/geometry"
)

// Session is one activation of the drawing overlay: the canvas plus the
// transient pointer state. It is constructed on activation and discarded on
// close; only the settings store outlives it.
type Session struct {
	canvas *Canvas
	store  *settings.Store

	tool    Tool
	drawing bool
	last    geometry.PointInt
}

// NewSession creates a session drawing into canvas with the live settings
// from store. The pen is the initial tool.
func NewSession(canvas *Canvas, store *settings.Store) *Session {
	return &Session{canvas: canvas, store: store, tool: ToolPen}
}

// Canvas returns the session's pixel buffer.
func (s *Session) Canvas() *Canvas {
	return s.canvas
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool switches between pen and eraser.
func (s *Session) SetTool(t Tool) {
	s.tool = t
}

// IsDrawing reports whether a stroke is in progress.
func (s *Session) IsDrawing() bool {
	return s.drawing
}

// PointerDown starts a stroke and immediately leaves a dot, so a plain
// click marks the canvas.
func (s *Session) PointerDown(p geometry.PointInt) {
	s.drawing = true
	s.last = p
	col, width := s.strokeParams()
	s.canvas.Dot(p, col, width, s.tool.Mode())
}

// PointerMove extends the stroke with one independent segment from the last
// recorded point. Color and width are re-read from the live settings on
// every segment, so toolbar changes apply mid-stroke.
func (s *Session) PointerMove(p geometry.PointInt) {
	if !s.drawing {
		return
	}
	col, width := s.strokeParams()
	s.canvas.StrokeSegment(s.last, p, col, width, s.tool.Mode())
	s.last = p
}

// PointerUp ends the stroke.
func (s *Session) PointerUp() {
	s.drawing = false
}

// PointerLeave ends the stroke when the pointer exits the canvas.
func (s *Session) PointerLeave() {
	s.drawing = false
}

// strokeParams reads the live stroke color and width. The eraser switches
// the compositing mode only; it strokes at pen width, not EraserSize.
func (s *Session) strokeParams() (col color.RGBA, width int) {
	cur := s.store.Current()
	c, _ := colorutil.ParseHex(cur.PenColor)
	return c, cur.PenWidth
}
