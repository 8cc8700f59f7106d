// Package ink implements the freehand drawing engine: a raster canvas and
// the pointer-driven stroke session that paints into it.
package ink

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

// Mode is the pixel-blending rule used when rendering a stroke.
type Mode int

const (
	// ModePaint writes the stroke color over existing pixels.
	ModePaint Mode = iota
	// ModeErase clears pixels to full transparency.
	ModeErase
)

// Mode returns the compositing mode the tool strokes with.
func (t Tool) Mode() Mode {
	if t == ToolEraser {
		return ModeErase
	}
	return ModePaint
}
