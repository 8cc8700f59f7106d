package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// NoteInkTheme provides a custom theme for the application.
type NoteInkTheme struct{}

var _ fyne.Theme = (*NoteInkTheme)(nil)

func (t *NoteInkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x28, G: 0x50, B: 0xDC, A: 0xFF} // Ink blue
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x28, G: 0x50, B: 0xDC, A: 0x60}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *NoteInkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *NoteInkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *NoteInkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameScrollBar:
		return 14 // Wider scrollbar for easier grabbing
	default:
		return theme.DefaultTheme().Size(name)
	}
}
