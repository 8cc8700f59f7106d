package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"noteink/internal/ink"
	"noteink/pkg/colorutil"
)

// colorSwatch is a tappable color square.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := fynecanvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := fynecanvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 120}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// newToolbar builds the tool controls: pen/eraser, color swatches, a full
// color picker, and the width slider. Every control mutates the live
// settings only; nothing here persists.
func newToolbar(v *View) fyne.CanvasObject {
	// Current-color indicator, kept in sync with the live settings.
	current := fynecanvas.NewRectangle(liveColor(v))
	current.SetMinSize(fyne.NewSize(24, 24))

	setColor := func(c color.Color) {
		v.store.SetPenColor(colorutil.FormatHex(c))
		current.FillColor = liveColor(v)
		current.Refresh()
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			v.session.SetTool(ink.ToolPen)
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			v.session.SetTool(ink.ToolEraser)
		}),
	)

	swatches := container.NewHBox(
		newColorSwatch(colorutil.Black, setColor),
		newColorSwatch(colorutil.Red, setColor),
		newColorSwatch(colorutil.Green, setColor),
		newColorSwatch(colorutil.Blue, setColor),
		newColorSwatch(colorutil.Yellow, setColor),
	)

	pickerBtn := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Pen color", "", setColor, v.win)
		picker.Advanced = true
		picker.Show()
	})

	widthSlider := widget.NewSlider(1, 20)
	widthSlider.SetValue(float64(v.store.Current().PenWidth))
	widthSlider.OnChanged = func(val float64) {
		v.store.SetPenWidth(int(val))
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 36)), widthSlider)

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		swatches,
		pickerBtn,
		container.NewCenter(current),
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderBox,
	)
}

// newActionBar builds the save/export/close row at the bottom of the
// overlay. Close never saves implicitly.
func newActionBar(v *View) fyne.CanvasObject {
	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), v.Save)
	exportBtn := widget.NewButtonWithIcon("Export PDF", theme.MailForwardIcon(), v.ExportPDF)
	closeBtn := widget.NewButtonWithIcon("Close", theme.CancelIcon(), v.Close)

	return container.NewHBox(saveBtn, exportBtn, closeBtn)
}

func liveColor(v *View) color.Color {
	c, _ := colorutil.ParseHex(v.store.Current().PenColor)
	return c
}
