package hostapp

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"noteink/internal/host"
	"noteink/pkg/colorutil"
)

// controlsBuilder composes a settings tab out of labeled form rows. It
// implements host.SettingsControls.
type controlsBuilder struct {
	win  fyne.Window
	form *widget.Form
}

var _ host.SettingsControls = (*controlsBuilder)(nil)

func newControlsBuilder(win fyne.Window) *controlsBuilder {
	return &controlsBuilder{win: win, form: widget.NewForm()}
}

func (b *controlsBuilder) AddText(label, value string, onChange func(string)) {
	entry := widget.NewEntry()
	entry.SetText(value)
	entry.OnChanged = onChange
	b.form.Append(label, entry)
}

func (b *controlsBuilder) AddColor(label, hex string, onChange func(string)) {
	swatch := fynecanvas.NewRectangle(parseOrBlack(hex))
	swatch.SetMinSize(fyne.NewSize(24, 24))

	pick := widget.NewButton("Choose...", func() {
		picker := dialog.NewColorPicker(label, "", func(c color.Color) {
			swatch.FillColor = c
			swatch.Refresh()
			onChange(colorutil.FormatHex(c))
		}, b.win)
		picker.Advanced = true
		picker.Show()
	})

	b.form.Append(label, container.NewHBox(container.NewCenter(swatch), pick))
}

func (b *controlsBuilder) AddSlider(label string, min, max, value float64, onChange func(float64)) {
	readout := widget.NewLabel(fmt.Sprintf("%.0f", value))
	slider := widget.NewSlider(min, max)
	slider.SetValue(value)
	slider.OnChanged = func(val float64) {
		readout.SetText(fmt.Sprintf("%.0f", val))
		onChange(val)
	}
	b.form.Append(label, container.NewBorder(nil, nil, nil, readout, slider))
}

func (b *controlsBuilder) AddToggle(label string, value bool, onChange func(bool)) {
	check := widget.NewCheck("", onChange)
	check.SetChecked(value)
	b.form.Append(label, check)
}

func (b *controlsBuilder) AddButton(label string, onTapped func()) {
	b.form.Append("", widget.NewButton(label, onTapped))
}

// onSettings opens the settings dialog with one tab per registered plugin
// settings panel.
func (w *Window) onSettings() {
	if len(w.settingsTabs) == 0 {
		dialog.ShowInformation("Settings", "No plugin settings registered.", w.Window)
		return
	}

	tabs := container.NewAppTabs()
	for _, tab := range w.settingsTabs {
		builder := newControlsBuilder(w.Window)
		tab.Render(builder)
		tabs.Append(container.NewTabItem(tab.Title(), builder.form))
	}

	dlg := dialog.NewCustom("Settings", "Close", tabs, w.Window)
	dlg.Resize(fyne.NewSize(460, 380))
	dlg.Show()
}

func parseOrBlack(hex string) color.Color {
	c, _ := colorutil.ParseHex(hex)
	return c
}
