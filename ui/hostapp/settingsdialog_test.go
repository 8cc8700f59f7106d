package hostapp

import (
	"testing"

	fynetest "fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"noteink/internal/host"
)

// fakeTab records the controls it was asked to render.
type fakeTab struct {
	rendered bool
}

func (t *fakeTab) Title() string { return "Fake" }

func (t *fakeTab) Render(c host.SettingsControls) {
	t.rendered = true
	c.AddText("Name", "initial", func(string) {})
	c.AddSlider("Width", 1, 20, 3, func(float64) {})
	c.AddToggle("Enabled", true, func(bool) {})
	c.AddButton("Do it", func() {})
}

func TestControlsBuilderAppendsFormRows(t *testing.T) {
	a := fynetest.NewApp()
	defer a.Quit()
	win := a.NewWindow("test")

	b := newControlsBuilder(win)
	tab := &fakeTab{}
	tab.Render(b)

	if !tab.rendered {
		t.Fatal("Render was not called")
	}
	if got := len(b.form.Items); got != 4 {
		t.Fatalf("form rows = %d, want 4", got)
	}
	if b.form.Items[0].Text != "Name" {
		t.Errorf("first row label = %q, want Name", b.form.Items[0].Text)
	}
	entry, ok := b.form.Items[0].Widget.(*widget.Entry)
	if !ok {
		t.Fatalf("first row widget = %T, want *widget.Entry", b.form.Items[0].Widget)
	}
	if entry.Text != "initial" {
		t.Errorf("entry text = %q, want initial", entry.Text)
	}
}

func TestTextControlReportsChanges(t *testing.T) {
	a := fynetest.NewApp()
	defer a.Quit()
	win := a.NewWindow("test")

	var got string
	b := newControlsBuilder(win)
	b.AddText("Name", "", func(s string) { got = s })

	entry := b.form.Items[0].Widget.(*widget.Entry)
	entry.SetText("changed")

	if got != "changed" {
		t.Errorf("onChange received %q, want changed", got)
	}
}

func TestToggleControlReportsChanges(t *testing.T) {
	a := fynetest.NewApp()
	defer a.Quit()
	win := a.NewWindow("test")

	var got bool
	b := newControlsBuilder(win)
	b.AddToggle("Enabled", false, func(v bool) { got = v })

	check := b.form.Items[0].Widget.(*widget.Check)
	check.SetChecked(true)

	if !got {
		t.Error("onChange not invoked with true")
	}
}
