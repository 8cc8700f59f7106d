package inkplugin

import (
	"log"

	"noteink/internal/host"
)

// settingsTab renders the plugin's preferences through the host's control
// builder. Every change is set-then-save; the destructive clear action
// erases the persisted snapshot outright.
type settingsTab struct {
	plugin *Plugin
}

var _ host.SettingsTab = (*settingsTab)(nil)

func (t *settingsTab) Title() string {
	return "Drawing"
}

func (t *settingsTab) Render(c host.SettingsControls) {
	p := t.plugin
	cur := p.store.Current()

	c.AddColor("Default pen color", cur.PenColor, func(hex string) {
		p.store.SetPenColor(hex)
		p.saveSettings()
	})

	c.AddSlider("Default pen width", 1, 20, float64(cur.PenWidth), func(val float64) {
		p.store.SetPenWidth(int(val))
		p.saveSettings()
	})

	c.AddSlider("Eraser size", 4, 80, float64(cur.EraserSize), func(val float64) {
		p.store.SetEraserSize(int(val))
		p.saveSettings()
	})

	c.AddToggle("Show toolbar", cur.ShowToolbar, func(show bool) {
		p.store.SetShowToolbar(show)
		p.saveSettings()
	})

	c.AddButton("Clear saved drawing", func() {
		if err := p.snaps.Clear(); err != nil {
			log.Printf("ink-overlay: %v", err)
			p.h.Notify("Clearing saved drawing failed")
			return
		}
		p.h.Notify("Saved drawing cleared")
	})
}
