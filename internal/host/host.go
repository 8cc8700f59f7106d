// Package host defines the narrow contracts between the note-taking host
// application and its plugins. Plugins are plain values implementing these
// interfaces; nothing is inherited from the host.
package host

import "fyne.io/fyne/v2"

// Storage is the host's key-value blob persistence, scoped to one plugin.
// LoadData returns nil on first run. SaveData overwrites the whole record.
type Storage interface {
	LoadData() (map[string]any, error)
	SaveData(data map[string]any) error
}

// Plugin is the lifecycle-hook capability. OnActivate is called once when
// the host installs the plugin; registrations happen through the Host.
type Plugin interface {
	Name() string
	OnActivate(h Host) error
}

// SettingsControls builds a settings tab out of labeled controls. Each
// control reports changes through its callback; the host owns the widgets.
type SettingsControls interface {
	AddText(label, value string, onChange func(string))
	AddColor(label, hex string, onChange func(string))
	AddSlider(label string, min, max, value float64, onChange func(float64))
	AddToggle(label string, value bool, onChange func(bool))
	AddButton(label string, onTapped func())
}

// SettingsTab is the settings-panel-renderer capability. Render composes the
// tab's controls into the supplied builder.
type SettingsTab interface {
	Title() string
	Render(c SettingsControls)
}

// Host is what a plugin receives on activation.
type Host interface {
	// Storage returns the plugin's persistence blob.
	Storage() Storage

	// AddRibbonIcon places an icon on the host's ribbon strip and returns a
	// registration handle.
	AddRibbonIcon(iconID, label string, onClick func()) string

	// RegisterSettingsTab adds a tab to the host's settings dialog.
	RegisterSettingsTab(tab SettingsTab)

	// Notify shows a transient user-visible message.
	Notify(message string)

	// Window is the host window plugins mount overlays on.
	Window() fyne.Window
}
