package hostapp

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"noteink/internal/host"
	"noteink/internal/storage"
)

// pluginHost is the per-plugin facade over the window; it implements
// host.Host. Each plugin gets its own storage record scoped by name.
type pluginHost struct {
	win     *Window
	storage *storage.FileStore
}

var _ host.Host = (*pluginHost)(nil)

func newPluginHost(w *Window, pluginName string) *pluginHost {
	return &pluginHost{
		win:     w,
		storage: storage.NewFileStore(w.storageRoot, pluginName),
	}
}

func (h *pluginHost) Storage() host.Storage {
	return h.storage
}

// AddRibbonIcon places a button on the ribbon strip and returns its
// registration handle.
func (h *pluginHost) AddRibbonIcon(iconID, label string, onClick func()) string {
	btn := widget.NewButtonWithIcon("", ribbonIcon(iconID), onClick)
	btn.Importance = widget.LowImportance

	h.win.ribbon.Add(btn)
	h.win.ribbon.Refresh()
	return uuid.NewString()
}

func (h *pluginHost) RegisterSettingsTab(tab host.SettingsTab) {
	h.win.settingsTabs = append(h.win.settingsTabs, tab)
}

func (h *pluginHost) Notify(message string) {
	h.win.notify(message)
}

func (h *pluginHost) Window() fyne.Window {
	return h.win.Window
}

// ribbonIcon maps the host's icon identifiers onto theme resources.
func ribbonIcon(iconID string) fyne.Resource {
	switch iconID {
	case "pencil":
		return theme.DocumentCreateIcon()
	case "palette":
		return theme.ColorPaletteIcon()
	default:
		return theme.SettingsIcon()
	}
}
