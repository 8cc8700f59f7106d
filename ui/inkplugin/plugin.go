// Package inkplugin is the drawing-overlay plugin: it registers a ribbon
// icon and a settings tab with the host and owns the overlay session.
package inkplugin

import (
	"fmt"
	"log"

	"noteink/internal/host"
	"noteink/internal/settings"
	"noteink/internal/snapshot"
	"noteink/ui/overlay"
)

// Plugin implements the host's lifecycle-hook capability.
type Plugin struct {
	h     host.Host
	store *settings.Store
	snaps *snapshot.Store

	// Current overlay session; nil while unmounted. Re-activation always
	// builds a fresh session.
	view *overlay.View
}

// New creates the plugin. Nothing happens until the host calls OnActivate.
func New() *Plugin {
	return &Plugin{}
}

// Name is the plugin identifier; the host scopes its storage record by it.
func (p *Plugin) Name() string {
	return "ink-overlay"
}

// OnActivate loads the settings and registers the ribbon icon and settings
// tab. A failed settings load falls back to defaults; the plugin still
// activates.
func (p *Plugin) OnActivate(h host.Host) error {
	if h == nil {
		return fmt.Errorf("ink-overlay: nil host")
	}
	p.h = h
	p.store = settings.NewStore(h.Storage())
	p.snaps = snapshot.NewStore(h.Storage())

	if err := p.store.Load(); err != nil {
		log.Printf("ink-overlay: loading settings: %v", err)
	}

	h.AddRibbonIcon("pencil", "Open drawing overlay", p.openOverlay)
	h.RegisterSettingsTab(&settingsTab{plugin: p})
	return nil
}

// openOverlay mounts a fresh drawing session. Only one overlay is mounted
// at a time; clicking the ribbon icon again is a no-op until it closes.
func (p *Plugin) openOverlay() {
	if p.view != nil {
		return
	}
	p.view = overlay.Open(p.h.Window(), p.store, p.snaps, p.h.Notify, func() {
		p.view = nil
	})
}

// saveSettings persists the live settings after a settings-panel change.
func (p *Plugin) saveSettings() {
	if err := p.store.Save(); err != nil {
		log.Printf("ink-overlay: %v", err)
		p.h.Notify("Saving settings failed")
	}
}
