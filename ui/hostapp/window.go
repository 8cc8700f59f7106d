// Package hostapp provides the demo note-taking host window: a text editor
// with a ribbon strip, a settings dialog, and a plugin registry implementing
// the host contracts.
package hostapp

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"noteink/internal/app"
	"noteink/internal/host"
	"noteink/internal/version"
)

const windowTitle = "NoteInk"

// Window is the primary host application window.
type Window struct {
	fyne.Window
	app         fyne.App
	state       *app.State
	storageRoot string

	editor    *widget.Entry
	ribbon    *fyne.Container
	statusBar *widget.Label

	settingsTabs []host.SettingsTab
}

// New creates the host window. storageRoot is the directory plugin data
// records are kept in.
func New(fyneApp fyne.App, state *app.State, storageRoot string) *Window {
	win := fyneApp.NewWindow(windowTitle)

	w := &Window{
		Window:      win,
		app:         fyneApp,
		state:       state,
		storageRoot: storageRoot,
	}

	w.setupUI()
	w.setupMenus()
	w.setupEventHandlers()

	win.Resize(fyne.NewSize(1024, 720))
	return w
}

// setupUI creates the main layout: ribbon strip | editor, status bar below.
func (w *Window) setupUI() {
	w.editor = widget.NewMultiLineEntry()
	w.editor.SetPlaceHolder("Write a note...")
	w.editor.Wrapping = fyne.TextWrapWord
	w.editor.OnChanged = func(text string) {
		w.state.SetNoteText(text)
		w.state.SetModified(true)
	}

	w.ribbon = container.NewVBox()
	w.statusBar = widget.NewLabel("Ready")

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(w.statusBar),  // bottom
		container.NewPadded(w.ribbon),     // left
		nil,                               // right
		w.editor,                          // center
	)
	w.SetContent(content)
}

// setupMenus creates the application menus.
func (w *Window) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Note...", w.onOpenNote),
		fyne.NewMenuItem("Save Note", w.onSaveNote),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { w.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Settings...", w.onSettings),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", w.onAbout),
	)

	w.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

// setupEventHandlers registers for host application events.
func (w *Window) setupEventHandlers() {
	w.state.On(app.EventNoteLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			_, text := w.state.Note()
			w.editor.SetText(text)
			w.SetTitle(windowTitle + " - " + filepath.Base(path))
			w.setStatus("Opened " + filepath.Base(path))
		}
	})

	w.state.On(app.EventNoteSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			w.setStatus("Saved " + filepath.Base(path))
		}
	})

	w.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			path, _ := w.state.Note()
			if path != "" {
				w.SetTitle(windowTitle + " - " + filepath.Base(path) + " *")
			}
		}
	})

	w.state.On(app.EventPluginRegistered, func(data interface{}) {
		if name, ok := data.(string); ok {
			w.setStatus("Plugin ready: " + name)
		}
	})

	w.state.On(app.EventStatus, func(data interface{}) {
		if msg, ok := data.(string); ok {
			w.setStatus(msg)
		}
	})
}

// Install activates a plugin against this window's host facade.
func (w *Window) Install(p host.Plugin) error {
	h := newPluginHost(w, p.Name())
	if err := p.OnActivate(h); err != nil {
		return fmt.Errorf("activate plugin %s: %w", p.Name(), err)
	}
	w.state.Emit(app.EventPluginRegistered, p.Name())
	return nil
}

func (w *Window) setStatus(text string) {
	w.statusBar.SetText(text)
}

// notify shows a transient message: status bar plus a system notification.
func (w *Window) notify(msg string) {
	log.Printf("notify: %s", msg)
	w.setStatus(msg)
	w.app.SendNotification(&fyne.Notification{Title: windowTitle, Content: msg})
}

func (w *Window) onOpenNote() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("open note dialog: %v", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if err := reader.Close(); err != nil {
			log.Printf("closing note reader: %v", err)
		}
		if err := w.state.LoadNote(path); err != nil {
			log.Printf("%v", err)
			w.notify("Opening note failed")
		}
	}, w.Window)
	fd.Show()
}

func (w *Window) onSaveNote() {
	if err := w.state.SaveNote(); err != nil {
		log.Printf("%v", err)
		w.notify("Saving note failed")
	}
}

func (w *Window) onAbout() {
	dialog.ShowInformation("About",
		fmt.Sprintf("%s %s\nA note-taking host with a drawing overlay plugin.",
			windowTitle, version.String()),
		w.Window)
}
