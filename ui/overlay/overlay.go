package overlay

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"

	"noteink/internal/export"
	"noteink/internal/ink"
	"noteink/internal/settings"
	"noteink/internal/snapshot"
)

// View is one mounted overlay: the drawing session plus its chrome. It is
// built fresh on every activation and discarded on close; only the settings
// store and the persisted snapshot bridge activations.
type View struct {
	win      fyne.Window
	session  *ink.Session
	store    *settings.Store
	snaps    *snapshot.Store
	notify   func(string)
	onClosed func()

	surface *drawSurface
	root    fyne.CanvasObject
}

// Open builds an overlay session sized to the host window's current
// viewport, reloads the saved snapshot as the canvas background, and mounts
// canvas, toolbar, and action bar on the window.
func Open(win fyne.Window, store *settings.Store, snaps *snapshot.Store, notify func(string), onClosed func()) *View {
	size := win.Canvas().Size()
	canvas := ink.NewCanvas(int(size.Width), int(size.Height))

	// Reload the previous drawing, if any. Failures degrade to a blank
	// canvas rather than blocking activation.
	if snap, err := snaps.Load(); err != nil {
		log.Printf("overlay: loading snapshot: %v", err)
	} else if snap != nil {
		if bg, err := snapshot.Decode(snap.Drawing); err != nil {
			log.Printf("overlay: decoding snapshot: %v", err)
		} else {
			canvas.SetBackground(bg)
		}
	}

	v := &View{
		win:      win,
		session:  ink.NewSession(canvas, store),
		store:    store,
		snaps:    snaps,
		notify:   notify,
		onClosed: onClosed,
	}
	v.surface = newDrawSurface(v.session)

	var top fyne.CanvasObject
	if store.Current().ShowToolbar {
		top = container.NewHBox(layout.NewSpacer(), newToolbar(v), layout.NewSpacer())
	}
	bottom := container.NewHBox(layout.NewSpacer(), newActionBar(v), layout.NewSpacer())

	chrome := container.NewBorder(top, bottom, nil, nil, layout.NewSpacer())
	v.root = container.NewStack(v.surface, chrome)

	win.Canvas().Overlays().Add(v.root)
	v.root.Resize(size)
	return v
}

// Session exposes the drawing session, mainly for the toolbar.
func (v *View) Session() *ink.Session {
	return v.session
}

// Save encodes the canvas and persists it, overwriting the previous
// snapshot. Failures are logged and reported; the overlay stays up.
func (v *View) Save() {
	if _, err := v.snaps.Save(v.session.Canvas().Image()); err != nil {
		log.Printf("overlay: saving drawing: %v", err)
		v.notify("Saving drawing failed")
		return
	}
	v.notify("Drawing saved")
}

// ExportPDF asks for a destination and writes the drawing as a PDF.
func (v *View) ExportPDF() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("overlay: export dialog: %v", err)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("overlay: closing export file: %v", err)
			}
		}()

		if err := export.WritePDF(writer, v.session.Canvas().Image()); err != nil {
			log.Printf("overlay: %v", err)
			v.notify("PDF export failed")
			return
		}
		v.notify("Drawing exported")
	}, v.win)
	fd.SetFileName("drawing.pdf")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fd.Show()
}

// Close unmounts the overlay unconditionally. Unsaved strokes are lost;
// saving is always an explicit action.
func (v *View) Close() {
	v.win.Canvas().Overlays().Remove(v.root)
	if v.onClosed != nil {
		v.onClosed()
	}
}
