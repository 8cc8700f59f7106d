// Package main provides the entry point for the NoteInk application.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"noteink/internal/app"
	"noteink/internal/storage"
	"noteink/internal/version"
	"noteink/ui/hostapp"
	"noteink/ui/inkplugin"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting NoteInk %s", version.String())

	fyneApp := fyneapp.NewWithID("noteink")
	fyneApp.Settings().SetTheme(&app.NoteInkTheme{})

	state := app.NewState()
	win := hostapp.New(fyneApp, state, storage.DefaultRoot())

	if err := win.Install(inkplugin.New()); err != nil {
		log.Printf("Failed to install ink plugin: %v", err)
	}

	// Handle command line arguments
	if len(os.Args) > 1 {
		notePath := os.Args[1]
		if err := state.LoadNote(notePath); err != nil {
			log.Printf("Failed to open note %s: %v", notePath, err)
		}
	}

	win.ShowAndRun()
}
