// snapdump extracts the drawing snapshot from a plugin data record and
// writes it out as a plain PNG for inspection.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"noteink/internal/snapshot"
)

func main() {
	dataPath := flag.String("data", "", "plugin data record (e.g. ~/.config/noteink/plugins/ink-overlay.json)")
	outPath := flag.String("out", "drawing.png", "output PNG path")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: snapdump -data <record.json> [-out drawing.png]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("Failed to read record: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		log.Fatalf("Failed to parse record: %v", err)
	}

	snap := snapshot.FromRecord(record)
	if snap == nil {
		log.Fatalf("No drawing snapshot stored in %s", *dataPath)
	}

	img, err := snapshot.Decode(snap.Drawing)
	if err != nil {
		log.Fatalf("Failed to decode snapshot: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}

	taken := time.UnixMilli(snap.Timestamp)
	log.Printf("Wrote %s (%dx%d, saved %s)",
		*outPath, img.Bounds().Dx(), img.Bounds().Dy(),
		taken.Format("2006-01-02 15:04:05"))
}
