// Package export renders the current drawing into shareable documents.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// A4 landscape page and margin, in millimeters.
const (
	pageWidthMM  = 297.0
	pageHeightMM = 210.0
	marginMM     = 10.0
)

// WritePDF renders the drawing as a single-page PDF, scaled to fit the page
// while preserving aspect ratio.
func WritePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("drawing", opts, &buf)

	bounds := img.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())
	if imgW <= 0 || imgH <= 0 {
		return fmt.Errorf("export pdf: empty image")
	}

	maxW := pageWidthMM - 2*marginMM
	maxH := pageHeightMM - 2*marginMM
	scale := maxW / imgW
	if imgH*scale > maxH {
		scale = maxH / imgH
	}
	drawW := imgW * scale
	drawH := imgH * scale
	x := (pageWidthMM - drawW) / 2
	y := (pageHeightMM - drawH) / 2

	pdf.ImageOptions("drawing", x, y, drawW, drawH, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}
