package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestWritePDF(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		img.SetRGBA(x, 50, color.RGBA{R: 255, A: 255})
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, img); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("output suspiciously small: %d bytes", buf.Len())
	}
}

func TestWritePDFTallImageFitsPage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 4000))
	var buf bytes.Buffer
	if err := WritePDF(&buf, img); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}
