package colorutil

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#000000", color.RGBA{A: 255}, true},
		{"#ff0000", color.RGBA{R: 255, A: 255}, true},
		{"#00FF7f", color.RGBA{G: 255, B: 127, A: 255}, true},
		{"#abc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}, true},
		{"  #123456  ", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, true},
		{"123456", Black, false},
		{"#12345", Black, false},
		{"#gggggg", Black, false},
		{"", Black, false},
	}

	for _, tt := range tests {
		got, ok := ParseHex(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseHex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ff00ff", "#123456"} {
		c, ok := ParseHex(hex)
		if !ok {
			t.Fatalf("ParseHex(%q) failed", hex)
		}
		if got := FormatHex(c); got != hex {
			t.Errorf("FormatHex(ParseHex(%q)) = %q", hex, got)
		}
	}
}
