// Package colorutil provides shared color utilities for the noteink application.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"
)

// Common ink colors offered as toolbar swatches.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Green  = color.RGBA{R: 40, G: 160, B: 60, A: 255}
	Blue   = color.RGBA{R: 40, G: 80, B: 220, A: 255}
	Yellow = color.RGBA{R: 240, G: 200, B: 0, A: 255}
)

// ParseHex parses a "#rrggbb" or "#rgb" color string.
// Malformed input yields opaque black and ok=false; callers that merge
// persisted settings rely on the fallback rather than an error.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Black, false
	}
	hex := s[1:]

	nibble := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	switch len(hex) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return Black, false
			}
			c[i] = n*16 + n
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, true
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := nibble(hex[2*i])
			lo, ok2 := nibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return Black, false
			}
			c[i] = hi*16 + lo
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, true
	}
	return Black, false
}

// FormatHex renders a color as a "#rrggbb" string, discarding alpha.
func FormatHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
