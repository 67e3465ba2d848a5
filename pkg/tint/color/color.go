// Package color provides the packed ARGB color used by themes, filters and state lists.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a packed 0xAARRGGBB value. The alpha channel can be changed
// without touching the RGB channels.
type Color uint32

// Transparent is fully transparent black.
const Transparent Color = 0

// RGB converts a 0xRRGGBB hex value to an opaque Color.
func RGB(hex uint32) Color {
	return Color(0xFF000000 | (hex & 0x00FFFFFF))
}

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Parse reads "#RRGGBB" or "#AARRGGBB". The leading '#' is optional.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color: invalid value %q: %w", s, err)
	}

	switch len(hex) {
	case 6:
		return RGB(uint32(v)), nil
	case 8:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("color: invalid value %q: want #RRGGBB or #AARRGGBB", s)
	}
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return (c & 0x00FFFFFF) | Color(a)<<24
}

// ScaleAlpha multiplies the alpha channel by f, rounding to the nearest
// channel value and clamping to 0..255.
func (c Color) ScaleAlpha(f float64) Color {
	a := math.Round(float64(c.A()) * f)
	switch {
	case math.IsNaN(a) || a < 0:
		a = 0
	case a > 255:
		a = 255
	}
	return c.WithAlpha(uint8(a))
}

// RGBA implements image/color.Color. Channels are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	// Rounded the same way the filters multiply channels.
	r = (uint32(c.R())*a + 127) / 0xFF
	g = (uint32(c.G())*a + 127) / 0xFF
	b = (uint32(c.B())*a + 127) / 0xFF

	// Widen 8-bit to 16-bit.
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
