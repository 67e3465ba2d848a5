package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBIsOpaque(t *testing.T) {
	c := RGB(0x008080)
	assert.Equal(t, Color(0xFF008080), c)
	assert.Equal(t, uint8(0xFF), c.A())
	assert.Equal(t, uint8(0x00), c.R())
	assert.Equal(t, uint8(0x80), c.G())
	assert.Equal(t, uint8(0x80), c.B())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FFFFFF", 0xFFFFFFFF},
		{"#8A000000", 0x8A000000},
		{"008080", 0xFF008080},
		{" #61ff4081 ", 0x61FF4081},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGGGGG", "#123456789"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestWithAlphaKeepsRGB(t *testing.T) {
	c := Color(0x80123456).WithAlpha(0x10)
	assert.Equal(t, Color(0x10123456), c)
}

func TestScaleAlpha(t *testing.T) {
	for _, a := range []uint8{0, 128, 255} {
		for _, f := range []float64{0.0, 0.38, 1.0} {
			base := ARGB(a, 0x12, 0x34, 0x56)
			got := base.ScaleAlpha(f)

			want := uint8(0)
			switch {
			case a == 128 && f == 0.38:
				want = 49 // round(48.64)
			case a == 255 && f == 0.38:
				want = 97 // round(96.9)
			case f == 1.0:
				want = a
			}
			assert.Equal(t, want, got.A(), "alpha %d * %v", a, f)
			assert.Equal(t, base&0x00FFFFFF, got&0x00FFFFFF)
		}
	}
}

func TestScaleAlphaClamps(t *testing.T) {
	assert.Equal(t, uint8(255), RGB(0xFFFFFF).ScaleAlpha(1.5).A())
	assert.Equal(t, uint8(0), RGB(0xFFFFFF).ScaleAlpha(-0.2).A())
}

func TestRGBAIsPremultiplied(t *testing.T) {
	r, g, b, a := ARGB(0x80, 0xFF, 0x00, 0xFF).RGBA()
	assert.Equal(t, uint32(0x8080), a)
	assert.Equal(t, uint32(0x8080), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8080), b)
}

func TestRGBARoundsSmallChannels(t *testing.T) {
	r, g, b, a := ARGB(0x80, 0x01, 0x02, 0x03).RGBA()
	assert.Equal(t, uint32(0x8080), a)
	assert.Equal(t, uint32(0x101), r)
	assert.Equal(t, uint32(0x101), g)
	assert.Equal(t, uint32(0x202), b)
}

func TestString(t *testing.T) {
	assert.Equal(t, "#FF008080", RGB(0x008080).String())
}
