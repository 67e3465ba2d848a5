package tint

import (
	"image"
	imgcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
)

func maskImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, imgcolor.RGBA{R: 64, G: 32, B: 16, A: 128}) // premultiplied
	return img
}

func TestFilterApplySrcIn(t *testing.T) {
	src := maskImage()
	out := NewFilter(0xFF336699, BlendSrcIn).Apply(src)

	assert.Equal(t, imgcolor.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}, out.RGBAAt(0, 0))
	// Color follows the destination alpha only.
	assert.Equal(t, imgcolor.RGBA{R: 26, G: 51, B: 77, A: 128}, out.RGBAAt(1, 0))

	// Source is untouched.
	assert.Equal(t, imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}, src.RGBAAt(0, 0))
}

func TestFilterApplyMultiply(t *testing.T) {
	out := NewFilter(0xFF808080, BlendMultiply).Apply(maskImage())

	assert.Equal(t, imgcolor.RGBA{R: 128, G: 128, B: 128, A: 255}, out.RGBAAt(0, 0))
	assert.Equal(t, imgcolor.RGBA{R: 32, G: 16, B: 8, A: 128}, out.RGBAAt(1, 0))
}

func TestFilterApplyTranslucentColor(t *testing.T) {
	out := NewFilter(0x80FFFFFF, BlendSrcIn).Apply(maskImage())
	assert.Equal(t, imgcolor.RGBA{R: 128, G: 128, B: 128, A: 128}, out.RGBAAt(0, 0))
}

func TestFilterApplyMatchesColorModel(t *testing.T) {
	c := color.ARGB(0x80, 0x01, 0x02, 0x03)

	for _, mode := range []BlendMode{BlendSrcIn, BlendMultiply} {
		out := NewFilter(c, mode).Apply(maskImage())
		assert.Equal(t, imgcolor.RGBAModel.Convert(c), out.RGBAAt(0, 0), mode.String())
	}
}

func TestBlendModeString(t *testing.T) {
	assert.Equal(t, "src_in", BlendSrcIn.String())
	assert.Equal(t, "multiply", BlendMultiply.String())
	assert.Equal(t, "BlendMode(9)", BlendMode(9).String())
}
