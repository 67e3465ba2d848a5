package tint

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
)

// BlendMode is the Porter-Duff rule combining a filter color with an asset's pixels.
type BlendMode int

const (
	BlendSrcIn    BlendMode = iota // Filter color masked by the asset's alpha
	BlendMultiply                  // Filter color multiplied with the asset's color
)

// DefaultMode is the blend mode used by single-color tints unless a rule says otherwise.
const DefaultMode = BlendSrcIn

func (m BlendMode) String() string {
	switch m {
	case BlendSrcIn:
		return "src_in"
	case BlendMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// Filter is an immutable color filter. A single Filter is shared by every
// asset tinted with the same color and mode.
type Filter struct {
	color color.Color
	mode  BlendMode
}

func NewFilter(c color.Color, mode BlendMode) *Filter {
	return &Filter{color: c, mode: mode}
}

func (f *Filter) Color() color.Color { return f.color }
func (f *Filter) Mode() BlendMode    { return f.mode }

func (f *Filter) String() string {
	return fmt.Sprintf("%s/%s", f.color, f.mode)
}

// Apply composites the filter onto a copy of src and returns the copy.
// All arithmetic happens on premultiplied 8-bit channels:
//
//	src_in:   a = Fa*Da, c = Fc*Da
//	multiply: a = Fa*Da, c = Fc*Dc
func (f *Filter) Apply(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	fa := uint32(f.color.A())
	fr := mul8(uint32(f.color.R()), fa)
	fg := mul8(uint32(f.color.G()), fa)
	fb := mul8(uint32(f.color.B()), fa)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		da := uint32(p[3])

		switch f.mode {
		case BlendMultiply:
			p[0] = uint8(mul8(fr, uint32(p[0])))
			p[1] = uint8(mul8(fg, uint32(p[1])))
			p[2] = uint8(mul8(fb, uint32(p[2])))
		default:
			p[0] = uint8(mul8(fr, da))
			p[1] = uint8(mul8(fg, da))
			p[2] = uint8(mul8(fb, da))
		}
		p[3] = uint8(mul8(fa, da))
	}

	return dst
}

// mul8 multiplies two 0..255 channel values, rounding to nearest.
func mul8(x, y uint32) uint32 {
	return (x*y + 127) / 255
}
