package imagestore

import (
	"image"
	"image/draw"
	"slices"

	"github.com/BrandonKowalski/tintkit/pkg/tint"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

// Image is a rasterised asset, or a stack of layers for containers.
// Decorations are recorded and only applied by Render.
type Image struct {
	id     constants.AssetID
	name   string
	src    *image.RGBA
	layers []*Image

	filter *tint.Filter
	states *tint.ColorStateList
}

func (i *Image) ID() constants.AssetID { return i.id }
func (i *Image) Name() string          { return i.name }

// Layers returns a copy of the child images of a container, bottom first.
func (i *Image) Layers() []*Image {
	return slices.Clone(i.layers)
}

func (i *Image) Filter() *tint.Filter {
	return i.filter
}

func (i *Image) StateList() *tint.ColorStateList {
	return i.states
}

func (i *Image) SetColorFilter(f *tint.Filter) {
	i.filter = f
}

func (i *Image) SetColorStateSource(l *tint.ColorStateList) {
	i.states = l
}

func (i *Image) Bounds() image.Rectangle {
	if i.src != nil {
		return i.src.Bounds()
	}

	var b image.Rectangle
	for _, layer := range i.layers {
		b = b.Union(layer.Bounds())
	}
	return b
}

// Render draws the image for the given state. A state list takes priority
// over a filter and is applied with the default blend mode.
func (i *Image) Render(state tint.State) *image.RGBA {
	base := i.src
	if base == nil {
		base = image.NewRGBA(i.Bounds())
		for _, layer := range i.layers {
			out := layer.Render(state)
			draw.Draw(base, out.Bounds(), out, out.Bounds().Min, draw.Over)
		}
	}

	switch {
	case i.states != nil:
		return tint.NewFilter(i.states.ColorFor(state), tint.DefaultMode).Apply(base)
	case i.filter != nil:
		return i.filter.Apply(base)
	}

	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)
	return out
}
