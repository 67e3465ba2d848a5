package sdlasset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tintkit/pkg/tint"
	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
)

func TestModulationMultiplyBlendsOverDestination(t *testing.T) {
	tex := &Texture{}
	tex.SetColorFilter(tint.NewFilter(0xFFFAFAFA, tint.BlendMultiply))

	c, blend := tex.modulation(tint.StateEnabled)
	assert.Equal(t, color.Color(0xFFFAFAFA), c)
	assert.Equal(t, sdl.BLENDMODE_BLEND, blend)
}

func TestModulationSrcIn(t *testing.T) {
	tex := &Texture{}
	tex.SetColorFilter(tint.NewFilter(0x8A000000, tint.BlendSrcIn))

	c, blend := tex.modulation(tint.StateEnabled)
	assert.Equal(t, color.Color(0x8A000000), c)
	assert.Equal(t, sdl.BLENDMODE_BLEND, blend)
}

func TestModulationStateListWinsOverFilter(t *testing.T) {
	tex := &Texture{}
	tex.SetColorFilter(tint.NewFilter(0xFF000000, tint.BlendSrcIn))
	tex.SetColorStateSource(tint.BuildDefaultStateList(0xFF111111, 0xFF222222, 0x80111111))

	c, _ := tex.modulation(tint.StateEnabled | tint.StatePressed)
	assert.Equal(t, color.Color(0xFF222222), c)

	c, _ = tex.modulation(0)
	assert.Equal(t, color.Color(0x80111111), c)
}

func TestModulationUndecoratedIsOpaqueWhite(t *testing.T) {
	c, blend := (&Texture{}).modulation(tint.StateEnabled)
	assert.Equal(t, color.RGB(0xFFFFFF), c)
	assert.Equal(t, sdl.BLENDMODE_BLEND, blend)
}
