package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

func TestAttributeResolverColor(t *testing.T) {
	r := NewAttributeResolver(newFakeTheme())

	c, err := r.Color(constants.AttrColorControlActivated)
	require.NoError(t, err)
	assert.Equal(t, color.Color(0xFFFF4081), c)
}

func TestAttributeResolverColorFailure(t *testing.T) {
	r := NewAttributeResolver(newFakeTheme())

	_, err := r.Color("colorAccent")
	require.Error(t, err)
	assert.True(t, IsAttributeResolutionFailure(err))
	assert.ErrorIs(t, err, ErrAttributeUnresolved)

	var resErr *AttributeResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, constants.Attribute("colorAccent"), resErr.Attribute)
}

func TestAttributeResolverDisabledColor(t *testing.T) {
	for _, alpha := range []uint8{0, 128, 255} {
		for _, fraction := range []float64{0.0, 0.38, 1.0} {
			theme := newFakeTheme()
			theme.colors[constants.AttrColorControlNormal] = color.ARGB(alpha, 0x11, 0x22, 0x33)
			theme.floats[constants.AttrDisabledAlpha] = fraction

			c, err := NewAttributeResolver(theme).DisabledColor(constants.AttrColorControlNormal)
			require.NoError(t, err)

			want := map[float64]map[uint8]uint8{
				0.0:  {0: 0, 128: 0, 255: 0},
				0.38: {0: 0, 128: 49, 255: 97},
				1.0:  {0: 0, 128: 128, 255: 255},
			}[fraction][alpha]

			assert.Equal(t, want, c.A(), "alpha %d * %v", alpha, fraction)
			assert.Equal(t, uint8(0x11), c.R())
			assert.Equal(t, uint8(0x22), c.G())
			assert.Equal(t, uint8(0x33), c.B())
		}
	}
}

func TestAttributeResolverDisabledAlphaClamped(t *testing.T) {
	theme := newFakeTheme()
	theme.colors[constants.AttrColorControlNormal] = 0xC0FFFFFF
	theme.floats[constants.AttrDisabledAlpha] = 2

	c, err := NewAttributeResolver(theme).DisabledColor(constants.AttrColorControlNormal)
	require.NoError(t, err)
	assert.Equal(t, color.Color(0xFFFFFFFF), c)
}

func TestAttributeResolverMissingDisabledAlpha(t *testing.T) {
	theme := newFakeTheme()
	delete(theme.floats, constants.AttrDisabledAlpha)

	_, err := NewAttributeResolver(theme).DisabledColor(constants.AttrColorControlNormal)

	var resErr *AttributeResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, constants.AttrDisabledAlpha, resErr.Attribute)
}
