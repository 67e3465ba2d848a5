package tint

import (
	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

// AttributeResolver turns theme attributes into colors. Failures are
// surfaced as *AttributeResolutionError; callers decide how to degrade.
type AttributeResolver struct {
	theme Theme
}

func NewAttributeResolver(theme Theme) *AttributeResolver {
	return &AttributeResolver{theme: theme}
}

// Color resolves attr to a color.
func (r *AttributeResolver) Color(attr constants.Attribute) (color.Color, error) {
	c, err := r.theme.Color(attr)
	if err != nil {
		return 0, NewAttributeResolutionError(attr, err)
	}
	return c, nil
}

// DisabledColor resolves attr and scales its alpha by the theme's disabledAlpha.
// RGB channels are unchanged.
func (r *AttributeResolver) DisabledColor(attr constants.Attribute) (color.Color, error) {
	c, err := r.Color(attr)
	if err != nil {
		return 0, err
	}

	disabledAlpha, err := r.theme.Float(constants.AttrDisabledAlpha)
	if err != nil {
		return 0, NewAttributeResolutionError(constants.AttrDisabledAlpha, err)
	}

	return c.ScaleAlpha(disabledAlpha), nil
}
