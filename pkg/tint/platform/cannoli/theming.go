// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
	"github.com/BrandonKowalski/tintkit/pkg/tint/theme"
)

// DisabledAlpha is the alpha multiplier applied to disabled controls.
const DisabledAlpha = 0.38

// Theme creates a theme with Cannoli's default colors.
// A non-zero accentHex (0xRRGGBB) replaces the activated control color.
func Theme(accentHex uint32) *theme.Theme {
	t := theme.New().
		SetColor(constants.AttrColorControlNormal, color.RGB(0xFFFFFF)).
		SetColor(constants.AttrColorControlActivated, color.RGB(0x008080)).
		SetColor(constants.AttrColorBackground, color.RGB(0x000000)).
		SetFloat(constants.AttrDisabledAlpha, DisabledAlpha)
	t.Name = "cannoli"

	if accentHex != 0 {
		t.SetColor(constants.AttrColorControlActivated, color.RGB(accentHex))
	}

	return t
}
