// Package constants defines shared identifiers, types, and configuration values
// used throughout the tint resolver.
package constants

import "os"

// DebugEnvVar is the environment variable that lowers the internal log level to debug.
const DebugEnvVar = "TINT_DEBUG"

// IsDebug returns true if TINT_DEBUG is set to any non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// AssetID identifies a visual asset. IDs are assigned by whoever owns the
// asset catalogue; the resolver only compares them.
type AssetID int

// Attribute is a symbolic theme attribute, resolved by a theme to a concrete value.
type Attribute string

// Theme attributes understood by the built-in rule table.
const (
	AttrColorControlNormal    Attribute = "colorControlNormal"
	AttrColorControlActivated Attribute = "colorControlActivated"
	AttrColorBackground       Attribute = "colorBackground"
	AttrDisabledAlpha         Attribute = "disabledAlpha" // fraction in [0,1]
)
