package tint

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

// Sentinel errors for common conditions.
var (
	// ErrAttributeUnresolved indicates the theme has no value for an attribute.
	// Themes may return it directly or wrap it.
	ErrAttributeUnresolved = errors.New("theme attribute not resolved")

	// ErrDuplicateAsset indicates an asset id was listed in more than one rule.
	// This is a configuration bug, reported when the rule table is built.
	ErrDuplicateAsset = errors.New("asset listed in more than one tint rule")
)

// AttributeResolutionError reports that a theme attribute could not be turned
// into a concrete value. The resolver recovers from it by leaving the asset
// untinted; it is only returned by AttributeResolver.
type AttributeResolutionError struct {
	Attribute constants.Attribute // Attribute that failed to resolve
	Err       error               // Underlying theme error
}

func (e *AttributeResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tint: resolve %s: %v", e.Attribute, e.Err)
	}
	return fmt.Sprintf("tint: resolve %s", e.Attribute)
}

func (e *AttributeResolutionError) Unwrap() error {
	return e.Err
}

// NewAttributeResolutionError creates a new attribute resolution error.
func NewAttributeResolutionError(attr constants.Attribute, err error) *AttributeResolutionError {
	return &AttributeResolutionError{Attribute: attr, Err: err}
}

// IsAttributeResolutionFailure checks if an error came from resolving a theme attribute.
func IsAttributeResolutionFailure(err error) bool {
	var resErr *AttributeResolutionError
	return errors.As(err, &resErr) || errors.Is(err, ErrAttributeUnresolved)
}
