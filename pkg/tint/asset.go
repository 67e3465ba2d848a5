package tint

import (
	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

// Asset is a loaded visual asset that can be recolored in place.
// Setting the same filter or state list twice must have no further effect.
type Asset interface {
	SetColorFilter(f *Filter)
	SetColorStateSource(l *ColorStateList)
}

// AssetStore loads raw, undecorated assets. Unknown ids yield false, never an error.
// Each call should return a fresh asset so tinting one does not affect another.
type AssetStore interface {
	Load(id constants.AssetID) (Asset, bool)
}

// ChildResolver returns the decorated asset for a nested reference.
type ChildResolver func(id constants.AssetID) (Asset, bool)

// ContainerStore is implemented by stores that can build an asset out of
// nested asset references. Each child is obtained through resolve, so it is
// tinted with the same rules as a top-level request.
type ContainerStore interface {
	AssetStore
	LoadContainer(id constants.AssetID, resolve ChildResolver) (Asset, bool)
}

// Theme resolves symbolic attributes to concrete values.
// A missing attribute is reported as an error, typically wrapping ErrAttributeUnresolved.
type Theme interface {
	Color(attr constants.Attribute) (color.Color, error)
	Float(attr constants.Attribute) (float64, error)
}
