package imagestore

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/tintkit/pkg/tint"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

var (
	ErrUnknownAsset = errors.New("unknown asset")
	ErrLayerCycle   = errors.New("container layers form a cycle")
	ErrBadManifest  = errors.New("invalid asset manifest")
)

// Tint names accepted in a manifest's tint field.
const (
	TintNone               = "none"
	TintControlNormal      = "control-normal"
	TintControlActivated   = "control-activated"
	TintBackgroundMultiply = "background-multiply"
	TintStateList          = "state-list"
	TintContainer          = "container"
	TintAlreadyTinted      = "already-tinted"
)

// AssetEntry declares one asset. Exactly one of File or Layers is set.
type AssetEntry struct {
	ID     constants.AssetID   `toml:"id"`
	Name   string              `toml:"name"`
	File   string              `toml:"file"`   // SVG path inside the store's file system
	Tint   string              `toml:"tint"`   // One of the Tint* names; empty means none
	Layers []constants.AssetID `toml:"layers"` // Child assets drawn bottom to top
}

// Manifest lists the assets a Store can load.
//
//	width = 24
//	height = 24
//
//	[[asset]]
//	id = 1
//	name = "ic_back"
//	file = "icons/back.svg"
//	tint = "control-normal"
type Manifest struct {
	Width  int          `toml:"width"`  // Raster width; 0 uses each SVG's view box
	Height int          `toml:"height"` // Raster height; 0 uses each SVG's view box
	Assets []AssetEntry `toml:"asset"`
}

// DecodeManifest parses and validates a TOML manifest.
func DecodeManifest(data string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(data, &m); err != nil {
		return nil, fmt.Errorf("imagestore: decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks ids are unique, every entry has a file or layers, layers
// refer to declared assets and no container contains itself.
func (m *Manifest) Validate() error {
	entries := make(map[constants.AssetID]AssetEntry, len(m.Assets))

	for _, e := range m.Assets {
		if _, dup := entries[e.ID]; dup {
			return fmt.Errorf("%w: asset %d declared twice", ErrBadManifest, e.ID)
		}
		if (e.File == "") == (len(e.Layers) == 0) {
			return fmt.Errorf("%w: asset %d needs exactly one of file or layers", ErrBadManifest, e.ID)
		}
		if _, err := policyFor(e.Tint); err != nil {
			return fmt.Errorf("%w: asset %d: %v", ErrBadManifest, e.ID, err)
		}
		entries[e.ID] = e
	}

	for _, e := range m.Assets {
		for _, child := range e.Layers {
			if _, ok := entries[child]; !ok {
				return fmt.Errorf("%w: asset %d layer %d", ErrUnknownAsset, e.ID, child)
			}
		}
	}

	return checkCycles(entries)
}

func checkCycles(entries map[constants.AssetID]AssetEntry) error {
	const (
		unvisited = iota
		visiting
		done
	)
	marks := make(map[constants.AssetID]int, len(entries))

	var visit func(id constants.AssetID) error
	visit = func(id constants.AssetID) error {
		switch marks[id] {
		case visiting:
			return fmt.Errorf("%w: through asset %d", ErrLayerCycle, id)
		case done:
			return nil
		}
		marks[id] = visiting
		for _, child := range entries[id].Layers {
			if err := visit(child); err != nil {
				return err
			}
		}
		marks[id] = done
		return nil
	}

	for id := range entries {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// Rules builds a rule table from the entries' tint fields.
func (m *Manifest) Rules() (*tint.RuleTable, error) {
	rules := make([]tint.Rule, 0, len(m.Assets))
	for _, e := range m.Assets {
		policy, err := policyFor(e.Tint)
		if err != nil {
			return nil, fmt.Errorf("imagestore: asset %d: %w", e.ID, err)
		}
		if policy.Kind == tint.NoTint {
			continue
		}
		rules = append(rules, tint.Rule{Policy: policy, IDs: []constants.AssetID{e.ID}})
	}
	return tint.NewRuleTable(rules...)
}

func policyFor(name string) (tint.Policy, error) {
	switch name {
	case "", TintNone:
		return tint.Policy{Kind: tint.NoTint}, nil
	case TintControlNormal:
		return tint.ControlNormal(), nil
	case TintControlActivated:
		return tint.ControlActivated(), nil
	case TintBackgroundMultiply:
		return tint.BackgroundMultiply(), nil
	case TintStateList:
		return tint.Policy{Kind: tint.StateList}, nil
	case TintContainer:
		return tint.Policy{Kind: tint.Container}, nil
	case TintAlreadyTinted:
		return tint.Policy{Kind: tint.AlreadyTinted}, nil
	default:
		return tint.Policy{}, fmt.Errorf("unknown tint %q", name)
	}
}
