// Package theme provides an in-memory tint.Theme that can be built in code
// or loaded from TOML files.
//
// A theme file has two tables:
//
//	name = "cannoli"
//
//	[colors]
//	colorControlNormal = "#8A000000"
//	colorControlActivated = "#008080"
//	colorBackground = "#FFFFFF"
//
//	[values]
//	disabledAlpha = 0.38
package theme

import (
	"fmt"
	"io/fs"
	"maps"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/tintkit/pkg/tint"
	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
	"github.com/BrandonKowalski/tintkit/pkg/tint/internal"
)

// Theme maps attributes to colors and fractional values.
// Configure it before handing it to a resolver; it is not safe to modify while in use.
type Theme struct {
	Name   string
	colors map[constants.Attribute]color.Color
	values map[constants.Attribute]float64
}

// New returns an empty theme. The zero Theme is also ready to use.
func New() *Theme {
	t := &Theme{}
	t.init()
	return t
}

func (t *Theme) init() {
	if t.colors == nil {
		t.colors = make(map[constants.Attribute]color.Color)
	}
	if t.values == nil {
		t.values = make(map[constants.Attribute]float64)
	}
}

func (t *Theme) SetColor(attr constants.Attribute, c color.Color) *Theme {
	t.init()
	t.colors[attr] = c
	return t
}

func (t *Theme) SetFloat(attr constants.Attribute, v float64) *Theme {
	t.init()
	t.values[attr] = v
	return t
}

// Color implements tint.Theme.
func (t *Theme) Color(attr constants.Attribute) (color.Color, error) {
	c, ok := t.colors[attr]
	if !ok {
		return 0, fmt.Errorf("theme %q: color %s: %w", t.Name, attr, tint.ErrAttributeUnresolved)
	}
	return c, nil
}

// Float implements tint.Theme.
func (t *Theme) Float(attr constants.Attribute) (float64, error) {
	v, ok := t.values[attr]
	if !ok {
		return 0, fmt.Errorf("theme %q: value %s: %w", t.Name, attr, tint.ErrAttributeUnresolved)
	}
	return v, nil
}

// Clone returns an independent copy that can be modified without affecting t.
func (t *Theme) Clone() *Theme {
	return &Theme{
		Name:   t.Name,
		colors: maps.Clone(t.colors),
		values: maps.Clone(t.values),
	}
}

// Merge copies every color and value of other into t, overwriting existing ones.
func (t *Theme) Merge(other *Theme) *Theme {
	t.init()
	maps.Copy(t.colors, other.colors)
	maps.Copy(t.values, other.values)
	return t
}

type themeFile struct {
	Name   string             `toml:"name"`
	Colors map[string]string  `toml:"colors"`
	Values map[string]float64 `toml:"values"`
}

// Decode parses a theme from TOML text.
func Decode(data string) (*Theme, error) {
	var f themeFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("theme: decode: %w", err)
	}
	return fromFile(f, md, "<inline>")
}

// LoadFile reads a TOML theme from disk.
func LoadFile(path string) (*Theme, error) {
	var f themeFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("theme: load %s: %w", path, err)
	}
	return fromFile(f, md, path)
}

// LoadFS reads a TOML theme from a file system, such as an embed.FS.
func LoadFS(fsys fs.FS, path string) (*Theme, error) {
	var f themeFile
	md, err := toml.DecodeFS(fsys, path, &f)
	if err != nil {
		return nil, fmt.Errorf("theme: load %s: %w", path, err)
	}
	return fromFile(f, md, path)
}

func fromFile(f themeFile, md toml.MetaData, source string) (*Theme, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("Ignoring unknown theme keys", "source", source, "keys", fmt.Sprint(undecoded))
	}

	t := New()
	t.Name = f.Name

	for name, raw := range f.Colors {
		c, err := color.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("theme: %s: colors.%s: %w", source, name, err)
		}
		t.SetColor(constants.Attribute(name), c)
	}

	for name, v := range f.Values {
		t.SetFloat(constants.Attribute(name), v)
	}

	return t, nil
}
