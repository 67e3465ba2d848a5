// Package imagestore is a tint.ContainerStore backed by SVG files.
//
// Assets are listed in a TOML manifest, rasterised in software with oksvg and
// rasterx, and returned as *Image values whose Render method applies whatever
// filter or state list the resolver attached.
package imagestore

import (
	"fmt"
	"image"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/tintkit/pkg/tint"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
	"github.com/BrandonKowalski/tintkit/pkg/tint/internal"
)

type Store struct {
	fsys     fs.FS
	manifest *Manifest
	entries  map[constants.AssetID]AssetEntry

	mu      sync.Mutex
	rasters map[constants.AssetID]*image.RGBA // rasterised sources, never modified
}

// Open reads the manifest at manifestPath from fsys.
func Open(fsys fs.FS, manifestPath string) (*Store, error) {
	var m Manifest
	if _, err := toml.DecodeFS(fsys, manifestPath, &m); err != nil {
		return nil, fmt.Errorf("imagestore: open %s: %w", manifestPath, err)
	}
	return New(fsys, &m)
}

// New creates a store for an already decoded manifest.
func New(fsys fs.FS, m *Manifest) (*Store, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	entries := make(map[constants.AssetID]AssetEntry, len(m.Assets))
	for _, e := range m.Assets {
		entries[e.ID] = e
	}

	return &Store{
		fsys:     fsys,
		manifest: m,
		entries:  entries,
		rasters:  make(map[constants.AssetID]*image.RGBA),
	}, nil
}

func (s *Store) Manifest() *Manifest {
	return s.manifest
}

// Rules builds a rule table from the manifest's tint fields.
func (s *Store) Rules() (*tint.RuleTable, error) {
	return s.manifest.Rules()
}

// Load returns a fresh, undecorated *Image. Containers are assembled from
// undecorated layers.
func (s *Store) Load(id constants.AssetID) (tint.Asset, bool) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}

	if len(entry.Layers) > 0 {
		return s.LoadContainer(id, s.Load)
	}

	src, err := s.raster(entry)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterise asset", "asset", id, "file", entry.File, "error", err)
		return nil, false
	}

	return &Image{id: id, name: entry.Name, src: src}, true
}

// LoadContainer assembles a layered asset, obtaining each layer through resolve.
func (s *Store) LoadContainer(id constants.AssetID, resolve tint.ChildResolver) (tint.Asset, bool) {
	entry, ok := s.entries[id]
	if !ok || len(entry.Layers) == 0 {
		return nil, false
	}

	container := &Image{id: id, name: entry.Name}
	for _, childID := range entry.Layers {
		child, ok := resolve(childID)
		if !ok {
			internal.GetInternalLogger().Error("Missing container layer", "asset", id, "layer", childID)
			return nil, false
		}

		layer, ok := child.(*Image)
		if !ok {
			internal.GetInternalLogger().Error("Container layer is not an image", "asset", id, "layer", childID)
			return nil, false
		}
		container.layers = append(container.layers, layer)
	}

	return container, true
}

func (s *Store) raster(entry AssetEntry) (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.rasters[entry.ID]; ok {
		return src, nil
	}

	src, err := s.rasterise(entry)
	if err != nil {
		return nil, err
	}
	s.rasters[entry.ID] = src
	return src, nil
}

func (s *Store) rasterise(entry AssetEntry) (*image.RGBA, error) {
	f, err := s.fsys.Open(entry.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	w, h := s.manifest.Width, s.manifest.Height
	if w <= 0 || h <= 0 {
		w, h = int(icon.ViewBox.W), int(icon.ViewBox.H)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("no size: set width and height in the manifest or a viewBox in %s", entry.File)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return img, nil
}
