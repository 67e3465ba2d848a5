// Package sdlasset is a tint.AssetStore for SDL textures.
//
// Filters are applied at draw time through SDL's color and alpha modulation,
// always drawn with BLENDMODE_BLEND. Modulation yields (Fc*Dc, Fa*Da) blended
// over the destination, which is multiply; for the white alpha-mask icons
// src_in rules are written for, it is also src_in.
package sdlasset

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tintkit/pkg/tint"
	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
	"github.com/BrandonKowalski/tintkit/pkg/tint/internal"
)

// Store loads image files as textures for one renderer.
// Like all SDL rendering, it must only be used from the render thread.
type Store struct {
	renderer *sdl.Renderer
	paths    map[constants.AssetID]string

	mu       sync.Mutex
	textures *TextureCache
}

// NewStore creates a store that loads paths[id] with SDL_image.
func NewStore(renderer *sdl.Renderer, paths map[constants.AssetID]string) *Store {
	return &Store{
		renderer: renderer,
		paths:    paths,
		textures: NewTextureCache(),
	}
}

// Load implements tint.AssetStore. The file is loaded eagerly so a missing
// file is reported as a missing asset.
func (s *Store) Load(id constants.AssetID) (tint.Asset, bool) {
	path, ok := s.paths[id]
	if !ok {
		return nil, false
	}

	if _, err := s.texture(path); err != nil {
		internal.GetInternalLogger().Error("Failed to load texture", "asset", id, "path", path, "error", err)
		return nil, false
	}

	return &Texture{store: s, id: id, path: path}, true
}

func (s *Store) texture(path string) (*sdl.Texture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if texture := s.textures.Get(path); texture != nil {
		return texture, nil
	}

	texture, err := img.LoadTexture(s.renderer, path)
	if err != nil {
		return nil, fmt.Errorf("sdlasset: load %s: %w", path, err)
	}

	s.textures.Set(path, texture)
	return texture, nil
}

// Close destroys all cached textures.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.textures.Destroy()
}

// Texture is a tint.Asset drawn with SDL. Textures are shared between
// assets loaded from the same file; modulation is set right before each copy.
type Texture struct {
	store *Store
	id    constants.AssetID
	path  string

	filter *tint.Filter
	states *tint.ColorStateList
}

func (t *Texture) ID() constants.AssetID {
	return t.id
}

func (t *Texture) SetColorFilter(f *tint.Filter) {
	t.filter = f
}

func (t *Texture) SetColorStateSource(l *tint.ColorStateList) {
	t.states = l
}

// Draw copies the texture into dst using the decoration for state.
func (t *Texture) Draw(dst *sdl.Rect, state tint.State) error {
	texture, err := t.store.texture(t.path)
	if err != nil {
		return err
	}

	c, blend := t.modulation(state)

	if err := texture.SetColorMod(c.R(), c.G(), c.B()); err != nil {
		return err
	}
	if err := texture.SetAlphaMod(c.A()); err != nil {
		return err
	}
	if err := texture.SetBlendMode(blend); err != nil {
		return err
	}

	return t.store.renderer.Copy(texture, nil, dst)
}

// modulation returns the color and SDL blend mode to draw with. Both blend
// modes draw with BLENDMODE_BLEND so alpha modulation still applies.
// Undecorated textures use opaque white, which leaves the pixels unchanged.
func (t *Texture) modulation(state tint.State) (color.Color, sdl.BlendMode) {
	switch {
	case t.states != nil:
		return t.states.ColorFor(state), sdl.BLENDMODE_BLEND
	case t.filter != nil:
		return t.filter.Color(), sdl.BLENDMODE_BLEND
	default:
		return color.RGB(0xFFFFFF), sdl.BLENDMODE_BLEND
	}
}
