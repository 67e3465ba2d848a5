package sdlasset

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tintkit/pkg/tint/internal"
)

const defaultMaxCacheSize = 16

// TextureCache keeps recently used textures by file path and destroys
// textures as they are evicted.
type TextureCache struct {
	textures *lru.Cache[string, *sdl.Texture]
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}

	textures, err := lru.NewWithEvict(maxSize, func(path string, texture *sdl.Texture) {
		if err := texture.Destroy(); err != nil {
			internal.GetInternalLogger().Warn("Failed to destroy texture", "path", path, "error", err)
		}
	})
	if err != nil {
		panic(err)
	}

	return &TextureCache{textures: textures}
}

// Get returns the texture for key and marks it most recently used, or nil.
func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, ok := c.textures.Get(key); ok {
		return texture
	}
	return nil
}

// Set stores a texture, evicting and destroying the oldest one if full.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	c.textures.Add(key, texture)
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	c.textures.Purge()
}
