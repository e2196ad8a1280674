package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed media/*.png
var assetsFS embed.FS

// LoadFile reads an asset from disk, falling back to the embedded copy.
// Paths are relative to the working directory or to the assets directory.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if data, err := os.ReadFile(filepath.FromSlash(path)); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return data, nil
}

// Decode loads and decodes an image asset.
func Decode(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an image asset as a texture.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Textures caches loaded textures by path so bodies that name the same file
// share one image.
type Textures struct {
	images map[string]*ebiten.Image
	load   func(string) (*ebiten.Image, error)
}

func NewTextures() *Textures {
	return &Textures{images: make(map[string]*ebiten.Image), load: LoadImage}
}

func (t *Textures) Get(path string) (*ebiten.Image, error) {
	key := cleanAssetPath(path)
	if img, ok := t.images[key]; ok {
		return img, nil
	}
	img, err := t.load(path)
	if err != nil {
		return nil, err
	}
	t.images[key] = img
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/media/"); idx >= 0 {
			return s[idx+1:]
		}
		return "media/" + filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "assets/")
	return s
}
