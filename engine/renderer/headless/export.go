package headless

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
)

// ExportPNG writes the base level of texture to dir/<name>.png and returns
// the file path.
func (b *Backend) ExportPNG(texture *metadata.Texture, dir string) (string, error) {
	img, err := b.Level(texture, 0)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, texture.Name+".png")
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("could not export texture %s: %w", texture.Name, err)
	}
	core.LogInfo("exported texture %s to %s", texture.Name, path)
	return path, nil
}
