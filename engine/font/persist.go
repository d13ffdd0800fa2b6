package font

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	_ "github.com/spakin/netpbm"

	"github.com/memmaker/bakefont/engine/util"
)

// The atlas image can arrive in any of these sibling formats. TGA is what we
// write ourselves.
var atlasExtensions = []string{".tga", ".png", ".pgm", ".ppm"}

func pageFileName(name string) string {
	if name == "" {
		return ""
	}
	return filepath.Base(trimBakedExtension(name)) + ".tga"
}

// trimBakedExtension strips a trailing descriptor or atlas extension,
// case-insensitively, so callers may pass a name with or without one.
func trimBakedExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".json" {
		return name[:len(name)-len(ext)]
	}
	for _, atlasExt := range atlasExtensions {
		if ext == atlasExt {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// WriteFiles persists the bake as <outputName>.json plus <outputName>.tga.
func (r *BakeResult) WriteFiles(outputName string) error {
	base := trimBakedExtension(outputName)
	descPath := base + ".json"
	atlasPath := base + ".tga"

	if err := os.WriteFile(descPath, r.Descriptor.Serialize(), 0644); err != nil {
		return errors.Wrapf(ErrResourceLoad, "%s: %s", descPath, err)
	}

	file, err := os.Create(atlasPath)
	if err != nil {
		return errors.Wrapf(ErrResourceLoad, "%s: %s", atlasPath, err)
	}
	defer file.Close()
	if err = tga.Encode(file, r.Atlas); err != nil {
		return errors.Wrapf(ErrResourceLoad, "%s: %s", atlasPath, err)
	}

	util.LogIOInfo(fmt.Sprintf("[Export] wrote %s and %s", descPath, atlasPath))
	return nil
}

// WriteDebugPNG dumps the atlas as a PNG for eyeballing pack results.
func (r *BakeResult) WriteDebugPNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrResourceLoad, "%s: %s", path, err)
	}
	defer file.Close()
	return png.Encode(file, r.Atlas)
}

// LoadBaked reads a persisted bake back from disk. outputName may carry a
// .json or atlas extension in any case, or none at all.
func LoadBaked(outputName string) (*Descriptor, image.Image, error) {
	base := trimBakedExtension(outputName)

	descPath := resolveExisting(base + ".json")
	data, err := os.ReadFile(descPath)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrResourceLoad, "%s: %s", descPath, err)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}

	atlasPath, found := resolveAtlasPath(base)
	if !found {
		return nil, nil, errors.Wrapf(ErrResourceLoad, "no atlas image next to %s", descPath)
	}
	atlas, err := decodeAtlas(atlasPath)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrResourceLoad, "%s: %s", atlasPath, err)
	}

	util.LogIOInfo(fmt.Sprintf("[Load] %s: %d glyphs from %s", desc.Face, len(desc.Chars), atlasPath))
	return desc, atlas, nil
}

func resolveAtlasPath(base string) (string, bool) {
	for _, ext := range atlasExtensions {
		path := resolveExisting(base + ext)
		if util.DoesFileExist(path) {
			return path, true
		}
	}
	return "", false
}

// resolveExisting falls back to a case-insensitive directory scan when the
// exact path does not exist.
func resolveExisting(path string) string {
	if util.DoesFileExist(path) {
		return path
	}
	dir := filepath.Dir(path)
	want := strings.ToLower(filepath.Base(path))
	items, err := os.ReadDir(dir)
	if err != nil {
		return path
	}
	for _, item := range items {
		if strings.ToLower(item.Name()) == want {
			return filepath.Join(dir, item.Name())
		}
	}
	return path
}

func decodeAtlas(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	// TGA has no magic bytes, image.Decode cannot sniff it
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return tga.Decode(file)
	}
	img, _, err := image.Decode(file)
	return img, err
}
