package entity

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a raster file whose header a registered decoder accepts.
type Image struct {
	*File
	cfg    image.Config
	format string
}

var imageCandidate = Candidate{
	Kind:  KindImage,
	Hints: []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"},
	Build: func(_ context.Context, r *Registry, path string) (Entity, error) {
		if _, err := regularFile(path); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		cfg, format, err := image.DecodeConfig(f)
		if err != nil {
			return nil, err
		}
		return &Image{File: newFile(r, path), cfg: cfg, format: format}, nil
	},
}

func (i *Image) Kind() Kind { return KindImage }

func (i *Image) Width() int  { return i.cfg.Width }
func (i *Image) Height() int { return i.cfg.Height }

// Resolution returns width and height in pixels.
func (i *Image) Resolution() (int, int) { return i.cfg.Width, i.cfg.Height }

// Format is the decoder name, e.g. "jpeg" or "png".
func (i *Image) Format() string { return i.format }

func (i *Image) ColorModel() color.Model { return i.cfg.ColorModel }

// Decode reads the full pixel data.
func (i *Image) Decode() (image.Image, error) {
	f, err := os.Open(i.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", i.path, err)
	}
	return img, nil
}
