// Package tiles slices tileset images into fixed-size square tiles and
// reassembles selected tiles into composite sprite images.
package tiles

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
)

// DefaultSize is the tile side length used when no other size is given.
const DefaultSize = 8

// Sequence holds the tiles of one sliced tileset in row-major order.
// Palette is non-nil only when the source image was indexed; it is the
// source's palette and is assumed to be shared by every tile in the
// sequence. That assumption is never validated against individual tiles.
type Sequence struct {
	Tiles   []image.Image
	Size    int
	Palette color.Palette
}

// Slice cuts img into size-by-size tiles, left to right, top to bottom.
// Remainder pixels along the right and bottom edges produce no tile.
// Each tile is an independent copy with a zero origin.
func Slice(img image.Image, size int) Sequence {
	b := img.Bounds()
	cols := b.Dx() / size
	rows := b.Dy() / size
	seq := Sequence{Size: size}
	if p, ok := img.(*image.Paletted); ok {
		seq.Palette = p.Palette
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := image.Rect(
				b.Min.X+col*size, b.Min.Y+row*size,
				b.Min.X+(col+1)*size, b.Min.Y+(row+1)*size,
			)
			seq.Tiles = append(seq.Tiles, Crop(img, r))
		}
	}
	return seq
}

// Load decodes the image at path and slices it into size-by-size tiles.
// An unreadable or undecodable file is a hard error.
func Load(path string, size int) (Sequence, error) {
	img, err := LoadImage(path)
	if err != nil {
		return Sequence{}, err
	}
	return Slice(img, size), nil
}

// LoadImage decodes a single raster image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %v", path, err)
	}
	return img, nil
}
