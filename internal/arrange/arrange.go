// Package arrange defines sprite arrangements — named recipes pairing a
// tile grid with the ordered tileset indices that fill it — together with
// the manifest format that records them on disk.
package arrange

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"spritepal/internal/tiles"
)

// DefaultPrefix is the filename prefix shared by every assembly output and
// stripped again when matching edited files back to their arrangements.
const DefaultPrefix = "assembled"

// Arrangement describes how to build one sprite: place TileIndices into a
// Width-by-Height tile grid in row-major order. The index list may be
// shorter or longer than the grid; surplus on either side is ignored at
// composition time.
type Arrangement struct {
	Name        string
	Width       int
	Height      int
	TileIndices []int
}

// Detect returns the indices of tiles with any visible pixel content among
// the first limit tiles of the sequence. A limit of zero or beyond the
// sequence scans the whole sequence.
func Detect(seq tiles.Sequence, limit int) []int {
	if limit <= 0 || limit > len(seq.Tiles) {
		limit = len(seq.Tiles)
	}
	var found []int
	for i := 0; i < limit; i++ {
		if !emptyTile(seq.Tiles[i]) {
			found = append(found, i)
		}
	}
	return found
}

func emptyTile(img image.Image) bool {
	if p, ok := img.(*image.Paletted); ok {
		for _, v := range p.Pix {
			if v != 0 {
				return false
			}
		}
		return true
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r|g|bl != 0 {
				return false
			}
		}
	}
	return true
}

// DefaultArrangements groups the detected non-empty tiles four at a time
// into 2x2 sprites, up to four sprites, for tilesets assembled without a
// recipe.
func DefaultArrangements(seq tiles.Sequence) []Arrangement {
	found := Detect(seq, 64)
	var arrs []Arrangement
	for len(found) >= 4 && len(arrs) < 4 {
		arrs = append(arrs, Arrangement{
			Name:        fmt.Sprintf("sprite_%d", len(arrs)),
			Width:       2,
			Height:      2,
			TileIndices: append([]int(nil), found[:4]...),
		})
		found = found[4:]
	}
	return arrs
}

// DeriveName recovers an arrangement name from an edited sprite's filename
// by stripping the "{prefix}_" lead and the ".png" suffix from its
// basename. This is a filename convention, not a guaranteed contract; an
// unmatched name simply finds no arrangement.
func DeriveName(path, prefix string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".png")
	return strings.TrimPrefix(name, prefix+"_")
}

// FindCatalog locates the default manifest ("{prefix}_arrangements.txt")
// in the directory of the given edited sprite file.
func FindCatalog(spritePath, prefix string) (string, error) {
	path := filepath.Join(filepath.Dir(spritePath), prefix+"_arrangements.txt")
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
