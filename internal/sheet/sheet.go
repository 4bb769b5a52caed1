// Package sheet lays assembled sprites out into a single edit sheet: each
// sprite appears twice, the original on the left and an identical copy on
// the right half for the user to repaint in an external image editor. The
// disassembly side later reads the edited right half back by the same
// geometry.
package sheet

import (
	"image"

	"spritepal/internal/arrange"
	"spritepal/internal/tiles"
)

// DefaultPadding is the vertical gap in pixels between sheet entries.
const DefaultPadding = 20

// Sprite pairs an arrangement name with its assembled image.
type Sprite struct {
	Name  string
	Image image.Image
}

// Build composes one sprite per arrangement and stacks the pairs onto an
// RGBA canvas twice as wide as the widest sprite. The vertical cursor
// advances by each sprite's height plus padding, in arrangement order, so
// the layout is reproducible from the manifest alone. An empty arrangement
// list yields a minimal canvas and no sprites.
func Build(seq tiles.Sequence, arrs []arrange.Arrangement, padding int) (*image.NRGBA, []Sprite) {
	var sprites []Sprite
	maxW, totalH := 0, 0
	for _, a := range arrs {
		img := tiles.Compose(seq, a.TileIndices, a.Width, a.Height)
		sprites = append(sprites, Sprite{Name: a.Name, Image: img})
		if w := img.Bounds().Dx(); w > maxW {
			maxW = w
		}
		totalH += img.Bounds().Dy() + padding
	}

	w, h := 2*maxW, totalH
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))

	y := 0
	for _, s := range sprites {
		tiles.Paste(canvas, s.Image, image.Pt(0, y))
		tiles.Paste(canvas, s.Image, image.Pt(maxW, y))
		y += s.Image.Bounds().Dy() + padding
	}
	return canvas, sprites
}
