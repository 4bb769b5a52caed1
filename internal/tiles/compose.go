package tiles

import (
	"image"
	"image/draw"
)

// Compose assembles a sprite image by placing the sequence's tiles into a
// gridW-by-gridH cell grid in row-major order, one cell per entry of
// indices. The output is (gridW*size) x (gridH*size) pixels and indexed iff
// the sequence is. Indices outside the sequence are skipped without error;
// cells past the grid's capacity, or past the end of the index list, keep
// the zero fill of a freshly allocated image.
func Compose(seq Sequence, indices []int, gridW, gridH int) image.Image {
	size := seq.Size
	r := image.Rect(0, 0, gridW*size, gridH*size)
	var dst draw.Image
	if seq.Palette != nil {
		dst = image.NewPaletted(r, seq.Palette)
	} else {
		dst = image.NewNRGBA(r)
	}
	cells := gridW * gridH
	for i, idx := range indices {
		if i >= cells {
			break
		}
		if idx < 0 || idx >= len(seq.Tiles) {
			continue
		}
		col := i % gridW
		row := i / gridW
		Paste(dst, seq.Tiles[idx], image.Pt(col*size, row*size))
	}
	return dst
}

// Paste copies src onto dst with src's top-left corner at the given point,
// clipped to dst's bounds. When both images are indexed the pixel indices
// are copied verbatim, which assumes the two palettes match; any other
// combination goes through color matching.
func Paste(dst draw.Image, src image.Image, at image.Point) {
	r := image.Rectangle{Min: at, Max: at.Add(src.Bounds().Size())}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	sp := src.Bounds().Min.Add(r.Min.Sub(at))
	dp, dok := dst.(*image.Paletted)
	s, sok := src.(*image.Paletted)
	if dok && sok {
		for y := 0; y < r.Dy(); y++ {
			si := s.PixOffset(sp.X, sp.Y+y)
			di := dp.PixOffset(r.Min.X, r.Min.Y+y)
			copy(dp.Pix[di:di+r.Dx()], s.Pix[si:si+r.Dx()])
		}
		return
	}
	draw.Draw(dst, r, src, sp, draw.Src)
}
