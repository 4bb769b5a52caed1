package tiles

import (
	"image"
	"image/draw"
)

// Split is the inverse of Compose: it cuts a composite image into exactly
// gridW*gridH tiles of the given size, in row-major order. A (0, 0) grid
// yields an empty slice. Regions reaching past the image's actual bounds
// are clipped; the uncovered part of such a tile stays at zero fill.
func Split(img image.Image, gridW, gridH, size int) []image.Image {
	b := img.Bounds()
	var out []image.Image
	for row := 0; row < gridH; row++ {
		for col := 0; col < gridW; col++ {
			r := image.Rect(
				b.Min.X+col*size, b.Min.Y+row*size,
				b.Min.X+(col+1)*size, b.Min.Y+(row+1)*size,
			)
			out = append(out, Crop(img, r))
		}
	}
	return out
}

// Crop copies the region r of img into a new zero-origin image of r's size,
// preserving indexed mode. Pixels of r outside img's bounds are left at
// zero fill.
func Crop(img image.Image, r image.Rectangle) draw.Image {
	ir := r.Intersect(img.Bounds())
	if p, ok := img.(*image.Paletted); ok {
		dst := image.NewPaletted(image.Rect(0, 0, r.Dx(), r.Dy()), p.Palette)
		for y := ir.Min.Y; y < ir.Max.Y; y++ {
			si := p.PixOffset(ir.Min.X, y)
			di := dst.PixOffset(ir.Min.X-r.Min.X, y-r.Min.Y)
			copy(dst.Pix[di:di+ir.Dx()], p.Pix[si:si+ir.Dx()])
		}
		return dst
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if !ir.Empty() {
		dr := ir.Sub(r.Min)
		draw.Draw(dst, dr, img, ir.Min, draw.Src)
	}
	return dst
}
