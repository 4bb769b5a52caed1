package tiles

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Clone returns a mutable copy of img. Indexed images stay indexed, with
// their own copy of the palette; everything else becomes NRGBA.
func Clone(img image.Image) draw.Image {
	if p, ok := img.(*image.Paletted); ok {
		dst := image.NewPaletted(p.Rect, append(color.Palette(nil), p.Palette...))
		copy(dst.Pix, p.Pix)
		return dst
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// Scale returns img enlarged by an integer factor with nearest-neighbor
// sampling, keeping pixel-art edges crisp. Factors below 1 are treated as 1.
func Scale(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()
	return png.Encode(f, img)
}
