package sheet

import (
	"image"
	"image/color"
	"testing"

	"spritepal/internal/arrange"
	"spritepal/internal/tiles"
)

func testTileset() *image.Paletted {
	p := make(color.Palette, 16)
	for i := range p {
		v := uint8(i * 16)
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	img := image.NewPaletted(image.Rect(0, 0, 32, 32), p)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			tileIdx := (y/8)*4 + x/8
			img.SetColorIndex(x, y, uint8((tileIdx+x%8+y%8)%16))
		}
	}
	return img
}

func samePixels(t *testing.T, a, b image.Image) bool {
	t.Helper()
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, aa := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bbl, ba := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			if ar != br || ag != bg || abl != bbl || aa != ba {
				return false
			}
		}
	}
	return true
}

func TestBuild_Geometry(t *testing.T) {
	seq := tiles.Slice(testTileset(), 8)
	arrs := []arrange.Arrangement{
		{Name: "small", Width: 1, Height: 1, TileIndices: []int{0}},
		{Name: "medium", Width: 2, Height: 2, TileIndices: []int{0, 1, 4, 5}},
		{Name: "large", Width: 3, Height: 2, TileIndices: []int{0, 1, 2, 4, 5, 6}},
	}

	canvas, sprites := Build(seq, arrs, 20)

	if len(sprites) != 3 {
		t.Fatalf("expected 3 sprites, got %d", len(sprites))
	}
	// Widest sprite is 24px (3 tiles), so the canvas is twice that, and
	// each entry contributes its height plus the padding.
	if got := canvas.Bounds().Size(); got != image.Pt(48, 100) {
		t.Fatalf("canvas size %v, want (48,100)", got)
	}
	for i, want := range []image.Point{{8, 8}, {16, 16}, {24, 16}} {
		if got := sprites[i].Image.Bounds().Size(); got != want {
			t.Errorf("sprite %q: size %v, want %v", sprites[i].Name, got, want)
		}
	}
}

func TestBuild_PairsLeftAndRight(t *testing.T) {
	seq := tiles.Slice(testTileset(), 8)
	arrs := []arrange.Arrangement{
		{Name: "a", Width: 2, Height: 2, TileIndices: []int{0, 1, 4, 5}},
		{Name: "b", Width: 2, Height: 2, TileIndices: []int{2, 3, 6, 7}},
	}

	canvas, sprites := Build(seq, arrs, 20)

	mid := canvas.Bounds().Dx() / 2
	y := 0
	for _, s := range sprites {
		w, h := s.Image.Bounds().Dx(), s.Image.Bounds().Dy()
		left := tiles.Crop(canvas, image.Rect(0, y, w, y+h))
		right := tiles.Crop(canvas, image.Rect(mid, y, mid+w, y+h))
		if !samePixels(t, left, s.Image) {
			t.Errorf("%s: left half does not match the composite", s.Name)
		}
		if !samePixels(t, right, s.Image) {
			t.Errorf("%s: right half does not match the editable copy", s.Name)
		}
		y += h + 20
	}
}

func TestBuild_EmptyArrangements(t *testing.T) {
	seq := tiles.Slice(testTileset(), 8)

	canvas, sprites := Build(seq, nil, 20)

	if len(sprites) != 0 {
		t.Errorf("expected no sprites, got %d", len(sprites))
	}
	if canvas == nil || canvas.Bounds().Empty() {
		t.Error("expected a minimal non-empty canvas")
	}
}
