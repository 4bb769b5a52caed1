// Package rebuild writes edited sprite pixels back into a copy of the
// original tileset at the tile positions recorded in the arrangement
// manifest. The source tileset file is never mutated.
package rebuild

import (
	"image"
	"image/draw"

	"spritepal/internal/arrange"
	"spritepal/internal/sheet"
	"spritepal/internal/tiles"
)

// Options configures a rebuild. Zero values fall back to the defaults
// shared with the assembly side, so both directions agree on geometry.
type Options struct {
	TileSize int    // tile side length; 0 means tiles.DefaultSize
	Prefix   string // filename prefix; "" means arrange.DefaultPrefix
	Padding  int    // edit sheet entry gap; 0 means sheet.DefaultPadding
}

func (o Options) fill() Options {
	if o.TileSize <= 0 {
		o.TileSize = tiles.DefaultSize
	}
	if o.Prefix == "" {
		o.Prefix = arrange.DefaultPrefix
	}
	if o.Padding <= 0 {
		o.Padding = sheet.DefaultPadding
	}
	return o
}

// SpriteResult reports one processed sprite.
type SpriteResult struct {
	Name     string
	Replaced int
}

// Result is the outcome of a rebuild: the updated tileset image plus what
// was processed and what was skipped, for the caller to report.
type Result struct {
	Image     draw.Image
	Processed []SpriteResult
	Skipped   []string
}

// Rebuild applies one or more edited sprite files to a copy of the
// tileset. Each file's arrangement is looked up by its derived name; files
// with no matching entry are skipped and the batch continues. Unreadable
// input files and a missing manifest abort the whole run.
func Rebuild(tilesetPath string, editedPaths []string, catalogPath string, opts Options) (Result, error) {
	opts = opts.fill()
	src, err := tiles.LoadImage(tilesetPath)
	if err != nil {
		return Result{}, err
	}
	arrs, err := arrange.LoadCatalog(catalogPath)
	if err != nil {
		return Result{}, err
	}
	byName := make(map[string]arrange.Arrangement, len(arrs))
	for _, a := range arrs {
		byName[a.Name] = a
	}

	dst := tiles.Clone(src)
	perRow, perCol := tileGrid(src, opts.TileSize)

	res := Result{Image: dst}
	for _, path := range editedPaths {
		name := arrange.DeriveName(path, opts.Prefix)
		a, ok := byName[name]
		if !ok {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		img, err := tiles.LoadImage(path)
		if err != nil {
			return Result{}, err
		}
		split := tiles.Split(img, a.Width, a.Height, opts.TileSize)
		replaced := pasteTiles(dst, split, a.TileIndices, opts.TileSize, perRow, perCol)
		res.Processed = append(res.Processed, SpriteResult{Name: name, Replaced: replaced})
	}
	return res, nil
}

// FromEditSheet applies the edited right half of a combined edit sheet,
// walking the manifest in file order and cropping each entry at the
// cumulative vertical offset recorded at assembly time. Entries whose
// region would read past the sheet's actual bounds are skipped.
func FromEditSheet(sheetPath, catalogPath, tilesetPath string, opts Options) (Result, error) {
	opts = opts.fill()
	sheetImg, err := tiles.LoadImage(sheetPath)
	if err != nil {
		return Result{}, err
	}
	arrs, err := arrange.LoadCatalog(catalogPath)
	if err != nil {
		return Result{}, err
	}
	src, err := tiles.LoadImage(tilesetPath)
	if err != nil {
		return Result{}, err
	}

	dst := tiles.Clone(src)
	perRow, perCol := tileGrid(src, opts.TileSize)

	sb := sheetImg.Bounds()
	half := sb.Dx() / 2
	y := 0
	res := Result{Image: dst}
	for _, a := range arrs {
		w, h := a.Width*opts.TileSize, a.Height*opts.TileSize
		if half+w > sb.Dx() || y+h > sb.Dy() {
			res.Skipped = append(res.Skipped, a.Name)
			y += h + opts.Padding
			continue
		}
		region := tiles.Crop(sheetImg, image.Rect(
			sb.Min.X+half, sb.Min.Y+y,
			sb.Min.X+half+w, sb.Min.Y+y+h,
		))
		split := tiles.Split(region, a.Width, a.Height, opts.TileSize)
		replaced := pasteTiles(dst, split, a.TileIndices, opts.TileSize, perRow, perCol)
		res.Processed = append(res.Processed, SpriteResult{Name: a.Name, Replaced: replaced})
		y += h + opts.Padding
	}
	return res, nil
}

func tileGrid(img image.Image, size int) (perRow, perCol int) {
	b := img.Bounds()
	return b.Dx() / size, b.Dy() / size
}

// pasteTiles writes split tiles into the tileset at the row-major grid
// positions named by indices. Indices outside the tileset's own tile grid
// are skipped.
func pasteTiles(dst draw.Image, split []image.Image, indices []int, size, perRow, perCol int) int {
	if perRow <= 0 {
		return 0
	}
	min := dst.Bounds().Min
	replaced := 0
	for i, idx := range indices {
		if i >= len(split) {
			break
		}
		if idx < 0 || idx >= perRow*perCol {
			continue
		}
		col := idx % perRow
		row := idx / perRow
		tiles.Paste(dst, split[i], min.Add(image.Pt(col*size, row*size)))
		replaced++
	}
	return replaced
}
