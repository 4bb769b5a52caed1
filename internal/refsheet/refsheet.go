// Package refsheet generates a printable PDF reference sheet for a sliced
// tileset: the tile grid with decimal index labels, followed by a preview
// of each arrangement, so indices can be looked up away from the screen
// while editing.
package refsheet

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"spritepal/internal/arrange"
	"spritepal/internal/tiles"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	cellSize  = 24.0
	cellStepX = 30.0
	cellStepY = 38.0
	labelSize = 6
	fontSize  = 9
	titleSize = 16
)

// Generate returns PDF bytes for the reference sheet. An empty sequence
// yields nil bytes.
func Generate(seq tiles.Sequence, arrs []arrange.Arrangement, title string) ([]byte, error) {
	if len(seq.Tiles) == 0 {
		return nil, nil
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 16, "Tileset Reference", "", 0, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(margin, margin+18)
		pdf.CellFormat(pageW-2*margin, 10, title, "", 0, "L", false, 0, "")
	}

	usableW := float64(pageW - 2*margin)
	perRow := int(usableW / cellStepX)
	y := float64(margin) + 40
	for i, tile := range seq.Tiles {
		col := i % perRow
		if col == 0 && i > 0 {
			y += cellStepY
		}
		if y+cellStepY > pageH-margin {
			pdf.AddPage()
			y = margin
		}
		x := float64(margin) + float64(col)*cellStepX
		if err := embedImage(pdf, fmt.Sprintf("tile%04d", i), tile, x, y, cellSize, cellSize); err != nil {
			return nil, err
		}
		pdf.SetFont("Helvetica", "", labelSize)
		pdf.SetXY(x, y+cellSize+2)
		pdf.CellFormat(cellSize, 8, fmt.Sprintf("%d", i), "", 0, "C", false, 0, "")
	}
	y += cellStepY + 16

	pdf.SetFont("Helvetica", "B", fontSize)
	for ai, a := range arrs {
		w := float64(a.Width*seq.Size) * 2
		h := float64(a.Height*seq.Size) * 2
		if y+h+24 > pageH-margin {
			pdf.AddPage()
			y = margin
		}
		pdf.SetXY(margin, y)
		pdf.CellFormat(pageW-2*margin, 10, fmt.Sprintf("%s (%dx%d tiles)", a.Name, a.Width, a.Height), "", 0, "L", false, 0, "")
		y += 14
		sprite := tiles.Compose(seq, a.TileIndices, a.Width, a.Height)
		if err := embedImage(pdf, fmt.Sprintf("sprite%03d", ai), sprite, margin, y, w, h); err != nil {
			return nil, err
		}
		y += h + 12
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// embedImage places img on the page at (x, y) scaled to w x h points. The
// pixels are upscaled with nearest-neighbor first so tiny tiles stay crisp
// instead of being smoothed by the PDF viewer.
func embedImage(pdf *gofpdf.Fpdf, name string, img image.Image, x, y, w, h float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, tiles.Scale(img, 4)); err != nil {
		return err
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opt, &buf)
	pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
	return pdf.Error()
}
