// assemble slices a tileset image into tiles and builds composite sprites
// from it, writing one PNG per sprite, a combined edit sheet, and the
// arrangements manifest that the disassemble tool reads back.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"spritepal/internal/arrange"
	"spritepal/internal/refsheet"
	"spritepal/internal/sheet"
	"spritepal/internal/tiles"

	"github.com/alecthomas/kong"
)

const desc = `Slices a tileset into tiles and assembles sprites from them.

Writes {prefix}_{name}.png per sprite, {prefix}_edit_sheet.png and
{prefix}_arrangements.txt. Edit the right half of the edit sheet in any
image editor, then run disassemble to write the pixels back.`

var cli struct {
	Tileset      string `arg:"" help:"Tileset image to slice."`
	Prefix       string `arg:"" optional:"" default:"assembled" help:"Output filename prefix."`
	TileSize     int    `default:"8" help:"Tile side length in pixels."`
	Recipe       string `help:"YAML recipe of sprite arrangements (default: auto-detect)."`
	Padding      int    `default:"20" help:"Vertical gap between edit sheet entries."`
	Refsheet     string `help:"Also write a PDF reference sheet to this path."`
	PreviewScale int    `default:"0" help:"Also write nearest-neighbor scaled sprite previews."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("assemble"),
		kong.Description(desc),
	)
	os.Exit(run())
}

func run() int {
	tileSize := cli.TileSize
	var arrs []arrange.Arrangement
	if cli.Recipe != "" {
		rec, err := arrange.LoadRecipe(cli.Recipe)
		if err != nil {
			fmt.Fprintf(os.Stderr, "assemble: recipe: %v\n", err)
			return 1
		}
		if rec.TileSize > 0 {
			tileSize = rec.TileSize
		}
		arrs = rec.Arrangements()
	}

	seq, err := tiles.Load(cli.Tileset, tileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assemble: %v\n", err)
		return 1
	}
	fmt.Printf("Loaded %d tiles from %s\n", len(seq.Tiles), cli.Tileset)

	if cli.Recipe == "" {
		found := arrange.Detect(seq, 64)
		fmt.Printf("Found %d non-empty tiles for auto-arrangement\n", len(found))
		arrs = arrange.DefaultArrangements(seq)
	}

	canvas, sprites := sheet.Build(seq, arrs, cli.Padding)
	for _, s := range sprites {
		out := fmt.Sprintf("%s_%s.png", cli.Prefix, s.Name)
		if err := tiles.SavePNG(out, s.Image); err != nil {
			fmt.Fprintf(os.Stderr, "assemble: write %s: %v\n", out, err)
			return 1
		}
		fmt.Printf("Saved %s\n", out)
		if cli.PreviewScale > 1 {
			preview := fmt.Sprintf("%s_%s_preview.png", cli.Prefix, s.Name)
			if err := tiles.SavePNG(preview, tiles.Scale(s.Image, cli.PreviewScale)); err != nil {
				fmt.Fprintf(os.Stderr, "assemble: write %s: %v\n", preview, err)
				return 1
			}
			fmt.Printf("Saved %s\n", preview)
		}
	}

	sheetPath := cli.Prefix + "_edit_sheet.png"
	if err := tiles.SavePNG(sheetPath, canvas); err != nil {
		fmt.Fprintf(os.Stderr, "assemble: write %s: %v\n", sheetPath, err)
		return 1
	}
	fmt.Printf("Saved edit sheet to %s\n", sheetPath)

	catalogPath := cli.Prefix + "_arrangements.txt"
	if err := arrange.SaveCatalog(catalogPath, arrs); err != nil {
		fmt.Fprintf(os.Stderr, "assemble: write %s: %v\n", catalogPath, err)
		return 1
	}
	fmt.Printf("Saved arrangements to %s\n", catalogPath)

	if cli.Refsheet != "" {
		b, err := refsheet.Generate(seq, arrs, filepath.Base(cli.Tileset))
		if err != nil {
			fmt.Fprintf(os.Stderr, "assemble: reference sheet: %v\n", err)
			return 1
		}
		if err := os.WriteFile(cli.Refsheet, b, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "assemble: write %s: %v\n", cli.Refsheet, err)
			return 1
		}
		fmt.Printf("Saved reference sheet to %s\n", cli.Refsheet)
	}
	return 0
}
