// disassemble splits edited sprite images back into tiles and writes them
// into a copy of the original tileset at the positions recorded in the
// arrangements manifest.
package main

import (
	"fmt"
	"image"
	"os"

	"spritepal/internal/arrange"
	"spritepal/internal/rebuild"
	"spritepal/internal/tiles"

	"github.com/alecthomas/kong"
)

const desc = `Writes edited sprites back into a copy of the original tileset.

Reads either individual edited sprite PNGs or, with --sheet, the edited
right half of a combined edit sheet. The arrangements manifest is found
next to the first edited file unless --arrangements names it explicitly.`

var cli struct {
	Tileset      string   `arg:"" help:"Original tileset image."`
	Edited       []string `arg:"" help:"Edited sprite image(s), or one edit sheet with --sheet."`
	Output       string   `short:"o" default:"updated_tileset.png" help:"Output tileset image."`
	Sheet        bool     `help:"Treat the edited input as a combined edit sheet."`
	Arrangements string   `help:"Arrangements manifest path."`
	TileSize     int      `default:"8" help:"Tile side length in pixels."`
	Padding      int      `default:"20" help:"Vertical gap used when the edit sheet was assembled."`
	Prefix       string   `default:"assembled" help:"Filename prefix to strip when matching sprites."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("disassemble"),
		kong.Description(desc),
	)
	os.Exit(run())
}

func run() int {
	catalog := cli.Arrangements
	if catalog == "" {
		found, err := arrange.FindCatalog(cli.Edited[0], cli.Prefix)
		if err != nil {
			fmt.Println("Error: Could not find arrangements file")
			return 1
		}
		catalog = found
	}
	fmt.Printf("Using arrangements from: %s\n", catalog)

	opts := rebuild.Options{
		TileSize: cli.TileSize,
		Prefix:   cli.Prefix,
		Padding:  cli.Padding,
	}

	var res rebuild.Result
	var err error
	if cli.Sheet {
		if len(cli.Edited) != 1 {
			fmt.Fprintln(os.Stderr, "disassemble: --sheet takes exactly one edit sheet image")
			return 1
		}
		fmt.Printf("Processing edit sheet: %s\n", cli.Edited[0])
		res, err = rebuild.FromEditSheet(cli.Edited[0], catalog, cli.Tileset, opts)
	} else {
		res, err = rebuild.Rebuild(cli.Tileset, cli.Edited, catalog, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "disassemble: %v\n", err)
		return 1
	}

	for _, p := range res.Processed {
		fmt.Printf("Processed %s: replaced %d tiles\n", p.Name, p.Replaced)
	}
	for _, s := range res.Skipped {
		fmt.Printf("Skipped %s\n", s)
	}

	if err := tiles.SavePNG(cli.Output, res.Image); err != nil {
		fmt.Fprintf(os.Stderr, "disassemble: write %s: %v\n", cli.Output, err)
		return 1
	}
	fmt.Printf("\nSaved updated tileset to: %s\n", cli.Output)

	if _, ok := res.Image.(*image.Paletted); ok {
		fmt.Println("Note: output is indexed; convert it to the ROM's binary tile format in a separate step")
	}
	return 0
}
