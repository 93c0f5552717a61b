package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/recolor"
)

const usage = "Usage: fillcolors [--normalize] <input_svg_path>"

// Error is the error logger.
var Error = log.New(os.Stdout, "Error: ", 0)

func main() {
	os.Exit(run())
}

func run() int {
	var paths []string
	var normalize bool

	f := argp.New("fillcolors")
	f.AddRest(&paths, "input", "Input SVG file, the JSON color map is written to stdout")
	f.AddOpt(&normalize, "n", "normalize", false, "Convert rgb() and short hex colors to 6-digit hex")
	f.Parse()

	if len(paths) != 1 {
		fmt.Println(usage)
		return 1
	}

	if err := printFillColors(os.Stdout, paths[0], normalize); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Input file '%s' does not exist or cannot be read. Exiting.\n", paths[0])
		} else {
			Error.Println(err)
		}
		return 1
	}
	return 0
}

// printFillColors writes the fill colors of the input file as an indented JSON identity map, usable as a template for a color map.
func printFillColors(w io.Writer, input string, normalize bool) error {
	r, err := os.Open(input)
	if err != nil {
		return err
	}
	defer r.Close()

	cm, err := recolor.ExtractFillColors(r, normalize)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	b, err := json.MarshalIndent(cm, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
