package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/recolor"
)

// Version is the current recolor version.
var Version = "built from source"

const usage = "Usage: recolor <input_svg_path> <output_svg_path>"

var (
	quiet              bool
	verbose            int
	version            bool
	watch              bool
	minifyOutput       bool
	minifyOptions      recolor.MinifyOptions
	preserve           []string
	preserveMode       bool
	preserveOwnership  bool
	preserveTimestamps bool
)

// Loggers.
var (
	Error   = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info    = log.New(io.Discard, "", 0)
)

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var paths []string

	f := argp.New("recolor")
	f.AddRest(&paths, "paths", "Input SVG file followed by the output SVG file")
	f.AddOpt(&quiet, "q", "quiet", false, "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", nil, "Verbose mode, set twice for more verbosity")
	f.AddOpt(&watch, "w", "watch", false, "Watch the input file and recolor upon changes")
	f.AddOpt(&preserve, "p", "preserve", nil, "Preserve options of the input file (mode, ownership, timestamps, all)")
	f.AddOpt(&minifyOutput, "m", "minify", false, "Minify the recolored output")
	f.AddOpt(&minifyOptions.KeepComments, "", "svg-keep-comments", false, "Preserve all comments when minifying")
	f.AddOpt(&minifyOptions.Precision, "", "svg-precision", 0, "Number of significant digits to preserve in numbers when minifying, 0 is all")
	f.AddOpt(&version, "", "version", false, "Version")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("recolor %s\n", Version)
		}
		return 0
	}

	if len(paths) != 2 {
		fmt.Println(usage)
		return 1
	}
	input, output := filepath.Clean(paths[0]), filepath.Clean(paths[1])

	if !quiet {
		Error = log.New(os.Stdout, "Error: ", 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, "WARNING: ", 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	for _, option := range preserve {
		switch option {
		case "all":
			preserveMode = true
			preserveOwnership = true
			preserveTimestamps = true
		case "mode":
			preserveMode = true
		case "ownership":
			preserveOwnership = true
		case "timestamps":
			preserveTimestamps = true
		default:
			Error.Println("unknown preserve option", option)
			return 1
		}
	}
	if preserveOwnership && !supportsGetOwnership {
		Warning.Println(fmt.Errorf("preserve ownership not supported on platform"))
	}

	if watch {
		if sameFile, _ := SameFile(input, output); sameFile || input == output {
			Error.Println("--watch doesn't work when the output overwrites the input")
			return 1
		}
	}

	cm := recolor.DefaultColorMap()
	if ok := recolorTask(cm, input, output); !ok {
		return 1
	} else if !watch {
		return 0
	}

	watcher, err := NewWatcher()
	if err != nil {
		Error.Println(err)
		return 1
	}
	defer watcher.Close()
	if err := watcher.AddPath(input); err != nil {
		Error.Println(err)
		return 1
	}
	changes := watcher.Run()
	Info.Println("watching", input)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	for changes != nil {
		select {
		case <-c:
			watcher.Close()
		case _, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			recolorTask(cm, input, output) // keep watching after failures
		}
	}
	return 0
}

// recolorTask recolors input into output and reports the outcome to the user.
func recolorTask(cm *recolor.ColorMap, input, output string) bool {
	if err := recolorFile(cm, input, output); err != nil {
		if errors.Is(err, ErrInputNotExist) {
			Error.Printf("File '%s' not found.\n", input)
		} else {
			Error.Println(err)
		}
		return false
	}
	if !quiet {
		fmt.Println("Updated SVG saved to", output)
	}
	return true
}

// recolorFile replaces the fill colors of input and writes the result to output.
// The output file is only opened after the input has been read and transformed in full.
func recolorFile(cm *recolor.ColorMap, input, output string) error {
	b, err := readInputFile(input)
	if err != nil {
		return err
	}

	startTime := time.Now()
	rLen := len(b)
	b, matched, replaced := recolor.ReplaceCount(cm, b)
	if matched == 0 {
		Warning.Println("no fill colors found in", input)
	}
	if minifyOutput {
		if b, err = recolor.Minify(b, minifyOptions); err != nil {
			return err
		}
	}
	dur := time.Since(startTime)

	if err := writeOutputFile(output, b); err != nil {
		return err
	}

	speed := "Inf MB"
	if 0 < dur {
		speed = humanize.Bytes(uint64(float64(rLen) / dur.Seconds()))
	}
	Info.Printf("(%9v, %6v, %6v, %6v/s) - %d of %d fill colors replaced in %s", dur, humanize.Bytes(uint64(rLen)), humanize.Bytes(uint64(len(b))), speed, replaced, matched, input)

	preserveAttributes(input, output)
	return nil
}
