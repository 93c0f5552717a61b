package main

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tdewolff/recolor"
	"github.com/tdewolff/test"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRecolorFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	writeFile(t, input, `<rect fill="rgb(124, 190, 178)"/><rect fill="#123abc"/>`)

	var tests = []struct {
		name   string
		output string
	}{
		{"SameDirectory", filepath.Join(dir, "out.svg")},
		{"NestedDirectory", filepath.Join(dir, "a", "b", "out.svg")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recolorFile(recolor.DefaultColorMap(), input, tt.output)
			test.Error(t, err)
			test.String(t, readFile(t, tt.output), `<rect fill="rgb(172, 225, 217)"/><rect fill="#123abc"/>`)
		})
	}
}

func TestRecolorFileOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	output := filepath.Join(dir, "out.svg")
	writeFile(t, input, `<a fill="rgb(148, 167, 203)"/>`)
	writeFile(t, output, "a much longer file that must be truncated entirely")

	test.Error(t, recolorFile(recolor.DefaultColorMap(), input, output))
	test.String(t, readFile(t, output), `<a fill="rgb(190, 200, 230)"/>`)

	// in place
	test.Error(t, recolorFile(recolor.DefaultColorMap(), input, input))
	test.String(t, readFile(t, input), `<a fill="rgb(190, 200, 230)"/>`)
}

func TestRecolorFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.svg")
	output := filepath.Join(dir, "out.svg")

	err := recolorFile(recolor.DefaultColorMap(), input, output)
	test.That(t, errors.Is(err, ErrInputNotExist), "must report missing input:", err)
	_, err = os.Stat(output)
	test.That(t, errors.Is(err, fs.ErrNotExist), "output must not be created")
	test.That(t, !recolorTask(recolor.DefaultColorMap(), input, output))
}

func TestRecolorFileDirectoryInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.svg")

	err := recolorFile(recolor.DefaultColorMap(), dir, output)
	test.That(t, err != nil, "must fail on a directory")
	test.That(t, !errors.Is(err, ErrInputNotExist))
	_, err = os.Stat(output)
	test.That(t, errors.Is(err, fs.ErrNotExist), "output must not be created")
}

func TestRecolorFileMinify(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	output := filepath.Join(dir, "out.svg")
	svg := "<svg>\n  <!-- comment -->\n  <rect fill=\"#123abc\" />\n</svg>\n"
	writeFile(t, input, svg)

	minifyOutput = true
	defer func() { minifyOutput = false }()
	test.Error(t, recolorFile(recolor.DefaultColorMap(), input, output))
	test.That(t, len(readFile(t, output)) < len(svg), "output must be minified")
}

func TestPreserveAttributes(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	output := filepath.Join(dir, "out.svg")
	writeFile(t, input, `<svg/>`)
	if err := os.Chmod(input, 0600); err != nil {
		t.Fatal(err)
	}
	modTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(input, modTime, modTime); err != nil {
		t.Fatal(err)
	}

	preserveMode, preserveTimestamps = true, true
	defer func() { preserveMode, preserveTimestamps = false, false }()
	test.Error(t, recolorFile(recolor.DefaultColorMap(), input, output))

	info, err := os.Stat(output)
	test.Error(t, err)
	test.T(t, info.Mode().Perm(), fs.FileMode(0600))
	test.That(t, info.ModTime().Equal(modTime), "modification time must be preserved")
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file, "")

	test.T(t, IsDir(dir), true)
	test.T(t, IsDir(file), false)
	test.T(t, IsDir(filepath.Join(dir, "missing")), false)
	test.T(t, IsDir("path"+string(os.PathSeparator)), true)
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file, "")

	sameFile, err := SameFile(file, filepath.Join(dir, ".", "file"))
	test.Error(t, err)
	test.That(t, sameFile)

	_, err = SameFile(file, filepath.Join(dir, "missing"))
	test.That(t, err != nil)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	writeFile(t, input, `<svg/>`)

	watcher, err := NewWatcher()
	test.Error(t, err)
	defer watcher.Close()
	test.Error(t, watcher.AddPath(input))
	test.That(t, watcher.AddPath(dir) != nil, "directories cannot be watched")
	changes := watcher.Run()

	writeFile(t, filepath.Join(dir, "other.svg"), `<svg/>`)
	writeFile(t, input, `<svg fill="#000000"/>`)
	select {
	case name := <-changes:
		test.String(t, name, input)
	case <-time.After(5 * time.Second):
		t.Fatal("no change detected")
	}
}

func TestReadInputFileOpensOnce(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file, `<svg/>`)

	opens := 0
	openFile = func(name string, flag int, perm os.FileMode) (*os.File, error) {
		opens++
		return os.OpenFile(name, flag, perm)
	}
	defer func() { openFile = os.OpenFile }()

	// not a directory
	_, err := readInputFile(filepath.Join(file, "x"))
	test.That(t, err != nil, "must fail")
	test.That(t, !errors.Is(err, ErrInputNotExist), "must not report a missing file:", err)
	test.T(t, opens, 1, "input must be opened once")

	opens = 0
	err = writeOutputFile(filepath.Join(dir, "out.svg"), []byte(`<svg/>`))
	test.Error(t, err)
	test.T(t, opens, 1, "output must be opened once")
}

func TestReadInputFileEncoding(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	output := filepath.Join(dir, "out.svg")
	writeFile(t, input, "<svg><text>\xff\xfe</text><a fill=\"rgb(124, 190, 178)\"/></svg>")

	err := recolorFile(recolor.DefaultColorMap(), input, output)
	test.That(t, errors.Is(err, ErrInputEncoding), "must reject invalid UTF-8:", err)
	_, err = os.Stat(output)
	test.That(t, errors.Is(err, fs.ErrNotExist), "output must not be created")
}

// runArgs runs the command with the given arguments and returns the exit code and what was written to stdout.
func runArgs(t *testing.T, args ...string) (int, string) {
	t.Helper()
	quiet, verbose, watch, minifyOutput, preserve = false, 0, false, false, nil

	rPipe, wPipe, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldArgs, oldStdout := os.Args, os.Stdout
	os.Args = append([]string{"recolor"}, args...)
	os.Stdout = wPipe
	code := run()
	os.Args, os.Stdout = oldArgs, oldStdout
	Error = log.New(io.Discard, "", 0)
	wPipe.Close()

	b, err := io.ReadAll(rPipe)
	rPipe.Close()
	if err != nil {
		t.Fatal(err)
	}
	return code, string(b)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	writeFile(t, input, `<rect fill="rgb(124, 190, 178)"/>`)
	outDir := filepath.Join(dir, "out")
	output := filepath.Join(outDir, "out.svg")
	missing := filepath.Join(dir, "missing.svg")

	var tests = []struct {
		name     string
		args     []string
		expected string
	}{
		{"NoPaths", []string{}, usage + "\n"},
		{"OnePath", []string{input}, usage + "\n"},
		{"ThreePaths", []string{input, output, filepath.Join(outDir, "extra.svg")}, usage + "\n"},
		{"MissingInput", []string{missing, output}, "Error: File '" + missing + "' not found.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout := runArgs(t, tt.args...)
			test.T(t, code, 1)
			test.String(t, stdout, tt.expected)
			_, err := os.Stat(outDir)
			test.That(t, errors.Is(err, fs.ErrNotExist), "nothing must be written")
		})
	}

	code, stdout := runArgs(t, input, output)
	test.T(t, code, 0)
	test.String(t, stdout, "Updated SVG saved to "+output+"\n")
	test.String(t, readFile(t, output), `<rect fill="rgb(172, 225, 217)"/>`)
}
