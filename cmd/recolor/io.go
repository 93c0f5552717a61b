package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInputNotExist is returned when the input file does not exist.
var ErrInputNotExist = errors.New("input file does not exist")

// ErrInputEncoding is returned when the input file is not valid UTF-8.
var ErrInputEncoding = errors.New("input file is not valid UTF-8")

var openFile = os.OpenFile

// readInputFile reads the whole input file. Files are opened exactly once.
func readInputFile(input string) ([]byte, error) {
	r, err := openFile(input, os.O_RDONLY, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotExist, input)
	} else if err != nil {
		return nil, fmt.Errorf("open input file %q: %w", input, err)
	}
	defer r.Close()

	if info, err := r.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("read input file %q: is a directory", input)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input file %q: %w", input, err)
	} else if !utf8.Valid(b) {
		return nil, fmt.Errorf("read input file %q: %w", input, ErrInputEncoding)
	}
	return b, nil
}

// writeOutputFile creates or truncates output and writes b to it, creating the parent directory if needed.
func writeOutputFile(output string, b []byte) error {
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	w, err := openFile(output, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("open output file %q: %w", output, err)
	}

	if _, err := w.Write(b); err != nil {
		w.Close()
		return fmt.Errorf("write output file %q: %w", output, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close output file %q: %w", output, err)
	}
	return nil
}

// IsDir returns true if the passed string looks like it specifies a directory, false otherwise.
func IsDir(dir string) bool {
	if 0 < len(dir) && dir[len(dir)-1] == os.PathSeparator {
		return true
	}
	info, err := os.Lstat(dir)
	return err == nil && info.Mode().IsDir() && info.Mode()&os.ModeSymlink == 0
}

// SameFile returns true if the two file paths specify the same path.
// While Linux is case-preserving case-sensitive (and therefore a string comparison will work),
// Windows is case-preserving case-insensitive; we use os.SameFile() to work cross-platform.
func SameFile(filename1 string, filename2 string) (bool, error) {
	fi1, err := os.Stat(filename1)
	if err != nil {
		return false, err
	}

	fi2, err := os.Stat(filename2)
	if err != nil {
		return false, err
	}
	return os.SameFile(fi1, fi2), nil
}
