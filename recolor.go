// Package recolor rewrites the fill colors of SVG documents according to a color map.
//
// Matching is lexical: only attributes of the exact form fill="#rrggbb" or fill="rgb(r, g, b)" are recognized,
// anywhere in the text, and everything else is copied byte for byte.
package recolor

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
)

// FillPattern matches a double-quoted fill attribute holding a 6-digit hex color or an rgb() triple.
// Whitespace is only allowed after the commas of the triple. The first submatch is the color.
var FillPattern = regexp.MustCompile(`fill="(rgb\(\d+,\s*\d+,\s*\d+\)|#[0-9a-fA-F]{6})"`)

var (
	fillStartBytes = []byte(`fill="`)
	quoteBytes     = []byte(`"`)
)

// Bytes returns b with every matched fill color replaced by its entry in cm.
// Colors without an entry are left as they are. A nil cm replaces nothing.
func Bytes(cm *ColorMap, b []byte) []byte {
	out, _, _ := ReplaceCount(cm, b)
	return out
}

// ReplaceCount is like Bytes but also returns the number of fill colors matched and how many of those were rewritten to a different value.
func ReplaceCount(cm *ColorMap, b []byte) ([]byte, int, int) {
	matches := FillPattern.FindAllSubmatchIndex(b, -1)
	if len(matches) == 0 {
		return b, 0, 0
	}

	replaced := 0
	w := bytes.NewBuffer(make([]byte, 0, len(b)))
	start := 0
	for _, match := range matches {
		color := b[match[2]:match[3]]
		w.Write(b[start:match[0]])
		w.Write(fillStartBytes)
		if val, ok := cm.Get(string(color)); ok {
			w.WriteString(val)
			if val != string(color) {
				replaced++
			}
		} else {
			w.Write(color)
		}
		w.Write(quoteBytes)
		start = match[1]
	}
	w.Write(b[start:])
	return w.Bytes(), len(matches), replaced
}

// String is like Bytes but for strings.
func String(cm *ColorMap, s string) string {
	return string(Bytes(cm, []byte(s)))
}

// Recolor reads all of r, replaces the fill colors and writes the result to w.
// Nothing is written when reading fails.
func Recolor(cm *ColorMap, w io.Writer, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if _, err := w.Write(Bytes(cm, b)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Count returns the number of fill colors matched in b and how many of those would be rewritten to a different value.
func Count(cm *ColorMap, b []byte) (int, int) {
	_, matched, replaced := ReplaceCount(cm, b)
	return matched, replaced
}
