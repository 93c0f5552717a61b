package recolor

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ExtractFillColors returns the fill colors used by the elements of an SVG document as an identity map, in order of first appearance.
// Unlike the lexical FillPattern, attributes are found with an XML lexer so any quoting style is accepted.
// Non-paint values like none are skipped. When normalize is set, colors are stored in their normalized spelling.
func ExtractFillColors(r io.Reader, normalize bool) (*ColorMap, error) {
	cm := NewColorMap()
	l := xml.NewLexer(parse.NewInput(r))
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, fmt.Errorf("extract fill colors: %w", l.Err())
			}
			return cm, nil
		case xml.AttributeToken:
			if string(l.Text()) != "fill" {
				continue
			}
			color := string(parse.TrimWhitespace(unquote(l.AttrVal())))
			if !IsPaint(color) {
				continue
			}
			if normalize {
				color = Normalize(color)
			}
			if _, ok := cm.Get(color); !ok {
				cm.Add(color, color)
			}
		}
	}
}

func unquote(b []byte) []byte {
	if 1 < len(b) && (b[0] == '"' || b[0] == '\'') && b[0] == b[len(b)-1] {
		return b[1 : len(b)-1]
	}
	return b
}
