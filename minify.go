package recolor

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
)

// MinifyOptions configures Minify.
type MinifyOptions struct {
	KeepComments bool
	Precision    int // number of significant digits, 0 is all
}

// Minify minifies an SVG document, including its style elements and attributes.
// Minification rewrites colors and whitespace, so it is only applied on request.
func Minify(b []byte, o MinifyOptions) ([]byte, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("image/svg+xml", &svg.Minifier{
		KeepComments: o.KeepComments,
		Precision:    o.Precision,
	})

	out, err := m.Bytes("image/svg+xml", b)
	if err != nil {
		return nil, fmt.Errorf("minify: %w", err)
	}
	return out, nil
}
