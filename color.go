package recolor

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	rgbPattern      = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	shortHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
)

// IsPaint returns false for fill values that do not denote a color, such as none or a url() reference.
func IsPaint(color string) bool {
	switch color {
	case "", "none", "currentColor", "inherit", "freeze":
		return false
	}
	return !strings.HasPrefix(color, "url(")
}

// Normalize converts rgb(r, g, b) and 3-digit hex colors to lowercase 6-digit hex.
// Components above 255 are clamped. Other values are returned unchanged.
func Normalize(color string) string {
	if m := rgbPattern.FindStringSubmatch(color); m != nil {
		var c [3]float64
		for i := range c {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || 255 < n {
				n = 255 // overflowing digit strings
			}
			c[i] = float64(n) / 255.0
		}
		return colorful.Color{R: c[0], G: c[1], B: c[2]}.Hex()
	} else if shortHexPattern.MatchString(color) {
		if c, err := colorful.Hex(color); err == nil {
			return c.Hex()
		}
	}
	return color
}
