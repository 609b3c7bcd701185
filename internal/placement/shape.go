package placement

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ShapeKind is a placeable primitive.
type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota
	Cube
	Sphere
	Cylinder
)

// Shapes lists the placeable kinds in toolbar order.
var Shapes = []ShapeKind{Cube, Sphere, Cylinder}

// ParseShape maps "cube", "sphere", "cylinder" (case-insensitive) to a ShapeKind.
// Anything else returns ShapeUnknown and false.
func ParseShape(s string) (ShapeKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cube":
		return Cube, true
	case "sphere":
		return Sphere, true
	case "cylinder":
		return Cylinder, true
	default:
		return ShapeUnknown, false
	}
}

func (k ShapeKind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of Shapes.
func (k ShapeKind) Valid() bool {
	return k == Cube || k == Sphere || k == Cylinder
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// DefaultColor is used when no color has been picked.
var DefaultColor = Color{R: 0xff, G: 0x00, B: 0x00}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor accepts #RGB, #RRGGBB, or an SVG color name ("red", "steelblue").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(hex string) (Color, error) {
	var digits [6]uint8
	switch len(hex) {
	case 3, 6:
	default:
		return Color{}, fmt.Errorf("hex color must have 3 or 6 digits, got %q", hex)
	}
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("invalid hex digit %q", hex[i])
		}
		digits[i] = v
	}
	if len(hex) == 3 {
		// #RGB -> #RRGGBB
		return Color{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17}, nil
	}
	return Color{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
	}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
