// Package paint holds the value types a device context forwards to its
// backend: colours, pens, brushes, gradients, fonts and bitmaps.
//
// All types are plain values. The zero value of each is "not ok" (the
// null colour, pen, brush or font), matching the convention that an
// unset attribute is distinguishable from a transparent one.
package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA colour with a validity flag.
// The zero value is the invalid (null) colour.
type Color struct {
	R, G, B, A uint8
	ok         bool
}

// Common colours.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255, ok: true}
}

// RGBA returns a colour with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, ok: true}
}

// FromColor converts any color.Color. A nil colour yields the invalid
// colour.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A, ok: true}
}

// IsOk reports whether the colour has been set.
func (c Color) IsOk() bool {
	return c.ok
}

// NRGBA returns the colour as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color. The invalid colour reports as transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.ok {
		return 0, 0, 0, 0
	}
	return c.NRGBA().RGBA()
}

// WithAlpha returns the colour with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// String returns the colour as #rrggbbaa, or "null" for the invalid colour.
func (c Color) String() string {
	if !c.ok {
		return "null"
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a CSS colour name
// such as "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("paint: empty colour")
	}

	if s[0] != '#' {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("paint: unknown colour name %q", s)
		}
		return FromColor(named), nil
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("paint: invalid colour %q: %w", s, err)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGB(r*17, g*17, b*17), nil
	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("paint: invalid colour %q: %w", s, err)
		}
		if len(hex) == 6 {
			return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
		return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	default:
		return Color{}, fmt.Errorf("paint: invalid colour %q", s)
	}
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
