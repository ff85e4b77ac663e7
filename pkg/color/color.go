// Package color builds validated RGB and CMYK colors.
package color

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// Color is an immutable RGB or CMYK color. Construct it with RGB, CMYK or FromHex.
type Color struct {
	w wire.Color
}

func channel(name string, v, max int) error {
	if v < 0 || v > max {
		return schema.Invalid(name, v, fmt.Sprintf("must be between 0 and %d", max))
	}
	return nil
}

// RGB creates a color from red, green and blue channels in [0, 255].
func RGB(r, g, b int) (*Color, error) {
	for _, c := range []struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if err := channel(c.name, c.v, 255); err != nil {
			return nil, err
		}
	}
	return &Color{w: wire.Color{Type: wire.ColorRGB, R: int32(r), G: int32(g), B: int32(b)}}, nil
}

// CMYK creates a color from cyan, magenta, yellow and black channels in [0, 100].
func CMYK(c, m, y, k int) (*Color, error) {
	for _, ch := range []struct {
		name string
		v    int
	}{{"cyan", c}, {"magenta", m}, {"yellow", y}, {"black", k}} {
		if err := channel(ch.name, ch.v, 100); err != nil {
			return nil, err
		}
	}
	return &Color{w: wire.Color{Type: wire.ColorCMYK, C: int32(c), M: int32(m), Y: int32(y), K: int32(k)}}, nil
}

// FromHex parses "rrggbb" with an optional leading '#'.
func FromHex(s string) (*Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return nil, schema.Invalid("hex", s, "expected 6 hex digits")
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, schema.Invalid("hex", s, "not a hex color")
	}
	return RGB(int(raw[0]), int(raw[1]), int(raw[2]))
}

var (
	white = &Color{w: wire.Color{Type: wire.ColorRGB, R: 255, G: 255, B: 255}}
	black = &Color{w: wire.Color{Type: wire.ColorCMYK, K: 100}}
)

// White is RGB(255, 255, 255).
func White() *Color { return white }

// Black is CMYK(0, 0, 0, 100).
func Black() *Color { return black }

// IsCMYK reports whether the color uses the CMYK model.
func (c *Color) IsCMYK() bool { return c.w.Type == wire.ColorCMYK }

// String formats the color as rgb(...) or cmyk(...).
func (c *Color) String() string {
	if c.IsCMYK() {
		return fmt.Sprintf("cmyk(%d,%d,%d,%d)", c.w.C, c.w.M, c.w.Y, c.w.K)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.w.R, c.w.G, c.w.B)
}

// ToWire returns a copy of the wire form, or nil for a nil color.
func (c *Color) ToWire() *wire.Color {
	if c == nil {
		return nil
	}
	w := c.w
	return &w
}
