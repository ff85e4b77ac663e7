package style

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/color"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/wire"
)

// Border is a line of a given width and color.
type Border struct {
	Width *measure.Absolute
	Color *color.Color
}

// NewBorder creates a border of the given weight and color.
func NewBorder(width *measure.Absolute, c *color.Color) *Border {
	return &Border{Width: width, Color: c}
}

// ToWire converts the border to its wire form.
func (b *Border) ToWire() (*wire.Border, error) {
	if b == nil {
		return nil, nil
	}
	weight, err := b.Width.ToWire()
	if err != nil {
		return nil, fmt.Errorf("border width: %w", err)
	}
	return &wire.Border{Weight: weight, Color: b.Color.ToWire()}, nil
}

// SideBorders sets borders per side; nil sides are unspecified.
type SideBorders measure.Sides[*Border]

// AllBorders uses the same border on every side.
func AllBorders(b *Border) *SideBorders {
	return &SideBorders{Top: b, Right: b, Bottom: b, Left: b}
}

// ToWire converts the set sides; nil sides are left out.
func (s *SideBorders) ToWire() (*wire.SideBorders, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out wire.SideBorders
		err error
	)
	if out.Top, err = s.Top.ToWire(); err != nil {
		return nil, fmt.Errorf("top: %w", err)
	}
	if out.Right, err = s.Right.ToWire(); err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	if out.Bottom, err = s.Bottom.ToWire(); err != nil {
		return nil, fmt.Errorf("bottom: %w", err)
	}
	if out.Left, err = s.Left.ToWire(); err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	return &out, nil
}
