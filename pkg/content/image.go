package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/style"
	"github.com/aretw0/docframe/pkg/wire"
)

// Flip mirrors an image along either axis.
type Flip struct {
	X, Y *bool
}

// Crop cuts an image to a rectangle.
type Crop struct {
	X, Y, Width, Height measure.Value
}

// ImageProperties are the optional settings of an image.
type ImageProperties struct {
	Alt      string
	Name     string
	Src      string
	Filename string

	// Scale is a factor, 1.0 being 100%. ColumnScale is relative to the column width.
	Scale       *float64
	ColumnScale *float64

	Width, Height measure.Value
	X, Y          measure.Value

	PositionAbsolute *bool
	// Rotation in degrees.
	Rotation       *float64
	Flip           *Flip
	Crop           *Crop
	ReferencePoint style.ReferencePoint
	Hyperlink      string
	ScaleType      ImageScaleType
	Uuid           string
	// ImageContent is the inline image, base64 encoded.
	ImageContent string
}

// Image is an image element.
type Image struct {
	props ImageProperties
}

// NewImage creates an image.
func NewImage(props ImageProperties) *Image {
	return &Image{props: props}
}

// ToWire implements Element.
func (i *Image) ToWire() (*wire.Node, error) {
	p := i.props
	out := &wire.Image{
		Alt:              optString(p.Alt),
		Name:             optString(p.Name),
		Src:              optString(p.Src),
		Filename:         optString(p.Filename),
		Scale:            wire.BoxPtr(p.Scale),
		ColumnScale:      wire.BoxPtr(p.ColumnScale),
		PositionAbsolute: wire.BoxPtr(p.PositionAbsolute),
		Rotation:         p.Rotation,
		Hyperlink:        optString(p.Hyperlink),
		Uuid:             optString(p.Uuid),
		ImageContent:     optString(p.ImageContent),
	}

	if err := boxMeasures("image", map[string]boxTarget{
		"width":  {p.Width, &out.Width},
		"height": {p.Height, &out.Height},
		"x":      {p.X, &out.X},
		"y":      {p.Y, &out.Y},
	}); err != nil {
		return nil, err
	}

	if p.Flip != nil {
		out.FlipSettings = &wire.FlipSettings{X: p.Flip.X, Y: p.Flip.Y}
	}
	if p.Crop != nil {
		out.CropSettings = &wire.CropSettings{}
		if err := boxMeasures("image: crop", map[string]boxTarget{
			"x":      {p.Crop.X, &out.CropSettings.X},
			"y":      {p.Crop.Y, &out.CropSettings.Y},
			"width":  {p.Crop.Width, &out.CropSettings.Width},
			"height": {p.Crop.Height, &out.CropSettings.Height},
		}); err != nil {
			return nil, err
		}
	}

	var err error
	if out.ReferencePoint, err = p.ReferencePoint.ToWireOptional(); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	if out.ScaleType, err = lookupOptional(imageScaleTypes, p.ScaleType); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}

	return &wire.Node{Variant: out}, nil
}

type boxTarget struct {
	in  measure.Value
	out **wire.Boxed[*wire.Measure]
}

// boxMeasures converts each present measure into its boxed wire field.
func boxMeasures(owner string, fields map[string]boxTarget) error {
	for name, f := range fields {
		boxed, err := measure.Boxed(f.in)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", owner, name, err)
		}
		*f.out = boxed
	}
	return nil
}
