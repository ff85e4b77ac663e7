package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/style"
	"github.com/aretw0/docframe/pkg/wire"
)

// BarcodeProperties are all required except Padding, Code, AltText and Uuid.
type BarcodeProperties struct {
	Type           BarcodeType
	X, Y           *measure.Absolute
	ReferencePoint style.ReferencePoint
	// Rotation in degrees, counter-clockwise.
	Rotation         float64
	Width, Height    *measure.Absolute
	Data             string
	PositionAbsolute bool

	// Padding defaults to measure.Zero().
	Padding *measure.Absolute
	Code    string
	AltText string
	Uuid    string
}

// Barcode is a barcode element.
type Barcode struct {
	props BarcodeProperties
}

// NewBarcode creates a barcode.
func NewBarcode(props BarcodeProperties) *Barcode {
	if props.Padding == nil {
		props.Padding = measure.Zero()
	}
	return &Barcode{props: props}
}

// Properties returns a copy of the barcode's properties.
func (b *Barcode) Properties() BarcodeProperties { return b.props }

// ToWire implements Element.
func (b *Barcode) ToWire() (*wire.Node, error) {
	p := b.props

	typ, err := barcodeTypes.Lookup(p.Type)
	if err != nil {
		return nil, fmt.Errorf("barcode: %w", err)
	}
	ref, err := p.ReferencePoint.ToWire()
	if err != nil {
		return nil, fmt.Errorf("barcode: %w", err)
	}

	out := &wire.Barcode{
		Type:             typ,
		PositionAbsolute: p.PositionAbsolute,
		ReferencePoint:   ref,
		Rotation:         p.Rotation,
		Data:             p.Data,
		Code:             optString(p.Code),
		AltText:          optString(p.AltText),
		Uuid:             optString(p.Uuid),
	}

	for _, m := range []struct {
		name     string
		in       *measure.Absolute
		out      **wire.Measure
		required bool
	}{
		{"x", p.X, &out.X, true},
		{"y", p.Y, &out.Y, true},
		{"width", p.Width, &out.Width, true},
		{"height", p.Height, &out.Height, true},
		{"padding", p.Padding, &out.Padding, false},
	} {
		if m.in == nil && m.required {
			return nil, fmt.Errorf("barcode: %w", schema.Invalid(m.name, nil, "required"))
		}
		if *m.out, err = m.in.ToWire(); err != nil {
			return nil, fmt.Errorf("barcode: %s: %w", m.name, err)
		}
	}

	return &wire.Node{Variant: out}, nil
}
