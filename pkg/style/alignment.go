// Package style holds the text-styling records of a document: alignments,
// borders, fonts and paragraph formats.
package style

import (
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// HorizontalAlignment is a symbolic alignment. The empty value means unset.
type HorizontalAlignment string

const (
	AlignLeft        HorizontalAlignment = "left"
	AlignCenter      HorizontalAlignment = "center"
	AlignRight       HorizontalAlignment = "right"
	AlignJustify     HorizontalAlignment = "justify"
	AlignFullJustify HorizontalAlignment = "full-justify"
)

var horizontal = schema.NewEnum("alignment", map[HorizontalAlignment]wire.HorizontalAlignment{
	AlignLeft:        wire.AlignLeft,
	AlignCenter:      wire.AlignCenter,
	AlignRight:       wire.AlignRight,
	AlignJustify:     wire.AlignJustify,
	AlignFullJustify: wire.AlignFullJustify,
})

// ToWire returns the wire code, or a ValidationError for an unknown value.
func (a HorizontalAlignment) ToWire() (wire.HorizontalAlignment, error) {
	return horizontal.Lookup(a)
}

// VerticalAlignment is a symbolic alignment. The empty value means unset.
type VerticalAlignment string

const (
	AlignTop    VerticalAlignment = "top"
	AlignMiddle VerticalAlignment = "middle"
	AlignBottom VerticalAlignment = "bottom"
)

var vertical = schema.NewEnum("verticalAlignment", map[VerticalAlignment]wire.VerticalAlignment{
	AlignTop:    wire.VAlignTop,
	AlignMiddle: wire.VAlignMiddle,
	AlignBottom: wire.VAlignBottom,
})

// ToWire returns the wire code, or a ValidationError for an unknown value.
func (a VerticalAlignment) ToWire() (wire.VerticalAlignment, error) {
	return vertical.Lookup(a)
}

// ReferencePoint selects which corner (or the center) of a positioned object
// is placed at its coordinates.
type ReferencePoint string

const (
	TopLeft     ReferencePoint = "top-left"
	TopRight    ReferencePoint = "top-right"
	Center      ReferencePoint = "center"
	BottomLeft  ReferencePoint = "bottom-left"
	BottomRight ReferencePoint = "bottom-right"
)

var referencePoints = schema.NewEnum("referencePoint", map[ReferencePoint]wire.ReferencePoint{
	TopLeft:     wire.RefPointTopLeft,
	TopRight:    wire.RefPointTopRight,
	Center:      wire.RefPointCenter,
	BottomLeft:  wire.RefPointBottomLeft,
	BottomRight: wire.RefPointBottomRight,
})

// ToWire returns the wire code, or a ValidationError for an unknown value.
func (p ReferencePoint) ToWire() (wire.ReferencePoint, error) {
	return referencePoints.Lookup(p)
}

// ToWireOptional maps the empty reference point to nil.
func (p ReferencePoint) ToWireOptional() (*wire.ReferencePoint, error) {
	if p == "" {
		return nil, nil
	}
	v, err := p.ToWire()
	if err != nil {
		return nil, err
	}
	return &v, nil
}
