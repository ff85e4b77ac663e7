package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/wire"
)

// HeaderProperties are the optional settings of a header.
type HeaderProperties struct {
	Mode HeaderFooterMode
}

// Header is the content placed at the top of each page.
type Header struct {
	Branch
	props HeaderProperties
}

// NewHeader creates a header.
func NewHeader(c Content, props *HeaderProperties) *Header {
	h := &Header{Branch: newBranch(c)}
	if props != nil {
		h.props = *props
	}
	return h
}

// ToWire implements Element.
func (h *Header) ToWire() (*wire.Node, error) {
	mode, err := lookupOptional(headerModes, h.props.Mode)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	return h.node(&wire.Header{Mode: mode})
}

// FooterProperties are the optional settings of a footer.
type FooterProperties struct {
	Mode HeaderFooterMode
}

// Footer is the content placed at the bottom of each page.
type Footer struct {
	Branch
	props FooterProperties
}

// NewFooter creates a footer.
func NewFooter(c Content, props *FooterProperties) *Footer {
	f := &Footer{Branch: newBranch(c)}
	if props != nil {
		f.props = *props
	}
	return f
}

// ToWire implements Element.
func (f *Footer) ToWire() (*wire.Node, error) {
	mode, err := lookupOptional(footerModes, f.props.Mode)
	if err != nil {
		return nil, fmt.Errorf("footer: %w", err)
	}
	return f.node(&wire.Footer{Mode: mode})
}

// SectionProperties are the optional settings of a section.
type SectionProperties struct {
	Uuid string
	// CDefUuid selects the column definition used inside the section.
	CDefUuid string
}

// Section is a section element.
type Section struct {
	Branch
	props SectionProperties
}

// NewSection creates a section.
func NewSection(c Content, props *SectionProperties) *Section {
	s := &Section{Branch: newBranch(c)}
	if props != nil {
		s.props = *props
	}
	return s
}

// ToWire implements Element.
func (s *Section) ToWire() (*wire.Node, error) {
	return s.node(&wire.Section{
		Uuid:     optString(s.props.Uuid),
		CDefUuid: optString(s.props.CDefUuid),
	})
}

// IndentationProperties are the optional settings of an indentation.
type IndentationProperties struct {
	Left  measure.Value
	Right measure.Value
	Uuid  string
}

// Indentation is an indentation element.
type Indentation struct {
	Branch
	props IndentationProperties
}

// NewIndentation creates an indentation.
func NewIndentation(c Content, props *IndentationProperties) *Indentation {
	i := &Indentation{Branch: newBranch(c)}
	if props != nil {
		i.props = *props
	}
	return i
}

// ToWire implements Element.
func (i *Indentation) ToWire() (*wire.Node, error) {
	out := &wire.Indentation{Uuid: optString(i.props.Uuid)}
	var err error
	if out.Left, err = measure.Boxed(i.props.Left); err != nil {
		return nil, fmt.Errorf("indentation: left: %w", err)
	}
	if out.Right, err = measure.Boxed(i.props.Right); err != nil {
		return nil, fmt.Errorf("indentation: right: %w", err)
	}
	return i.node(out)
}

// DirectoryProperties are the optional settings of a directory.
type DirectoryProperties struct {
	Name         string
	Editable     *bool
	SemanticType SemanticType
}

// Directory is a structural grouping such as a chapter.
type Directory struct {
	Branch
	props DirectoryProperties
}

// NewDirectory creates a directory.
func NewDirectory(c Content, props *DirectoryProperties) *Directory {
	d := &Directory{Branch: newBranch(c)}
	if props != nil {
		d.props = *props
	}
	return d
}

// ToWire implements Element.
func (d *Directory) ToWire() (*wire.Node, error) {
	semantic, err := lookupOptional(semanticTypes, d.props.SemanticType)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	return d.node(&wire.Directory{
		Name:         optString(d.props.Name),
		Editable:     d.props.Editable,
		SemanticType: semantic,
	})
}

// WsArea keeps its content together across page breaks.
type WsArea struct {
	Branch
}

// NewWsArea creates a whitespace area.
func NewWsArea(c Content) *WsArea {
	return &WsArea{Branch: newBranch(c)}
}

// ToWire implements Element.
func (w *WsArea) ToWire() (*wire.Node, error) {
	return w.node(&wire.WsArea{})
}

// CarryOver is repeated on the next page when a table breaks.
type CarryOver struct {
	Branch
}

// NewCarryOver creates content repeated where a table breaks across pages.
func NewCarryOver(c Content) *CarryOver {
	return &CarryOver{Branch: newBranch(c)}
}

// ToWire implements Element.
func (co *CarryOver) ToWire() (*wire.Node, error) {
	return co.node(&wire.CarryOver{})
}

// AdvancedIllustrationAreaProperties are the optional settings of an advanced illustration area.
type AdvancedIllustrationAreaProperties struct {
	Uuid          string
	Absolute      *bool
	Width, Height measure.Value
	X, Y          measure.Value
	TextFlow      TextFlow
	// Rotation in degrees.
	Rotation *float64
}

// AdvancedIllustrationArea is a freely positioned box that text flows around.
type AdvancedIllustrationArea struct {
	Branch
	props AdvancedIllustrationAreaProperties
}

// NewAdvancedIllustrationArea creates an advanced illustration area.
func NewAdvancedIllustrationArea(c Content, props *AdvancedIllustrationAreaProperties) *AdvancedIllustrationArea {
	a := &AdvancedIllustrationArea{Branch: newBranch(c)}
	if props != nil {
		a.props = *props
	}
	return a
}

// ToWire implements Element.
func (a *AdvancedIllustrationArea) ToWire() (*wire.Node, error) {
	p := a.props
	out := &wire.AdvancedIllustrationArea{
		Uuid:     optString(p.Uuid),
		Absolute: p.Absolute,
		Rotation: p.Rotation,
	}
	var err error
	for _, m := range []struct {
		name string
		in   measure.Value
		out  **wire.Measure
	}{
		{"width", p.Width, &out.Width},
		{"height", p.Height, &out.Height},
		{"x", p.X, &out.X},
		{"y", p.Y, &out.Y},
	} {
		if *m.out, err = measure.ToWire(m.in); err != nil {
			return nil, fmt.Errorf("advancedIllustrationArea: %s: %w", m.name, err)
		}
	}
	if out.TextFlow, err = lookupOptional(textFlows, p.TextFlow); err != nil {
		return nil, fmt.Errorf("advancedIllustrationArea: %w", err)
	}
	return a.node(out)
}

// AdjustHorizontallyProperties are the optional settings of an AdjustHorizontally block.
type AdjustHorizontallyProperties struct {
	MinFontSize measure.Value
	MaxFontSize measure.Value
}

// AdjustHorizontally shrinks or grows the font so its content fits the line.
type AdjustHorizontally struct {
	Branch
	props AdjustHorizontallyProperties
}

// NewAdjustHorizontally creates an AdjustHorizontally block around c.
func NewAdjustHorizontally(c Content, props *AdjustHorizontallyProperties) *AdjustHorizontally {
	a := &AdjustHorizontally{Branch: newBranch(c)}
	if props != nil {
		a.props = *props
	}
	return a
}

// ToWire implements Element.
func (a *AdjustHorizontally) ToWire() (*wire.Node, error) {
	out := &wire.AdjustHorizontally{}
	var err error
	if out.MinFontSize, err = measure.ToWire(a.props.MinFontSize); err != nil {
		return nil, fmt.Errorf("adjustHorizontally: minFontSize: %w", err)
	}
	if out.MaxFontSize, err = measure.ToWire(a.props.MaxFontSize); err != nil {
		return nil, fmt.Errorf("adjustHorizontally: maxFontSize: %w", err)
	}
	return a.node(out)
}

// SubTotalProperties are the optional settings of a subtotal.
type SubTotalProperties struct {
	ApplyImmediate *bool
	Position       SubTotalPosition
	Height         measure.Value
}

// SubTotal is printed where a table breaks across pages.
type SubTotal struct {
	Branch
	props SubTotalProperties
}

// NewSubTotal creates a subtotal.
func NewSubTotal(c Content, props *SubTotalProperties) *SubTotal {
	s := &SubTotal{Branch: newBranch(c)}
	if props != nil {
		s.props = *props
	}
	return s
}

// ToWire implements Element.
func (s *SubTotal) ToWire() (*wire.Node, error) {
	out := &wire.SubTotal{ApplyImmediate: s.props.ApplyImmediate}
	var err error
	if out.Position, err = lookupOptional(subTotalPositions, s.props.Position); err != nil {
		return nil, fmt.Errorf("subTotal: %w", err)
	}
	if out.Height, err = measure.ToWire(s.props.Height); err != nil {
		return nil, fmt.Errorf("subTotal: height: %w", err)
	}
	return s.node(out)
}
