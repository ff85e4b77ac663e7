package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/color"
	"github.com/aretw0/docframe/pkg/style"
	"github.com/aretw0/docframe/pkg/wire"
)

// FormatRef refers to a paragraph format by name.
// *style.ParagraphFormat and FormatName both implement it.
type FormatRef interface {
	Name() string
}

// FormatName refers to a registered paragraph format by its name.
type FormatName string

// Name implements FormatRef.
func (n FormatName) Name() string { return string(n) }

// ParagraphProperties are the optional settings of a paragraph.
type ParagraphProperties struct {
	Format    FormatRef
	Overwrite *style.ParagraphFormat
}

// Paragraph is a block of text in a named paragraph format.
type Paragraph struct {
	Branch
	props ParagraphProperties
}

// NewParagraph creates a paragraph.
func NewParagraph(c Content, props *ParagraphProperties) *Paragraph {
	p := &Paragraph{Branch: newBranch(c)}
	if props != nil {
		p.props = *props
	}
	return p
}

// FormatName returns the name of the referenced format, "" if none.
func (p *Paragraph) FormatName() string {
	if p.props.Format == nil {
		return ""
	}
	return p.props.Format.Name()
}

// ToWire references the format by name only; the format itself is declared
// by the document.
func (p *Paragraph) ToWire() (*wire.Node, error) {
	out := &wire.Paragraph{}
	if name := p.FormatName(); name != "" {
		out.Format = &wire.ParagraphFormat{Name: wire.Box(name)}
	}
	if p.props.Overwrite != nil {
		ow, err := p.props.Overwrite.ToWire()
		if err != nil {
			return nil, fmt.Errorf("paragraph: overwrite: %w", err)
		}
		out.Overwrite = ow
	}
	return p.node(out)
}

// SpanProperties are the optional settings of a span.
type SpanProperties struct {
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	Subscript     *bool
	Superscript   *bool
	Color         *color.Color
}

// Span styles a run of inline content.
type Span struct {
	Branch
	props SpanProperties
}

// NewSpan creates a span.
func NewSpan(c Content, props *SpanProperties) *Span {
	s := &Span{Branch: newBranch(c)}
	if props != nil {
		s.props = *props
	}
	return s
}

// ToWire implements Element.
func (s *Span) ToWire() (*wire.Node, error) {
	p := s.props
	return s.node(&wire.Span{
		Bold:          wire.BoxPtr(p.Bold),
		Italic:        wire.BoxPtr(p.Italic),
		Underline:     wire.BoxPtr(p.Underline),
		Strikethrough: wire.BoxPtr(p.Strikethrough),
		Subscript:     wire.BoxPtr(p.Subscript),
		Superscript:   wire.BoxPtr(p.Superscript),
		Color:         p.Color.ToWire(),
	})
}

// Link makes its content a hyperlink.
type Link struct {
	Branch
	url string
}

// NewLink creates a hyperlink around c.
func NewLink(c Content, url string) *Link {
	return &Link{Branch: newBranch(c), url: url}
}

// ToWire implements Element.
func (l *Link) ToWire() (*wire.Node, error) {
	return l.node(&wire.Link{Url: optString(l.url)})
}
