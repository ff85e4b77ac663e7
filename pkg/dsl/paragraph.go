package dsl

import (
	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// ParagraphBuilder provides a fluent API for the inline content of a paragraph.
type ParagraphBuilder struct {
	inline []content.Element
}

// Text appends plain text.
func (p *ParagraphBuilder) Text(s string) *ParagraphBuilder {
	p.inline = append(p.inline, content.NewText(s))
	return p
}

// Bold appends bold text.
func (p *ParagraphBuilder) Bold(s string) *ParagraphBuilder {
	return p.Span(s, content.SpanProperties{Bold: schema.Ptr(true)})
}

// Italic appends italic text.
func (p *ParagraphBuilder) Italic(s string) *ParagraphBuilder {
	return p.Span(s, content.SpanProperties{Italic: schema.Ptr(true)})
}

// Span appends styled text.
func (p *ParagraphBuilder) Span(s string, props content.SpanProperties) *ParagraphBuilder {
	p.inline = append(p.inline, content.NewSpan(s, &props))
	return p
}

// Link appends a hyperlink.
func (p *ParagraphBuilder) Link(text, url string) *ParagraphBuilder {
	p.inline = append(p.inline, content.NewLink(text, url))
	return p
}

// Linebreak forces a new line.
func (p *ParagraphBuilder) Linebreak() *ParagraphBuilder {
	p.inline = append(p.inline, content.NewLinebreak())
	return p
}

// Variable appends a value the engine resolves from a data path.
func (p *ParagraphBuilder) Variable(path string) *ParagraphBuilder {
	p.inline = append(p.inline, content.NewVariable(content.VariableProperties{Path: path}))
	return p
}

// PageNumber appends the current page number.
func (p *ParagraphBuilder) PageNumber() *ParagraphBuilder {
	p.inline = append(p.inline, content.NewVariable(content.VariableProperties{SpecialType: content.SpecialCurPage}))
	return p
}

func (p *ParagraphBuilder) build(format string) *content.Paragraph {
	var props *content.ParagraphProperties
	if format != "" {
		props = &content.ParagraphProperties{Format: content.FormatName(format)}
	}
	return content.NewParagraph(p.inline, props)
}

// ToWire lets a ParagraphBuilder stand in the body until Build replaces it.
func (p *ParagraphBuilder) ToWire() (*wire.Node, error) {
	return p.build("").ToWire()
}
