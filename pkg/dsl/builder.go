package dsl

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/style"
)

// Builder manages the document construction.
type Builder struct {
	page    *content.PageDefinition
	columns *content.ColumnDefinition
	header  *content.Header
	footer  *content.Footer

	formats     map[string]*FormatBuilder
	formatOrder []string

	body []content.Element
	// paragraphs records the format each body paragraph refers to, by body index.
	paragraphs map[int]string
}

// New creates a new document builder.
func New() *Builder {
	return &Builder{
		formats:    make(map[string]*FormatBuilder),
		paragraphs: make(map[int]string),
	}
}

// Page sets the page definition. Defaults to A4.
func (b *Builder) Page(p *content.PageDefinition) *Builder {
	b.page = p
	return b
}

// Columns sets the column definition. Defaults to single-column A4.
func (b *Builder) Columns(c *content.ColumnDefinition) *Builder {
	b.columns = c
	return b
}

// Header sets the default header content.
func (b *Builder) Header(c content.Content, mode content.HeaderFooterMode) *Builder {
	b.header = content.NewHeader(c, &content.HeaderProperties{Mode: mode})
	return b
}

// Footer sets the default footer content.
func (b *Builder) Footer(c content.Content, mode content.HeaderFooterMode) *Builder {
	b.footer = content.NewFooter(c, &content.FooterProperties{Mode: mode})
	return b
}

// Format declares a paragraph format.
// If the format already exists, it returns the existing builder.
func (b *Builder) Format(name string) *FormatBuilder {
	if fb, ok := b.formats[name]; ok {
		return fb
	}
	fb := &FormatBuilder{props: style.ParagraphFormatProperties{Name: name}}
	b.formats[name] = fb
	b.formatOrder = append(b.formatOrder, name)
	return fb
}

// Paragraph appends a paragraph in the named format. An empty name uses
// the engine's default format.
func (b *Builder) Paragraph(format string) *ParagraphBuilder {
	pb := &ParagraphBuilder{}
	b.paragraphs[len(b.body)] = format
	b.body = append(b.body, pb)
	return pb
}

// Table appends a table.
func (b *Builder) Table() *TableBuilder {
	tb := &TableBuilder{}
	b.body = append(b.body, tb)
	return tb
}

// Add appends prebuilt elements to the body.
func (b *Builder) Add(elems ...content.Element) *Builder {
	b.body = append(b.body, elems...)
	return b
}

// Build compiles the builder into a Document. Paragraphs must refer to
// declared formats; with no formats declared, only "Text" is known.
func (b *Builder) Build() (*content.Document, error) {
	known := map[string]bool{}
	formats := make([]*style.ParagraphFormat, 0, len(b.formatOrder))
	for _, name := range b.formatOrder {
		formats = append(formats, b.formats[name].Build())
		known[name] = true
	}
	if len(formats) == 0 {
		known[content.DefaultFormatName] = true
	}

	body := make([]content.Element, 0, len(b.body))
	for i, e := range b.body {
		if name, ok := b.paragraphs[i]; ok && name != "" && !known[name] {
			return nil, fmt.Errorf("failed to build document: paragraph %d: %w",
				i, schema.Invalid("format", name, "not declared"))
		}
		switch e := e.(type) {
		case *ParagraphBuilder:
			body = append(body, e.build(b.paragraphs[i]))
		case *TableBuilder:
			body = append(body, e.Build())
		default:
			body = append(body, e)
		}
	}

	props := &content.DocumentProperties{
		PageDefinition:   b.page,
		ColumnDefinition: b.columns,
		DefaultHeader:    b.header,
		DefaultFooter:    b.footer,
		ParagraphFormats: formats,
	}
	return content.NewDocument(body, props), nil
}
