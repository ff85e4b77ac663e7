// Package examples holds the sample documents shipped with the CLI.
package examples

import (
	"github.com/aretw0/docframe/pkg/color"
	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/dsl"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/registry"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/style"
)

// Registry returns a registry holding every example.
func Registry() *registry.Registry {
	r := registry.New()
	r.Register("simple-text", "Two pages of plain text with a bold span", SimpleText)
	r.Register("paragraph", "Custom paragraph formats, page size and centered column", Paragraph)
	r.Register("table", "A bordered table after a page break", Table)
	return r
}

// SimpleText uses the document defaults.
func SimpleText() (*content.Document, error) {
	return content.NewDocument([]any{
		"Hello World!",
		content.NewPagebreak(),
		"This is a simple text document.",
		content.NewSpan("I'm bold", &content.SpanProperties{Bold: schema.Ptr(true)}),
	}, nil), nil
}

// Paragraph declares its own formats and layout.
func Paragraph() (*content.Document, error) {
	b := dsl.New().
		Page(content.NewPageDefinition(measure.Pt(595), measure.Pt(842))).
		Columns(content.NewColumnDefinition(content.ColumnDefinitionProperties{
			Position:         content.PositionCenter,
			InterColumnSpace: measure.Pt(0),
			PositionOffset:   measure.Pt(70),
			Width:            measure.Pt(490),
		}))

	b.Format("Normal").
		Font(style.Helvetica().Name()).
		Size(measure.Pt(10), measure.Pt(12)).
		Indent(measure.Pt(15)).
		Default()
	b.Format("bold").
		Font(style.Helvetica().Name()).
		Size(measure.Pt(10), measure.Pt(12)).
		Indent(measure.Pt(15)).
		Bold()

	b.Add(content.NewText("Hello "))
	b.Paragraph("bold").Text("I'm in a bold paragraph")

	return b.Build()
}

// Table puts a two-cell table on the second page; the first cell has a
// heavy top border.
func Table() (*content.Document, error) {
	thin := measure.Pt(0.6)
	thick := measure.Pt(2.5)

	borders := &style.SideBorders{
		Top:    style.NewBorder(thick, color.Black()),
		Right:  style.NewBorder(thin, color.Black()),
		Bottom: style.NewBorder(thin, color.Black()),
		Left:   style.NewBorder(thin, color.Black()),
	}

	return content.NewDocument([]any{
		"On the next page is a wonderful table",
		content.NewPagebreak(),
		content.NewTable(
			content.NewTableRow([]content.Element{
				content.NewTableCell("Hello", &content.TableCellProperties{Border: borders}),
				content.NewTableCell("World", nil),
			}, nil),
			nil,
		),
	}, nil), nil
}
