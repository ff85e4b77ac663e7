package dsl

import (
	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/wire"
)

// TableBuilder provides a fluent API for a table of text cells.
type TableBuilder struct {
	props content.TableProperties
	rows  []content.Element
}

// Width sets the table width.
func (t *TableBuilder) Width(w measure.Value) *TableBuilder {
	t.props.Width = w
	return t
}

// HeaderRow appends a row that is repeated after each page break.
func (t *TableBuilder) HeaderRow(cells ...content.Content) *TableBuilder {
	repeat := 1
	if t.props.RepeatHeader != nil {
		repeat = *t.props.RepeatHeader + 1
	}
	t.props.RepeatHeader = &repeat
	return t.Row(cells...)
}

// Row appends a row with one cell per argument.
func (t *TableBuilder) Row(cells ...content.Content) *TableBuilder {
	row := make([]content.Element, 0, len(cells))
	for _, c := range cells {
		row = append(row, content.NewTableCell(c, nil))
	}
	t.rows = append(t.rows, content.NewTableRow(row, nil))
	return t
}

// Build returns the underlying content.Table.
func (t *TableBuilder) Build() *content.Table {
	props := t.props
	return content.NewTable(t.rows, &props)
}

// ToWire builds the table and serializes it, so a builder can be added as content.
func (t *TableBuilder) ToWire() (*wire.Node, error) {
	return t.Build().ToWire()
}
