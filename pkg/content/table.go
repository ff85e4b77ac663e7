package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/color"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/style"
	"github.com/aretw0/docframe/pkg/wire"
)

// TableProperties are the optional settings of a table.
type TableProperties struct {
	Width measure.Value
	// XOffset defaults to measure.Zero().
	XOffset measure.Value
	// RepeatHeader is the number of leading rows repeated after a page break.
	RepeatHeader *int
}

// Table is a table element.
type Table struct {
	Branch
	props TableProperties
}

// NewTable creates a table.
func NewTable(c Content, props *TableProperties) *Table {
	t := &Table{Branch: newBranch(c)}
	if props != nil {
		t.props = *props
	}
	if t.props.XOffset == nil {
		t.props.XOffset = measure.Zero()
	}
	return t
}

// Properties returns a copy of the table's properties.
func (t *Table) Properties() TableProperties { return t.props }

// ToWire implements Element.
func (t *Table) ToWire() (*wire.Node, error) {
	settings := &wire.TableSettings{
		LeftMeasure:  wire.Box(false),
		RepeatHeader: wire.BoxPtr(optInt32(t.props.RepeatHeader)),
	}
	var err error
	if settings.Width, err = measure.ToWire(t.props.Width); err != nil {
		return nil, fmt.Errorf("table: width: %w", err)
	}
	if settings.XOffset, err = measure.ToWire(t.props.XOffset); err != nil {
		return nil, fmt.Errorf("table: xOffset: %w", err)
	}
	return t.node(&wire.Table{Settings: settings})
}

// TableRowProperties are the optional settings of a table row.
type TableRowProperties struct {
	MinHeight *measure.Absolute
}

// TableRow is a table row element.
type TableRow struct {
	Branch
	props TableRowProperties
}

// NewTableRow creates a table row.
func NewTableRow(c Content, props *TableRowProperties) *TableRow {
	r := &TableRow{Branch: newBranch(c)}
	if props != nil {
		r.props = *props
	}
	return r
}

// ToWire implements Element.
func (r *TableRow) ToWire() (*wire.Node, error) {
	minHeight, err := r.props.MinHeight.ToWire()
	if err != nil {
		return nil, fmt.Errorf("tableRow: minHeight: %w", err)
	}
	return r.node(&wire.TableRow{Settings: &wire.TableRowSettings{MinHeight: minHeight}})
}

// TableCellProperties are the optional settings of a table cell.
type TableCellProperties struct {
	// Alignment defaults to left, VerticalAlignment to top.
	Alignment         style.HorizontalAlignment
	VerticalAlignment style.VerticalAlignment

	BackgroundColor *color.Color
	Border          *style.SideBorders
	Margin          *measure.SideMeasures
	Padding         *measure.SideMeasures
	Width           measure.Value
	// Rotation in degrees.
	Rotation               *float64
	DefaultParagraphFormat string
}

// TableCell is a table cell element.
type TableCell struct {
	Branch
	props TableCellProperties
}

// NewTableCell creates a table cell.
func NewTableCell(c Content, props *TableCellProperties) *TableCell {
	cell := &TableCell{Branch: newBranch(c)}
	if props != nil {
		cell.props = *props
	}
	return cell
}

// ToWire always emits both alignments.
func (c *TableCell) ToWire() (*wire.Node, error) {
	p := c.props

	align := p.Alignment
	if align == "" {
		align = style.AlignLeft
	}
	h, err := align.ToWire()
	if err != nil {
		return nil, fmt.Errorf("tableCell: %w", err)
	}
	valign := p.VerticalAlignment
	if valign == "" {
		valign = style.AlignTop
	}
	v, err := valign.ToWire()
	if err != nil {
		return nil, fmt.Errorf("tableCell: %w", err)
	}

	settings := &wire.TableCellSettings{
		Align:           wire.Box(h),
		Valign:          wire.Box(v),
		BackgroundColor: p.BackgroundColor.ToWire(),
		Rotation:        wire.BoxPtr(p.Rotation),
	}
	if p.DefaultParagraphFormat != "" {
		settings.DefaultParagraphFormat = wire.Box(p.DefaultParagraphFormat)
	}
	if settings.Border, err = p.Border.ToWire(); err != nil {
		return nil, fmt.Errorf("tableCell: border: %w", err)
	}
	if settings.Margin, err = p.Margin.ToWire(); err != nil {
		return nil, fmt.Errorf("tableCell: margin: %w", err)
	}
	if settings.Padding, err = p.Padding.ToWire(); err != nil {
		return nil, fmt.Errorf("tableCell: padding: %w", err)
	}
	if settings.Width, err = measure.ToWire(p.Width); err != nil {
		return nil, fmt.Errorf("tableCell: width: %w", err)
	}

	return c.node(&wire.TableCell{Settings: settings})
}

// TableContentGroup groups rows that belong together.
type TableContentGroup struct {
	Branch
	uuid string
}

// NewTableContentGroup groups rows. An empty uuid is left out.
func NewTableContentGroup(c Content, uuid string) *TableContentGroup {
	return &TableContentGroup{Branch: newBranch(c), uuid: uuid}
}

// ToWire implements Element.
func (g *TableContentGroup) ToWire() (*wire.Node, error) {
	return g.node(&wire.TableContentGroup{Uuid: optString(g.uuid)})
}
