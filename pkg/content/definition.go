package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/ids"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// Option configures constructors that generate identities.
type Option func(*options)

type options struct {
	ids ids.Generator
}

// WithIDGenerator sets the source of generated uuids.
func WithIDGenerator(g ids.Generator) Option {
	return func(o *options) {
		o.ids = g
	}
}

func newID(opts []Option) string {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return ids.Or(o.ids).NewID()
}

// PageDefinition is a page size with a stable identity.
// A nil dimension leaves that axis unconstrained.
type PageDefinition struct {
	width  *measure.Absolute
	height *measure.Absolute
	uuid   string
}

// NewPageDefinition declares a page size with a fresh uuid. A nil dimension is sent as null.
func NewPageDefinition(width, height *measure.Absolute, opts ...Option) *PageDefinition {
	return &PageDefinition{width: width, height: height, uuid: newID(opts)}
}

var (
	pageA3 = NewPageDefinition(measure.Mm(297), measure.Mm(420))
	pageA4 = NewPageDefinition(measure.Mm(210), measure.Mm(297))
	pageA5 = NewPageDefinition(measure.Mm(148), measure.Mm(210))
)

// PageA3 returns the shared A3 definition (297 x 420 mm).
func PageA3() *PageDefinition { return pageA3 }

// PageA4 returns the shared A4 definition (210 x 297 mm).
func PageA4() *PageDefinition { return pageA4 }

// PageA5 returns the shared A5 definition (148 x 210 mm).
func PageA5() *PageDefinition { return pageA5 }

// UUID identifies the definition in applyPDef nodes.
func (d *PageDefinition) UUID() string { return d.uuid }

// Width returns the page width, nil if unconstrained.
func (d *PageDefinition) Width() *measure.Absolute { return d.width }

// Height returns the page height, nil if unconstrained.
func (d *PageDefinition) Height() *measure.Absolute { return d.height }

func boxedOrNull(m *measure.Absolute) (*wire.Boxed[*wire.Measure], error) {
	if m == nil {
		return wire.Null[*wire.Measure](), nil
	}
	return measure.Boxed(m)
}

// ToWire emits the pDef node. Absent dimensions are boxed as null.
func (d *PageDefinition) ToWire() (*wire.Node, error) {
	depth, err := boxedOrNull(d.height)
	if err != nil {
		return nil, fmt.Errorf("pDef: height: %w", err)
	}
	width, err := boxedOrNull(d.width)
	if err != nil {
		return nil, fmt.Errorf("pDef: width: %w", err)
	}
	return &wire.Node{Variant: &wire.PDef{PageDepth: depth, PageWidth: width, Uuid: d.uuid}}, nil
}

// ApplyNode activates the definition at the current position.
func (d *PageDefinition) ApplyNode() *wire.Node {
	return &wire.Node{Variant: &wire.ApplyPDef{PDefUuid: d.uuid}}
}

// ColumnDefinitionProperties describe one column layout. InterColumnSpace is required.
type ColumnDefinitionProperties struct {
	Width            *measure.Absolute
	Position         ColumnPosition
	InterColumnSpace *measure.Absolute
	PositionOffset   *measure.Absolute
}

// ColumnDefinition is a column layout with a stable identity.
type ColumnDefinition struct {
	props ColumnDefinitionProperties
	uuid  string
}

// NewColumnDefinition declares a column layout with a fresh uuid.
func NewColumnDefinition(props ColumnDefinitionProperties, opts ...Option) *ColumnDefinition {
	return &ColumnDefinition{props: props, uuid: newID(opts)}
}

var (
	columnsA4Single = NewColumnDefinition(ColumnDefinitionProperties{
		Width:            measure.Pt(490),
		Position:         PositionLeft,
		PositionOffset:   measure.Pt(70),
		InterColumnSpace: measure.Pt(30),
	})
	columnsA4Double = NewColumnDefinition(ColumnDefinitionProperties{
		Width:            measure.Pt(230),
		Position:         PositionLeft,
		PositionOffset:   measure.Pt(70),
		InterColumnSpace: measure.Pt(30),
	})
)

// ColumnsA4Single is the shared one-column A4 layout.
func ColumnsA4Single() *ColumnDefinition { return columnsA4Single }

// ColumnsA4Double is the shared two-column A4 layout.
func ColumnsA4Double() *ColumnDefinition { return columnsA4Double }

// UUID identifies the definition in applyCDef nodes and sections.
func (d *ColumnDefinition) UUID() string { return d.uuid }

// Properties returns a copy of the definition's properties.
func (d *ColumnDefinition) Properties() ColumnDefinitionProperties { return d.props }

// ToWireNodes emits the cDef node, followed by an applyCDef node referencing
// it when applyImmediately is set.
func (d *ColumnDefinition) ToWireNodes(applyImmediately bool) ([]*wire.Node, error) {
	p := d.props
	position, err := columnPositions.Lookup(p.Position)
	if err != nil {
		return nil, fmt.Errorf("cDef: %w", err)
	}

	settings := &wire.ColumnSettings{PositionMode: position}
	for _, m := range []struct {
		name string
		in   *measure.Absolute
		out  **wire.Boxed[*wire.Measure]
	}{
		{"width", p.Width, &settings.Width},
		{"positionOffset", p.PositionOffset, &settings.PositionOffset},
		{"interColumnSpace", p.InterColumnSpace, &settings.InterColumnSpace},
	} {
		if m.in == nil {
			return nil, fmt.Errorf("cDef: %w", schema.Invalid(m.name, nil, "required"))
		}
		if *m.out, err = measure.Boxed(m.in); err != nil {
			return nil, fmt.Errorf("cDef: %s: %w", m.name, err)
		}
	}

	nodes := []*wire.Node{{Variant: &wire.CDef{Uuid: d.uuid, ColumnSettings: settings}}}
	if applyImmediately {
		nodes = append(nodes, &wire.Node{Variant: &wire.ApplyCDef{CDefUuid: d.uuid}})
	}
	return nodes, nil
}
