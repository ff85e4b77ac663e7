package content

import (
	"testing"

	"github.com/aretw0/docframe/pkg/ids"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageDefinition_Identity(t *testing.T) {
	a := NewPageDefinition(measure.Mm(100), measure.Mm(100))
	b := NewPageDefinition(measure.Mm(100), measure.Mm(100))
	assert.NotEqual(t, a.UUID(), b.UUID())
	_, err := uuid.Parse(a.UUID())
	assert.NoError(t, err)

	seq := ids.NewSequence("page")
	c := NewPageDefinition(nil, nil, WithIDGenerator(seq))
	d := NewPageDefinition(nil, nil, WithIDGenerator(seq))
	assert.Equal(t, "page-1", c.UUID())
	assert.Equal(t, "page-2", d.UUID())
}

func TestPageDefinition_ToWire(t *testing.T) {
	pd := NewPageDefinition(measure.Mm(210), measure.Mm(297), WithIDGenerator(ids.NewSequence("p")))
	n, err := pd.ToWire()
	require.NoError(t, err)

	def := n.Variant.(*wire.PDef)
	assert.Equal(t, "p-1", def.Uuid)
	assert.Equal(t, &wire.Boxed[*wire.Measure]{Value: &wire.Measure{Value: 297, Type: wire.MeasureMM}}, def.PageDepth)
	assert.Equal(t, 210.0, def.PageWidth.Value.Value)

	assert.Equal(t, &wire.ApplyPDef{PDefUuid: "p-1"}, pd.ApplyNode().Variant)
}

func TestPageDefinition_MissingDimensionIsNull(t *testing.T) {
	n, err := NewPageDefinition(measure.Mm(210), nil).ToWire()
	require.NoError(t, err)
	def := n.Variant.(*wire.PDef)
	assert.True(t, def.PageDepth.IsNull)
	assert.Nil(t, def.PageDepth.Value)
	assert.False(t, def.PageWidth.IsNull)
}

func TestPageSingletons(t *testing.T) {
	tests := []struct {
		name          string
		def           *PageDefinition
		width, height float64
	}{
		{"A3", PageA3(), 297, 420},
		{"A4", PageA4(), 210, 297},
		{"A5", PageA5(), 148, 210},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.width, tt.def.Width().Amount())
			assert.Equal(t, tt.height, tt.def.Height().Amount())
			assert.Equal(t, measure.MM, tt.def.Width().Unit())
		})
	}
	assert.Same(t, PageA4(), PageA4())
	assert.NotEqual(t, PageA3().UUID(), PageA4().UUID())
}

func TestColumnDefinition_ToWireNodes(t *testing.T) {
	cd := NewColumnDefinition(ColumnDefinitionProperties{
		Width:            measure.Pt(200),
		Position:         PositionFolio,
		InterColumnSpace: measure.Pt(10),
		PositionOffset:   measure.Pt(50),
	}, WithIDGenerator(ids.NewSequence("col")))

	only, err := cd.ToWireNodes(false)
	require.NoError(t, err)
	require.Len(t, only, 1)

	nodes, err := cd.ToWireNodes(true)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	def := nodes[0].Variant.(*wire.CDef)
	assert.Equal(t, "col-1", def.Uuid)
	assert.Equal(t, wire.PositionFolio, def.ColumnSettings.PositionMode)
	assert.Equal(t, 200.0, def.ColumnSettings.Width.Value.Value)
	assert.Equal(t, 10.0, def.ColumnSettings.InterColumnSpace.Value.Value)
	assert.Equal(t, 50.0, def.ColumnSettings.PositionOffset.Value.Value)

	assert.Equal(t, &wire.ApplyCDef{CDefUuid: def.Uuid}, nodes[1].Variant)
}

func TestColumnDefinition_Invalid(t *testing.T) {
	_, err := NewColumnDefinition(ColumnDefinitionProperties{
		Width:          measure.Pt(200),
		Position:       PositionLeft,
		PositionOffset: measure.Pt(50),
	}).ToWireNodes(true)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "interColumnSpace", verr.Key)

	_, err = NewColumnDefinition(ColumnDefinitionProperties{Position: "middle"}).ToWireNodes(false)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "position", verr.Key)
}

func TestColumnSingletons(t *testing.T) {
	single := ColumnsA4Single().Properties()
	double := ColumnsA4Double().Properties()

	assert.Equal(t, 490.0, single.Width.Amount())
	assert.Equal(t, 230.0, double.Width.Amount())
	for _, p := range []ColumnDefinitionProperties{single, double} {
		assert.Equal(t, PositionLeft, p.Position)
		assert.Equal(t, 70.0, p.PositionOffset.Amount())
		assert.Equal(t, 30.0, p.InterColumnSpace.Amount())
	}
	assert.Same(t, ColumnsA4Single(), ColumnsA4Single())
	assert.NotEqual(t, ColumnsA4Single().UUID(), ColumnsA4Double().UUID())
}
