package style

import (
	"testing"

	"github.com/aretw0/docframe/pkg/color"
	"github.com/aretw0/docframe/pkg/ids"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignment_ToWire(t *testing.T) {
	h, err := AlignFullJustify.ToWire()
	require.NoError(t, err)
	assert.Equal(t, wire.AlignFullJustify, h)

	v, err := AlignMiddle.ToWire()
	require.NoError(t, err)
	assert.Equal(t, wire.VAlignMiddle, v)

	_, err = HorizontalAlignment("diagonal").ToWire()
	assert.True(t, schema.IsValidation(err))
	assert.Contains(t, err.Error(), "diagonal")

	_, err = VerticalAlignment("").ToWire()
	assert.True(t, schema.IsValidation(err))
}

func TestReferencePoint(t *testing.T) {
	tests := map[ReferencePoint]wire.ReferencePoint{
		TopLeft:     wire.RefPointTopLeft,
		TopRight:    wire.RefPointTopRight,
		Center:      wire.RefPointCenter,
		BottomLeft:  wire.RefPointBottomLeft,
		BottomRight: wire.RefPointBottomRight,
	}
	for sym, want := range tests {
		got, err := sym.ToWire()
		require.NoError(t, err)
		assert.Equal(t, want, got, sym)
	}

	_, err := ReferencePoint("middle-left").ToWire()
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "referencePoint", verr.Key)

	opt, err := ReferencePoint("").ToWireOptional()
	assert.NoError(t, err)
	assert.Nil(t, opt)
}

func TestSideBorders(t *testing.T) {
	b := NewBorder(measure.Pt(1), color.Black())
	got, err := AllBorders(b).ToWire()
	require.NoError(t, err)

	for _, side := range []*wire.Border{got.Top, got.Right, got.Bottom, got.Left} {
		require.NotNil(t, side)
		assert.Equal(t, 1.0, side.Weight.Value)
		assert.Equal(t, wire.ColorCMYK, side.Color.Type)
	}

	partial, err := (&SideBorders{Bottom: b}).ToWire()
	require.NoError(t, err)
	assert.Nil(t, partial.Top)
	assert.NotNil(t, partial.Bottom)
}

func TestFont(t *testing.T) {
	assert.Equal(t, &wire.Font{Name: "helvetica"}, Helvetica().ToWire())
	assert.Same(t, Helvetica(), Helvetica())
	assert.Equal(t, "Courier", NewFont("Courier").Name())
}

func TestParagraphFormat_GeneratedNames(t *testing.T) {
	a := NewParagraphFormat(ParagraphFormatProperties{})
	b := NewParagraphFormat(ParagraphFormatProperties{})
	assert.NotEmpty(t, a.Name())
	assert.NotEqual(t, a.Name(), b.Name())

	seq := ids.NewSequence("fmt")
	c := NewParagraphFormat(ParagraphFormatProperties{}, WithIDGenerator(seq))
	assert.Equal(t, "fmt-1", c.Name())

	named := NewParagraphFormat(ParagraphFormatProperties{Name: "Heading"}, WithIDGenerator(seq))
	assert.Equal(t, "Heading", named.Name())
}

func TestParagraphFormat_MinimalWire(t *testing.T) {
	f := NewParagraphFormat(ParagraphFormatProperties{Name: "Plain"})
	got, err := f.ToWire()
	require.NoError(t, err)

	assert.Equal(t, &wire.ParagraphFormat{
		Default: wire.Box(false),
		Name:    wire.Box("Plain"),
	}, got)
}

func TestParagraphFormat_FullWire(t *testing.T) {
	level := 2
	f := NewParagraphFormat(ParagraphFormatProperties{
		Name:           "Text",
		Default:        true,
		Alignment:      AlignJustify,
		Font:           Helvetica(),
		FontSize:       measure.Pt(12),
		LineFeed:       measure.Pt(14),
		Bold:           schema.Ptr(false),
		IndentionLevel: &level,
		IndentionWidth: measure.Pt(15),
		SpaceBelow:     measure.Mm(3),
	})
	got, err := f.ToWire()
	require.NoError(t, err)

	assert.Equal(t, wire.Box(true), got.Default)
	assert.Equal(t, wire.Box(wire.AlignJustify), got.Alignment)
	assert.Equal(t, "helvetica", got.Font.Value.Name)
	assert.Equal(t, 12.0, got.FontSize.Value.Value)
	assert.Equal(t, 14.0, got.LineFeed.Value.Value)
	assert.Equal(t, wire.Box(false), got.Bold)
	assert.Nil(t, got.Italic)
	assert.Equal(t, wire.Box(int32(2)), got.IndentionLevel)
	assert.Equal(t, wire.MeasureMM, got.SpaceBelow.Value.Type)
	assert.Nil(t, got.SpaceAbove)
	assert.Nil(t, got.CharacterWidth)
}

func TestParagraphFormat_InvalidAlignment(t *testing.T) {
	f := NewParagraphFormat(ParagraphFormatProperties{Name: "Bad", Alignment: "sideways"})
	_, err := f.ToWire()
	require.Error(t, err)
	assert.True(t, schema.IsValidation(err))
	assert.Contains(t, err.Error(), `paragraph format "Bad"`)
}
