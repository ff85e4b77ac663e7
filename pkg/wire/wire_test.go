package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestMarshal_TextNode(t *testing.T) {
	data, err := Marshal(&Node{Variant: &Text{Content: "Hi"}})
	require.NoError(t, err)

	// field 2 (text), length 4: field 1 (content) "Hi"
	assert.Equal(t, []byte{0x12, 0x04, 0x0a, 0x02, 'H', 'i'}, data)
}

func TestMarshal_RootChildren(t *testing.T) {
	root := &Node{Children: []*Node{
		{Variant: &Text{Content: "a"}},
		{Variant: &Linebreak{}},
	}}
	data, err := Marshal(root)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x0a, 0x05, 0x12, 0x03, 0x0a, 0x01, 'a', // child 1
		0x0a, 0x02, 0x1a, 0x00, // child 2, empty linebreak
	}, data)
}

func TestMarshal_EmptyVariantStillPresent(t *testing.T) {
	data, err := Marshal(&Node{Variant: &Span{}})
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(FieldNumber(KindSpan)<<3 | 2), 0x00}, data)
}

func TestMarshal_NilNodes(t *testing.T) {
	_, err := Marshal(nil)
	assert.ErrorIs(t, err, ErrNilNode)

	_, err = Marshal(&Node{Children: []*Node{nil}})
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestBoxed_Encoding(t *testing.T) {
	assert.Equal(t, []byte{0x08, 0x00, 0x10, 0x01}, Box(true).appendFields(nil))
	assert.Equal(t, []byte{0x08, 0x00, 0x12, 0x01, 'x'}, Box("x").appendFields(nil))

	// Null with no value carries only the flag.
	assert.Equal(t, []byte{0x08, 0x01}, Null[*Measure]().appendFields(nil))

	// Negative int32 is sign-extended to ten varint bytes.
	neg := Box(int32(-1)).appendFields(nil)
	assert.Len(t, neg, 2+1+10)
}

func TestBoxPtr(t *testing.T) {
	assert.Nil(t, BoxPtr[bool](nil))

	v := false
	boxed := BoxPtr(&v)
	require.NotNil(t, boxed)
	assert.False(t, boxed.IsNull)
	assert.False(t, boxed.Value)
}

func TestMeasure_Encoding(t *testing.T) {
	got := (&Measure{Value: 12, Type: MeasureMM}).appendFields(nil)

	want := protowire.AppendTag(nil, 1, protowire.Fixed64Type)
	want = protowire.AppendFixed64(want, math.Float64bits(12))
	want = append(want, 0x10, byte(MeasureMM))
	assert.Equal(t, want, got)
}

func TestColor_EncodesOnlyActiveChannels(t *testing.T) {
	rgb := (&Color{Type: ColorRGB, R: 255, G: 0, B: 64}).appendFields(nil)
	assert.Equal(t, []byte{0x08, 0x00, 0x10, 0xff, 0x01, 0x18, 0x00, 0x20, 0x40}, rgb)

	cmyk := (&Color{Type: ColorCMYK, K: 100}).appendFields(nil)
	assert.Equal(t, []byte{0x08, 0x01, 0x28, 0x00, 0x30, 0x00, 0x38, 0x00, 0x40, 0x64}, cmyk)
}

func TestOptionalScalarsOmittedWhenNil(t *testing.T) {
	assert.Empty(t, (&Condition{}).appendFields(nil))
	assert.Empty(t, (&Image{}).appendFields(nil))
	assert.Empty(t, (&TableCellSettings{}).appendFields(nil))

	f := false
	// Explicit false is written.
	assert.Equal(t, []byte{0x18, 0x00}, (&Condition{Result: &f}).appendFields(nil))
}

func TestTag_RepeatedParams(t *testing.T) {
	got := (&Tag{Name: "t", Params: []string{"a", "b"}}).appendFields(nil)
	assert.Equal(t, []byte{0x0a, 0x01, 't', 0x1a, 0x01, 'a', 0x1a, 0x01, 'b'}, got)
}

func TestFieldNumbers_Unique(t *testing.T) {
	seen := map[protowire.Number]Kind{}
	for _, k := range kindFields {
		num := FieldNumber(k)
		require.NotZero(t, num, k)
		require.NotEqual(t, childrenField, num)
		_, dup := seen[num]
		require.False(t, dup, "duplicate field for %s", k)
		seen[num] = k
		assert.Equal(t, k, kindOf(num))
	}
	assert.Equal(t, protowire.Number(0), FieldNumber(KindNone))
	assert.Equal(t, KindNone, kindOf(99))
}

func TestFieldNumbers_Layout(t *testing.T) {
	assert.Equal(t, protowire.Number(2), FieldNumber(KindText))
	assert.Equal(t, protowire.Number(6), FieldNumber(KindParagraph))
	assert.Equal(t, protowire.Number(39), FieldNumber(KindTableContentGroup))
	assert.Equal(t, KindTableContentGroup, kindOf(39))
	assert.Equal(t, KindNone, kindOf(childrenField))
	assert.Equal(t, KindNone, kindOf(40))
}

func TestUnmarshal_Outline(t *testing.T) {
	root := &Node{Children: []*Node{
		{Variant: &ParagraphFormat{Name: Box("Text"), Default: Box(true)}},
		{Variant: &Header{}, Children: []*Node{{Variant: &Text{Content: "head"}}}},
		{Variant: &Paragraph{}, Children: []*Node{
			{Variant: &Text{Content: "Hello"}},
			{Variant: &Linebreak{}},
			{Variant: &Span{Bold: Box(true)}, Children: []*Node{{Variant: &Text{Content: "World"}}}},
		}},
	}}
	data, err := Marshal(root)
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, KindNone, out.Kind)
	require.Len(t, out.Children, 3)
	assert.Equal(t, KindParagraphFormat, out.Children[0].Kind)
	assert.Equal(t, KindHeader, out.Children[1].Kind)
	assert.Equal(t, KindParagraph, out.Children[2].Kind)
	assert.Equal(t, "Hello", out.Children[2].Children[0].Text)
	assert.Equal(t, 9, out.Count())
	assert.Equal(t, "Hello\nWorld\n", out.PlainText())
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := Unmarshal([]byte{0x0a, 0x05, 0x01})
	assert.Error(t, err)
}

func TestNode_Walk(t *testing.T) {
	root := &Node{Children: []*Node{
		{Variant: &Table{}, Children: []*Node{
			{Variant: &TableRow{}, Children: []*Node{{Variant: &TableCell{}}}},
		}},
		{Variant: &Text{Content: "after"}},
	}}

	var kinds []Kind
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		depths = append(depths, depth)
		return n.Kind() != KindTableRow
	})

	assert.Equal(t, []Kind{KindNone, KindTable, KindTableRow, KindText}, kinds)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}
