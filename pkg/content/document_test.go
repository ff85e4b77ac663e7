package content

import (
	"testing"

	"github.com/aretw0/docframe/pkg/ids"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/style"
	"github.com/aretw0/docframe/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(nodes []*wire.Node) []wire.Kind {
	out := make([]wire.Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind()
	}
	return out
}

func TestNewDocument_Defaults(t *testing.T) {
	doc := NewDocument(nil, nil)

	assert.Same(t, PageA4(), doc.PageDefinition())
	assert.Same(t, ColumnsA4Single(), doc.ColumnDefinition())
	require.NotNil(t, doc.DefaultHeader())
	require.NotNil(t, doc.DefaultFooter())

	space := doc.DefaultHeader().Children()[0].(*SpaceVertically).Space()
	assert.Equal(t, 40.0, space.Amount())
	assert.Equal(t, measure.PT, space.Unit())

	text, ok := doc.GetFormat(DefaultFormatName)
	require.True(t, ok)
	assert.True(t, text.IsDefault())
	assert.Equal(t, "Helvetica", text.Properties().Font.Name())
	assert.Equal(t, 12.0, text.Properties().FontSize.Amount())
	assert.Equal(t, 14.0, text.Properties().LineFeed.Amount())
	assert.Len(t, doc.Formats(), 1)
}

func TestDocument_AssemblyOrder(t *testing.T) {
	doc := NewDocument("Hello World", nil)
	root, err := doc.ToWire()
	require.NoError(t, err)

	assert.Nil(t, root.Variant)
	assert.Equal(t, []wire.Kind{
		wire.KindParagraphFormat,
		wire.KindPDef,
		wire.KindApplyPDef,
		wire.KindCDef,
		wire.KindApplyCDef,
		wire.KindHeader,
		wire.KindFooter,
		wire.KindParagraphFormat,
		wire.KindText,
	}, kinds(root.Children))

	pDef := root.Children[1].Variant.(*wire.PDef)
	assert.Equal(t, pDef.Uuid, root.Children[2].Variant.(*wire.ApplyPDef).PDefUuid)
	cDef := root.Children[3].Variant.(*wire.CDef)
	assert.Equal(t, cDef.Uuid, root.Children[4].Variant.(*wire.ApplyCDef).CDefUuid)

	last := root.Children[len(root.Children)-1]
	assert.Equal(t, &wire.Text{Content: "Hello World"}, last.Variant)

	format := root.Children[0].Variant.(*wire.ParagraphFormat)
	assert.Equal(t, wire.Box("Text"), format.Name)
	assert.Equal(t, wire.Box(true), format.Default)
	assert.Equal(t, format, root.Children[7].Variant)
}

func TestDocument_NoHeaderOrFooter(t *testing.T) {
	doc := NewDocument([]any{"a", NewLinebreak(), "b"}, &DocumentProperties{})
	root, err := doc.ToWire()
	require.NoError(t, err)

	assert.Equal(t, []wire.Kind{
		wire.KindParagraphFormat,
		wire.KindPDef, wire.KindApplyPDef,
		wire.KindCDef, wire.KindApplyCDef,
		wire.KindParagraphFormat,
		wire.KindText, wire.KindLinebreak, wire.KindText,
	}, kinds(root.Children))
}

func TestDocument_CustomProperties(t *testing.T) {
	seq := ids.NewSequence("def")
	page := NewPageDefinition(measure.Mm(100), measure.Mm(150), WithIDGenerator(seq))
	cols := NewColumnDefinition(ColumnDefinitionProperties{
		Width:            measure.Pt(100),
		Position:         PositionCenter,
		InterColumnSpace: measure.Pt(5),
		PositionOffset:   measure.Pt(0),
	}, WithIDGenerator(seq))

	body := style.NewParagraphFormat(style.ParagraphFormatProperties{Name: "Body", Default: true})
	head := style.NewParagraphFormat(style.ParagraphFormatProperties{Name: "Heading", Bold: schema.Ptr(true)})

	doc := NewDocument(NewParagraph("x", &ParagraphProperties{Format: head}), &DocumentProperties{
		PageDefinition:   page,
		ColumnDefinition: cols,
		DefaultHeader:    NewHeader("top", &HeaderProperties{Mode: ModeReplace}),
		ParagraphFormats: []*style.ParagraphFormat{body, head},
	})

	_, hasText := doc.GetFormat(DefaultFormatName)
	assert.False(t, hasText)
	assert.Equal(t, []*style.ParagraphFormat{body, head}, doc.Formats())
	assert.Nil(t, doc.DefaultFooter())

	root, err := doc.ToWire()
	require.NoError(t, err)
	assert.Equal(t, []wire.Kind{
		wire.KindParagraphFormat, wire.KindParagraphFormat,
		wire.KindPDef, wire.KindApplyPDef,
		wire.KindCDef, wire.KindApplyCDef,
		wire.KindHeader,
		wire.KindParagraphFormat, wire.KindParagraphFormat,
		wire.KindParagraph,
	}, kinds(root.Children))
	assert.Equal(t, "def-1", root.Children[2].Variant.(*wire.PDef).Uuid)
	assert.Equal(t, "def-2", root.Children[4].Variant.(*wire.CDef).Uuid)
}

func TestDocument_RegisterFormat(t *testing.T) {
	doc := NewDocument(nil, nil)
	quote := style.NewParagraphFormat(style.ParagraphFormatProperties{Name: "Quote"})
	doc.RegisterFormat("Quote", quote)

	replacement := style.NewParagraphFormat(style.ParagraphFormatProperties{Name: "Text", Italic: schema.Ptr(true)})
	doc.RegisterFormat("Text", replacement)
	doc.RegisterFormat("Nothing", nil)

	got, ok := doc.GetFormat("Text")
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, []*style.ParagraphFormat{replacement, quote}, doc.Formats())

	_, ok = doc.GetFormat("Nothing")
	assert.False(t, ok)
}

func TestDocument_ContentMutation(t *testing.T) {
	doc := NewDocument(nil, nil)
	doc.AppendChild(NewText("second"))
	doc.PrependChild(NewText("first"))

	root, err := doc.ToWire()
	require.NoError(t, err)
	n := len(root.Children)
	assert.Equal(t, "first", root.Children[n-2].Variant.(*wire.Text).Content)
	assert.Equal(t, "second", root.Children[n-1].Variant.(*wire.Text).Content)
}

func TestDocument_ErrorsAreWrapped(t *testing.T) {
	doc := NewDocument(NewParagraph(NewImage(ImageProperties{ScaleType: "stretch"}), nil), nil)
	_, err := doc.Marshal()
	require.Error(t, err)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "scaleType", verr.Key)
	assert.Contains(t, err.Error(), "document: child 0: paragraph: child 0: image:")

	bad := NewDocument(nil, &DocumentProperties{ParagraphFormats: []*style.ParagraphFormat{
		style.NewParagraphFormat(style.ParagraphFormatProperties{Name: "Bad", Alignment: "sideways"}),
	}})
	_, err = bad.ToWire()
	assert.True(t, schema.IsValidation(err))
}

func TestDocument_MarshalRoundTripsOutline(t *testing.T) {
	doc := NewDocument(NewParagraph([]any{"Hello", NewLinebreak(), "World"}, nil), nil)
	data, err := doc.Marshal()
	require.NoError(t, err)

	out, err := wire.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, wire.KindNone, out.Kind)
	assert.Equal(t, wire.KindParagraph, out.Children[len(out.Children)-1].Kind)
	assert.Contains(t, out.PlainText(), "Hello\nWorld\n")
}
