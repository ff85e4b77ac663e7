package examples

import (
	"testing"

	"github.com/aretw0/docframe/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AllExamplesEncode(t *testing.T) {
	r := Registry()
	require.Equal(t, []string{"paragraph", "simple-text", "table"}, r.Names())

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, r.Description(name))
			doc, err := r.Build(name)
			require.NoError(t, err)
			data, err := doc.Marshal()
			require.NoError(t, err)
			_, err = wire.Unmarshal(data)
			require.NoError(t, err)
		})
	}
}

func TestSimpleText(t *testing.T) {
	doc, err := SimpleText()
	require.NoError(t, err)
	data, err := doc.Marshal()
	require.NoError(t, err)
	out, err := wire.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!This is a simple text document.I'm bold", out.PlainText())
}

func TestParagraph(t *testing.T) {
	doc, err := Paragraph()
	require.NoError(t, err)

	normal, ok := doc.GetFormat("Normal")
	require.True(t, ok)
	assert.True(t, normal.IsDefault())
	bold, ok := doc.GetFormat("bold")
	require.True(t, ok)
	assert.True(t, *bold.Properties().Bold)

	assert.Equal(t, 595.0, doc.PageDefinition().Width().Amount())
	root, err := doc.ToWire()
	require.NoError(t, err)
	last := root.Children[len(root.Children)-1]
	p := last.Variant.(*wire.Paragraph)
	assert.Equal(t, wire.Box("bold"), p.Format.Name)
}

func TestTable(t *testing.T) {
	doc, err := Table()
	require.NoError(t, err)
	root, err := doc.ToWire()
	require.NoError(t, err)

	var cells []*wire.TableCell
	root.Walk(func(n *wire.Node, _ int) bool {
		if c, ok := n.Variant.(*wire.TableCell); ok {
			cells = append(cells, c)
		}
		return true
	})
	require.Len(t, cells, 2)
	assert.Equal(t, 2.5, cells[0].Settings.Border.Top.Weight.Value)
	assert.Equal(t, 0.6, cells[0].Settings.Border.Left.Weight.Value)
	assert.Nil(t, cells[1].Settings.Border)
}
