/*
Package wire holds the docframe node model exchanged with the rendering engine
and its protobuf binary encoding.

A Node carries exactly one Variant (text, paragraph, table, pDef, ...) plus an
ordered list of child nodes. The Variant set is closed: only the types declared
in this package implement it, mirroring a protobuf oneof.

Fields follow protobuf presence rules as the engine's reference client writes
them: a field is encoded when it is set, even to its zero value, and skipped
when it is nil. Boxed fields wrap a value together with an explicit null flag.

	n := &wire.Node{
		Variant: &wire.Paragraph{Format: &wire.ParagraphFormat{Name: wire.Box("Text")}},
		Children: []*wire.Node{
			{Variant: &wire.Text{Content: "Hello"}},
		},
	}
	data, err := wire.Marshal(n)

Field numbers and enum codes are provisional. They follow the declaration
order of the engine's node types and will be pinned to the engine's .proto
schema once it is published.

Marshal output can be read back in outline form with Unmarshal, which recovers
the node kinds, the tree shape and text content.
*/
package wire
