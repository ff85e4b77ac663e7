/*
Package content is the document tree: leaf elements (Text, Image, Barcode,
Rule, ...), branch elements that own ordered children (Paragraph, Table,
Section, Loop, ...), page and column definitions, and the Document root that
assembles everything into a single wire node.

Branch constructors take Content, which may be a string, an Element, or
slices of them nested to any depth; strings become Text leaves and nesting is
flattened in order:

	p := content.NewParagraph([]any{"Hello, ", content.NewSpan("world", &content.SpanProperties{
		Bold: schema.Ptr(true),
	})}, &content.ParagraphProperties{Format: content.FormatName("Text")})

	doc := content.NewDocument(p, nil)
	data, err := doc.Marshal()

Optional properties are pointers or empty symbols; unset properties are left
out of the wire form. Symbolic values (rule styles, header modes, ...) are
checked when the tree is serialized and unknown symbols fail with a
*schema.ValidationError.
*/
package content
