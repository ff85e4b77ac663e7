/*
Package dsl provides a fluent builder for constructing documents in Go code.

It sits on top of package content and covers the common cases: declared
paragraph formats, paragraphs of styled text and simple tables. Anything
else can be added as a prebuilt element.

Example usage:

	b := dsl.New()

	b.Format("Heading").
		Font("Helvetica").
		Size(measure.Pt(18), measure.Pt(22)).
		Bold()
	b.Format("Body").Default()

	b.Paragraph("Heading").Text("Quarterly report")
	b.Paragraph("Body").
		Text("Revenue grew by ").
		Bold("12%").
		Text(" this quarter.")

	b.Table().
		HeaderRow("Region", "Revenue").
		Row("North", "1.2M")

	doc, err := b.Build()
	if err != nil {
		return err
	}
	data, err := doc.Marshal()
*/
package dsl
