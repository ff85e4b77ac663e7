/*
Package docframe builds documents for the docframe rendering engine and ships them over HTTP.

A document is a tree of elements: text, spans, paragraphs, tables, images, barcodes and layout
declarations. The tree is encoded in the engine's binary wire format and posted to the engine,
which answers with the rendered file (PDF, PNG, JPEG, HTML, PostScript or plain text).

# Layout

  - pkg/measure, pkg/color, pkg/style: value types and styles.
  - pkg/content: the element tree and its wire encoding.
  - pkg/dsl: a fluent builder for the common case of formatted paragraphs.
  - pkg/output: output formats and their parameters.
  - pkg/connection: the HTTP client talking to the engine.

# Usage

	doc, err := dsl.New().
		Add(content.NewText("Hello World")).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	client := connection.New("https://engine.example.com", connection.WithToken(token))
	res, err := client.ConvertToPDF(ctx, doc)
	if err != nil {
		log.Fatal(err)
	}
	os.WriteFile("hello.pdf", res.Data, 0o644)

The docframe command wraps the same flow for the bundled example documents and can serve a
local stand-in engine for trying things out.
*/
package docframe
