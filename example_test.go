package docframe_test

import (
	"context"
	"fmt"
	"log"
	"net/http/httptest"

	"github.com/aretw0/docframe"
	"github.com/aretw0/docframe/internal/renderstub"
	"github.com/aretw0/docframe/pkg/connection"
	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/dsl"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/output"
	"github.com/aretw0/docframe/pkg/wire"
)

// ExampleEncode encodes plain text and reads it back from the wire form.
func ExampleEncode() {
	data, err := docframe.Encode("Hello World")
	if err != nil {
		log.Fatal(err)
	}

	outline, err := wire.Unmarshal(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outline.PlainText())
	// Output: Hello World
}

// Example_convert renders a document on a local stand-in engine.
func Example_convert() {
	engine := httptest.NewServer(renderstub.New().Handler())
	defer engine.Close()

	b := dsl.New()
	b.Format("Heading").Size(measure.Pt(18), measure.Pt(22)).Bold().Default()
	b.Paragraph("Heading").Text("Quarterly report")
	b.Add(content.NewText("All figures in EUR."))
	doc, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	client := connection.New(engine.URL)
	res, err := client.Convert(context.Background(), doc, output.Text, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(res.Data))
	// Output:
	// Quarterly report
	// All figures in EUR.
}
