// Package output describes the output formats the rendering engine produces
// and the parameters each accepts.
package output

import (
	"github.com/aretw0/docframe/pkg/schema"
)

// Format selects the rendered output.
type Format string

const (
	PDF  Format = "pdf"
	PNG  Format = "png"
	JPEG Format = "jpeg"
	HTML Format = "html"
	PS   Format = "ps"
	Text Format = "text"
)

type formatInfo struct {
	ext         string
	contentType string
	params      schema.Schema
}

var formats = map[Format]formatInfo{
	PDF:  {".pdf", "application/pdf", nil},
	PNG:  {".png", "image/png", schema.Schema{"width": schema.Positive(schema.Int()), "height": schema.Positive(schema.Int()), "dpi": schema.Positive(schema.Int())}},
	JPEG: {".jpg", "image/jpeg", nil},
	HTML: {".html", "text/html", nil},
	PS:   {".ps", "application/postscript", nil},
	Text: {".txt", "text/plain", nil},
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{PDF, PNG, JPEG, HTML, PS, Text}
}

// Parse validates a format name.
func Parse(s string) (Format, error) {
	f := Format(s)
	if _, ok := formats[f]; !ok {
		return "", schema.Invalid("format", s, "unknown output format")
	}
	return f, nil
}

// Extension returns the conventional file extension, with the dot.
func (f Format) Extension() string { return formats[f].ext }

// ContentType returns the media type the engine answers with.
func (f Format) ContentType() string { return formats[f].contentType }

// Params are extra per-format options sent alongside the format.
type Params map[string]any

// Validate checks p against the parameters f accepts. Formats other than
// PNG accept no parameters.
func (f Format) Validate(p Params) error {
	info, ok := formats[f]
	if !ok {
		return schema.Invalid("format", string(f), "unknown output format")
	}
	return schema.ValidatePresent(info.params, p)
}

// PNGParams overrides the raster size of PNG output. Nil fields keep the
// engine's defaults: the page size and 300 dpi.
type PNGParams struct {
	Width  *int
	Height *int
	DPI    *int
}

// Params converts the set fields to Params.
func (p PNGParams) Params() Params {
	out := Params{}
	if p.Width != nil {
		out["width"] = *p.Width
	}
	if p.Height != nil {
		out["height"] = *p.Height
	}
	if p.DPI != nil {
		out["dpi"] = *p.DPI
	}
	return out
}
