package style

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/ids"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/wire"
)

// ParagraphFormatProperties configures a ParagraphFormat.
// Nil pointers and empty strings are unset and are left out of the wire form.
type ParagraphFormatProperties struct {
	// Name identifies the format; paragraphs reference it by this name.
	// When empty a unique name is generated.
	Name    string
	Default bool

	Alignment HorizontalAlignment

	Font             *Font
	FontSize         *measure.Absolute
	CharacterWidth   *measure.Absolute
	CharacterSpacing *measure.Absolute
	LineFeed         *measure.Absolute
	Bold             *bool
	Italic           *bool

	IndentionLevel *int
	IndentionWidth *measure.Absolute

	SpaceAbove *measure.Absolute
	SpaceBelow *measure.Absolute
}

// ParagraphFormat is a named, immutable text style.
type ParagraphFormat struct {
	props ParagraphFormatProperties
}

// FormatOption configures NewParagraphFormat.
type FormatOption func(*formatConfig)

type formatConfig struct {
	ids ids.Generator
}

// WithIDGenerator sets the source of generated names.
func WithIDGenerator(g ids.Generator) FormatOption {
	return func(c *formatConfig) {
		c.ids = g
	}
}

// NewParagraphFormat creates a format. Without a name it gets a generated one.
func NewParagraphFormat(props ParagraphFormatProperties, opts ...FormatOption) *ParagraphFormat {
	cfg := formatConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if props.Name == "" {
		props.Name = ids.Or(cfg.ids).NewID()
	}
	return &ParagraphFormat{props: props}
}

// Name returns the format name, or "" for a nil format.
func (f *ParagraphFormat) Name() string {
	if f == nil {
		return ""
	}
	return f.props.Name
}

// IsDefault reports whether this is the default format of the document.
func (f *ParagraphFormat) IsDefault() bool { return f.props.Default }

// Properties returns a copy of the format's properties.
func (f *ParagraphFormat) Properties() ParagraphFormatProperties { return f.props }

// ToWire always emits name and default; every other field only when set.
func (f *ParagraphFormat) ToWire() (*wire.ParagraphFormat, error) {
	p := f.props
	out := &wire.ParagraphFormat{
		Default: wire.Box(p.Default),
		Name:    wire.Box(p.Name),
		Bold:    wire.BoxPtr(p.Bold),
		Italic:  wire.BoxPtr(p.Italic),
	}

	if p.Alignment != "" {
		a, err := p.Alignment.ToWire()
		if err != nil {
			return nil, fmt.Errorf("paragraph format %q: %w", p.Name, err)
		}
		out.Alignment = wire.Box(a)
	}
	if p.Font != nil {
		out.Font = wire.Box(p.Font.ToWire())
	}
	if p.IndentionLevel != nil {
		out.IndentionLevel = wire.Box(int32(*p.IndentionLevel))
	}

	for _, m := range []struct {
		name string
		in   *measure.Absolute
		out  **wire.Boxed[*wire.Measure]
	}{
		{"fontSize", p.FontSize, &out.FontSize},
		{"characterWidth", p.CharacterWidth, &out.CharacterWidth},
		{"characterSpacing", p.CharacterSpacing, &out.CharacterSpacing},
		{"lineFeed", p.LineFeed, &out.LineFeed},
		{"indentionWidth", p.IndentionWidth, &out.IndentionWidth},
		{"spaceAbove", p.SpaceAbove, &out.SpaceAbove},
		{"spaceBelow", p.SpaceBelow, &out.SpaceBelow},
	} {
		boxed, err := measure.Boxed(m.in)
		if err != nil {
			return nil, fmt.Errorf("paragraph format %q: %s: %w", p.Name, m.name, err)
		}
		*m.out = boxed
	}

	return out, nil
}
