package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// Text is a run of plain text.
type Text struct {
	content string
}

// NewText creates a text leaf.
func NewText(s string) *Text {
	return &Text{content: s}
}

// Content returns the text.
func (t *Text) Content() string { return t.content }

// ToWire implements Element.
func (t *Text) ToWire() (*wire.Node, error) {
	return &wire.Node{Variant: &wire.Text{Content: t.content}}, nil
}

// Linebreak forces a new line inside a paragraph.
type Linebreak struct{}

// NewLinebreak creates a line break.
func NewLinebreak() *Linebreak { return &Linebreak{} }

// ToWire implements Element.
func (*Linebreak) ToWire() (*wire.Node, error) {
	return &wire.Node{Variant: &wire.Linebreak{}}, nil
}

// Pagebreak starts a new page.
type Pagebreak struct{}

// NewPagebreak creates a page break, sent as a newPage node.
func NewPagebreak() *Pagebreak { return &Pagebreak{} }

// ToWire implements Element.
func (*Pagebreak) ToWire() (*wire.Node, error) {
	return &wire.Node{Variant: &wire.NewPage{}}, nil
}

// SpaceVertically inserts a fixed vertical gap.
type SpaceVertically struct {
	space *measure.Absolute
}

// NewSpaceVertically creates fixed vertical space.
func NewSpaceVertically(space *measure.Absolute) *SpaceVertically {
	return &SpaceVertically{space: space}
}

// Space returns the height of the gap.
func (s *SpaceVertically) Space() *measure.Absolute { return s.space }

// ToWire implements Element.
func (s *SpaceVertically) ToWire() (*wire.Node, error) {
	if s.space == nil {
		return nil, schema.Invalid("space", nil, "required")
	}
	m, err := s.space.ToWire()
	if err != nil {
		return nil, fmt.Errorf("spaceVertically: %w", err)
	}
	return &wire.Node{Variant: &wire.SpaceVertically{Space: m}}, nil
}

// Formatted passes pre-formatted markup through to the engine.
type Formatted struct {
	doctype *string
	html    *string
}

// NewFormatted creates markup in the engine's own doctype format.
func NewFormatted(doctype string) *Formatted {
	return &Formatted{doctype: &doctype}
}

// NewHTML creates HTML markup.
func NewHTML(html string) *Formatted {
	return &Formatted{html: &html}
}

// WithHTML returns a copy that also carries HTML markup.
func (f *Formatted) WithHTML(html string) *Formatted {
	cp := *f
	cp.html = &html
	return &cp
}

// ToWire implements Element.
func (f *Formatted) ToWire() (*wire.Node, error) {
	return &wire.Node{Variant: &wire.Formatted{DoctypeContent: f.doctype, HtmlContent: f.html}}, nil
}

// TagProperties are the optional settings of a tag.
type TagProperties struct {
	Name     string
	Uuid     string
	Params   []string
	NameCode string
	CodeMode *bool
}

// Tag marks a named point in the document for the engine.
type Tag struct {
	props TagProperties
}

// NewTag creates a tag.
func NewTag(props TagProperties) *Tag {
	props.Params = append([]string(nil), props.Params...)
	return &Tag{props: props}
}

// ToWire implements Element.
func (t *Tag) ToWire() (*wire.Node, error) {
	if t.props.Name == "" {
		return nil, schema.Invalid("name", nil, "required")
	}
	return &wire.Node{Variant: &wire.Tag{
		Name:     t.props.Name,
		Uuid:     optString(t.props.Uuid),
		Params:   t.props.Params,
		NameCode: optString(t.props.NameCode),
		CodeMode: t.props.CodeMode,
	}}, nil
}

// VariableProperties are the optional settings of a variable.
type VariableProperties struct {
	Path        string
	Content     string
	FormatUuid  string
	SpecialType VariableSpecialType
	Uuid        string
}

// Variable is a value resolved by the engine: a data path or a page counter.
type Variable struct {
	props VariableProperties
}

// NewVariable creates a variable.
func NewVariable(props VariableProperties) *Variable {
	return &Variable{props: props}
}

// ToWire implements Element.
func (v *Variable) ToWire() (*wire.Node, error) {
	special, err := lookupOptional(specialTypes, v.props.SpecialType)
	if err != nil {
		return nil, fmt.Errorf("variable: %w", err)
	}
	return &wire.Node{Variant: &wire.Variable{
		Path:        optString(v.props.Path),
		Content:     optString(v.props.Content),
		FormatUuid:  optString(v.props.FormatUuid),
		SpecialType: special,
		Uuid:        optString(v.props.Uuid),
	}}, nil
}
