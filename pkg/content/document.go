package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/style"
	"github.com/aretw0/docframe/pkg/wire"
)

// DefaultFormatName is the name of the format registered when none is given.
const DefaultFormatName = "Text"

// DefaultParagraphFormat returns the "Text" format: Helvetica 12pt on 14pt,
// 15pt indention width, marked default.
func DefaultParagraphFormat() *style.ParagraphFormat {
	return style.NewParagraphFormat(style.ParagraphFormatProperties{
		Name:           DefaultFormatName,
		Default:        true,
		Font:           style.Helvetica(),
		FontSize:       measure.Pt(12),
		LineFeed:       measure.Pt(14),
		IndentionWidth: measure.Pt(15),
	})
}

// DocumentProperties configures a Document. A nil page or column definition
// falls back to A4 single-column; a nil header or footer is left out.
type DocumentProperties struct {
	PageDefinition   *PageDefinition
	ColumnDefinition *ColumnDefinition
	DefaultHeader    *Header
	DefaultFooter    *Footer
	// ParagraphFormats are registered under their names, in order.
	// When empty the default "Text" format is registered.
	ParagraphFormats []*style.ParagraphFormat
}

// Document is the root of the tree.
type Document struct {
	Branch
	props DocumentProperties

	formatOrder []string
	formats     map[string]*style.ParagraphFormat
}

// NewDocument creates a document. With nil props it gets A4 pages, the
// single-column A4 layout, a 40pt header and footer and the "Text" format.
func NewDocument(c Content, props *DocumentProperties) *Document {
	d := &Document{
		Branch:  newBranch(c),
		formats: make(map[string]*style.ParagraphFormat),
	}

	if props == nil {
		d.props = DocumentProperties{
			DefaultHeader: NewHeader(NewSpaceVertically(measure.Pt(40)), nil),
			DefaultFooter: NewFooter(NewSpaceVertically(measure.Pt(40)), nil),
		}
	} else {
		d.props = *props
	}
	if d.props.PageDefinition == nil {
		d.props.PageDefinition = PageA4()
	}
	if d.props.ColumnDefinition == nil {
		d.props.ColumnDefinition = ColumnsA4Single()
	}

	formats := d.props.ParagraphFormats
	if len(formats) == 0 {
		formats = []*style.ParagraphFormat{DefaultParagraphFormat()}
	}
	for _, f := range formats {
		d.RegisterFormat(f.Name(), f)
	}
	d.props.ParagraphFormats = nil

	return d
}

// PageDefinition returns the page layout declared first in the document.
func (d *Document) PageDefinition() *PageDefinition { return d.props.PageDefinition }

// ColumnDefinition returns the column layout applied at the start.
func (d *Document) ColumnDefinition() *ColumnDefinition { return d.props.ColumnDefinition }

// DefaultHeader returns the header, or nil when there is none.
func (d *Document) DefaultHeader() *Header { return d.props.DefaultHeader }

// DefaultFooter returns the footer, or nil when there is none.
func (d *Document) DefaultFooter() *Footer { return d.props.DefaultFooter }

// GetFormat looks up a registered paragraph format.
func (d *Document) GetFormat(name string) (*style.ParagraphFormat, bool) {
	f, ok := d.formats[name]
	return f, ok
}

// RegisterFormat stores f under name, replacing any format already there.
// A replaced format keeps its original position. Nil formats are ignored.
func (d *Document) RegisterFormat(name string, f *style.ParagraphFormat) {
	if f == nil {
		return
	}
	if _, exists := d.formats[name]; !exists {
		d.formatOrder = append(d.formatOrder, name)
	}
	d.formats[name] = f
}

// Formats returns the registered formats in registration order.
func (d *Document) Formats() []*style.ParagraphFormat {
	out := make([]*style.ParagraphFormat, 0, len(d.formatOrder))
	for _, name := range d.formatOrder {
		out = append(out, d.formats[name])
	}
	return out
}

func (d *Document) formatNodes() ([]*wire.Node, error) {
	nodes := make([]*wire.Node, 0, len(d.formatOrder))
	for _, name := range d.formatOrder {
		pf, err := d.formats[name].ToWire()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &wire.Node{Variant: pf})
	}
	return nodes, nil
}

// ToWire assembles the root node. Its children are, in order: the paragraph
// formats, the page definition and its apply node, the column definition and
// its apply node, the default header and footer, the paragraph formats again,
// and finally the document content.
func (d *Document) ToWire() (*wire.Node, error) {
	formats, err := d.formatNodes()
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}

	seq := append([]*wire.Node(nil), formats...)

	pDef, err := d.props.PageDefinition.ToWire()
	if err != nil {
		return nil, fmt.Errorf("document: page definition: %w", err)
	}
	seq = append(seq, pDef, d.props.PageDefinition.ApplyNode())

	cDef, err := d.props.ColumnDefinition.ToWireNodes(true)
	if err != nil {
		return nil, fmt.Errorf("document: column definition: %w", err)
	}
	seq = append(seq, cDef...)

	if d.props.DefaultHeader != nil {
		h, err := d.props.DefaultHeader.ToWire()
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		seq = append(seq, h)
	}
	if d.props.DefaultFooter != nil {
		f, err := d.props.DefaultFooter.ToWire()
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		seq = append(seq, f)
	}

	// The engine expects the formats declared again after the settings.
	formats, err = d.formatNodes()
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	seq = append(seq, formats...)

	children, err := d.childrenToWire()
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	seq = append(seq, children...)

	return &wire.Node{Children: seq}, nil
}

// Marshal serializes the document to the binary wire format.
func (d *Document) Marshal() ([]byte, error) {
	n, err := d.ToWire()
	if err != nil {
		return nil, err
	}
	return wire.Marshal(n)
}
