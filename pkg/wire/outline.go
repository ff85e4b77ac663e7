package wire

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// Outline is the shape of an encoded Node: its kind, the content of text
// nodes and its children. Other variant fields are skipped.
type Outline struct {
	Kind     Kind
	Text     string
	Children []*Outline
}

// Unmarshal decodes the outline of a Node encoded by Marshal.
// Unknown fields are skipped, malformed input is an error.
func Unmarshal(data []byte) (*Outline, error) {
	o := &Outline{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("node tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		payload, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]

		if num == childrenField {
			child, err := Unmarshal(payload)
			if err != nil {
				return nil, err
			}
			o.Children = append(o.Children, child)
			continue
		}

		kind := kindOf(num)
		if kind == KindNone {
			continue
		}
		if o.Kind != KindNone {
			return nil, fmt.Errorf("node carries both %s and %s", o.Kind, kind)
		}
		o.Kind = kind
		if kind == KindText {
			text, err := decodeText(payload)
			if err != nil {
				return nil, err
			}
			o.Text = text
		}
	}
	return o, nil
}

func decodeText(data []byte) (string, error) {
	var content string
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", fmt.Errorf("text tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		if num == 1 && typ == protowire.BytesType {
			v, m := protowire.ConsumeString(data)
			if m < 0 {
				return "", fmt.Errorf("text content: %w", protowire.ParseError(m))
			}
			content = v
			data = data[m:]
			continue
		}
		m := protowire.ConsumeFieldValue(num, typ, data)
		if m < 0 {
			return "", fmt.Errorf("text field %d: %w", num, protowire.ParseError(m))
		}
		data = data[m:]
	}
	return content, nil
}

// Count returns the number of nodes in the outline, including o itself.
func (o *Outline) Count() int {
	total := 1
	for _, c := range o.Children {
		total += c.Count()
	}
	return total
}

// PlainText flattens the text content. Paragraphs and line breaks end a line;
// header, footer and format declarations are left out.
func (o *Outline) PlainText() string {
	var sb strings.Builder
	o.writeText(&sb)
	return sb.String()
}

func (o *Outline) writeText(sb *strings.Builder) {
	switch o.Kind {
	case KindHeader, KindFooter, KindParagraphFormat:
		return
	case KindText:
		sb.WriteString(o.Text)
	case KindLinebreak:
		sb.WriteByte('\n')
	}
	for _, c := range o.Children {
		c.writeText(sb)
	}
	if o.Kind == KindParagraph {
		sb.WriteByte('\n')
	}
}
