package wire

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// Kind names the variant carried by a Node.
type Kind string

const (
	KindNone                     Kind = ""
	KindText                     Kind = "text"
	KindLinebreak                Kind = "linebreak"
	KindNewPage                  Kind = "newPage"
	KindSpan                     Kind = "span"
	KindParagraph                Kind = "paragraph"
	KindTable                    Kind = "table"
	KindTableRow                 Kind = "tableRow"
	KindTableCell                Kind = "tableCell"
	KindImage                    Kind = "image"
	KindBarcode                  Kind = "barcode"
	KindVariable                 Kind = "variable"
	KindTag                      Kind = "tag"
	KindFormatted                Kind = "formatted"
	KindRule                     Kind = "rule"
	KindIndentation              Kind = "indentation"
	KindLink                     Kind = "link"
	KindLoop                     Kind = "loop"
	KindLoopEntry                Kind = "loopEntry"
	KindSection                  Kind = "section"
	KindCondition                Kind = "condition"
	KindPageCondition            Kind = "pageCondition"
	KindSelection                Kind = "selection"
	KindSelectionEntry           Kind = "selectionEntry"
	KindDirectory                Kind = "directory"
	KindWsArea                   Kind = "wsArea"
	KindCarryOver                Kind = "carryOver"
	KindAdvancedIllustrationArea Kind = "advancedIllustrationArea"
	KindAdjustHorizontally       Kind = "adjustHorizontally"
	KindSubTotal                 Kind = "subTotal"
	KindHeader                   Kind = "header"
	KindFooter                   Kind = "footer"
	KindSpaceVertically          Kind = "spaceVertically"
	KindParagraphFormat          Kind = "paragraphFormat"
	KindPDef                     Kind = "pDef"
	KindApplyPDef                Kind = "applyPDef"
	KindCDef                     Kind = "cDef"
	KindApplyCDef                Kind = "applyCDef"
	KindTableContentGroup        Kind = "tableContentGroup"
)

// childrenField is the Node field number of the repeated children list.
// Variant fields follow from 2 in the order of the kinds table.
const childrenField protowire.Number = 1

var kindFields = [...]Kind{
	KindText, KindLinebreak, KindNewPage, KindSpan, KindParagraph, KindTable,
	KindTableRow, KindTableCell, KindImage, KindBarcode, KindVariable, KindTag,
	KindFormatted, KindRule, KindIndentation, KindLink, KindLoop, KindLoopEntry,
	KindSection, KindCondition, KindPageCondition, KindSelection,
	KindSelectionEntry, KindDirectory, KindWsArea, KindCarryOver,
	KindAdvancedIllustrationArea, KindAdjustHorizontally, KindSubTotal,
	KindHeader, KindFooter, KindSpaceVertically, KindParagraphFormat, KindPDef,
	KindApplyPDef, KindCDef, KindApplyCDef, KindTableContentGroup,
}

var fieldByKind = func() map[Kind]protowire.Number {
	m := make(map[Kind]protowire.Number, len(kindFields))
	for i, k := range kindFields {
		m[k] = protowire.Number(i + 2)
	}
	return m
}()

// FieldNumber returns the Node field number used for kind k, or 0 if unknown.
func FieldNumber(k Kind) protowire.Number {
	return fieldByKind[k]
}

func kindOf(num protowire.Number) Kind {
	i := int(num) - 2
	if i < 0 || i >= len(kindFields) {
		return KindNone
	}
	return kindFields[i]
}

// Variant is the payload of a Node. The set of implementations is closed.
type Variant interface {
	message
	Kind() Kind
}

// Node is one unit of the docframe wire format.
// The document root is a Node without a Variant.
type Node struct {
	Variant  Variant
	Children []*Node
}

// Kind reports the kind of the node's variant, KindNone for the root.
func (n *Node) Kind() Kind {
	if n == nil || n.Variant == nil {
		return KindNone
	}
	return n.Variant.Kind()
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// ErrNilNode is returned when a nil node is passed to Marshal or found in a tree.
var ErrNilNode = errors.New("nil node")

// Marshal encodes n in protobuf binary form.
func Marshal(n *Node) ([]byte, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	return n.append(nil)
}

func (n *Node) append(b []byte) ([]byte, error) {
	for _, c := range n.Children {
		if c == nil {
			return nil, ErrNilNode
		}
		inner, err := c.append(nil)
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, childrenField, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	if n.Variant != nil {
		b = appendMessage(b, FieldNumber(n.Variant.Kind()), n.Variant)
	}
	return b, nil
}
