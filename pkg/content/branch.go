package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/wire"
)

// Branch holds the ordered children of a branch element.
// It is embedded by every element that owns children.
type Branch struct {
	children []Element
}

func newBranch(c Content) Branch {
	return Branch{children: Normalize(c)}
}

// AppendChild adds e after the existing children.
func (b *Branch) AppendChild(e Element) {
	b.children = append(b.children, e)
}

// AppendChildren adds elems, in order, after the existing children.
func (b *Branch) AppendChildren(elems ...Element) {
	b.children = append(b.children, elems...)
}

// PrependChild inserts e before the existing children.
func (b *Branch) PrependChild(e Element) {
	b.PrependChildren(e)
}

// PrependChildren inserts elems, in order, before the existing children.
func (b *Branch) PrependChildren(elems ...Element) {
	merged := make([]Element, 0, len(elems)+len(b.children))
	merged = append(merged, elems...)
	b.children = append(merged, b.children...)
}

// Children returns a copy of the child list.
func (b *Branch) Children() []Element {
	out := make([]Element, len(b.children))
	copy(out, b.children)
	return out
}

func (b *Branch) childrenToWire() ([]*wire.Node, error) {
	if len(b.children) == 0 {
		return nil, nil
	}
	nodes := make([]*wire.Node, 0, len(b.children))
	for i, child := range b.children {
		if isNil(child) {
			return nil, fmt.Errorf("child %d: %w", i, wire.ErrNilNode)
		}
		n, err := child.ToWire()
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// node wraps v and the serialized children into a Node.
func (b *Branch) node(v wire.Variant) (*wire.Node, error) {
	children, err := b.childrenToWire()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Kind(), err)
	}
	return &wire.Node{Variant: v, Children: children}, nil
}
