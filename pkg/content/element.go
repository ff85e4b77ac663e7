package content

import (
	"fmt"
	"reflect"

	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// Element is any node of the document tree.
type Element interface {
	ToWire() (*wire.Node, error)
}

// Content is what branch constructors accept: nil, a string, an Element,
// or a slice ([]Element, []string, []any) nested to any depth.
// Strings become Text leaves.
type Content = any

// Normalize flattens c depth-first into an ordered list of elements.
// Values of any other type, and nil elements, become elements that fail
// to serialize.
func Normalize(c Content) []Element {
	var out []Element
	normalize(c, &out)
	return out
}

func normalize(c Content, out *[]Element) {
	switch v := c.(type) {
	case nil:
	case string:
		*out = append(*out, NewText(v))
	case Element:
		*out = append(*out, element(v))
	case []Element:
		for _, e := range v {
			*out = append(*out, element(e))
		}
	case []string:
		for _, s := range v {
			*out = append(*out, NewText(s))
		}
	case []any:
		for _, item := range v {
			normalize(item, out)
		}
	default:
		*out = append(*out, unsupported{value: v, reason: "unsupported content type"})
	}
}

// element replaces a nil element, typed or not, with one that fails to serialize.
func element(e Element) Element {
	if isNil(e) {
		return unsupported{value: e, reason: "nil element"}
	}
	return e
}

// isNil reports whether e is nil or a nil pointer behind the interface.
func isNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

type unsupported struct {
	value  any
	reason string
}

func (u unsupported) ToWire() (*wire.Node, error) {
	return nil, schema.Invalid("content", fmt.Sprintf("%T", u.value), u.reason)
}
