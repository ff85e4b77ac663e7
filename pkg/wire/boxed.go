package wire

// Boxed distinguishes an explicitly set value from an absent one.
// A nil *Boxed is omitted from the encoding entirely; IsNull marks a present
// field that deliberately carries no value.
type Boxed[T any] struct {
	IsNull bool
	Value  T
}

// Box wraps v as a present, non-null value.
func Box[T any](v T) *Boxed[T] {
	return &Boxed[T]{Value: v}
}

// BoxPtr boxes *p, or returns nil when p is nil.
func BoxPtr[T any](p *T) *Boxed[T] {
	if p == nil {
		return nil
	}
	return Box(*p)
}

// Null returns a present field flagged as null.
func Null[T any]() *Boxed[T] {
	return &Boxed[T]{IsNull: true}
}

func (x *Boxed[T]) appendFields(b []byte) []byte {
	b = appendBool(b, 1, x.IsNull)
	switch v := any(x.Value).(type) {
	case bool:
		b = appendBool(b, 2, v)
	case string:
		b = appendString(b, 2, v)
	case int32:
		b = appendInt32(b, 2, v)
	case float64:
		b = appendDouble(b, 2, v)
	case HorizontalAlignment:
		b = appendEnum(b, 2, v)
	case VerticalAlignment:
		b = appendEnum(b, 2, v)
	case *Measure:
		b = appendOpt(b, 2, v)
	case *Font:
		b = appendOpt(b, 2, v)
	}
	return b
}

var _ message = (*Boxed[bool])(nil)
