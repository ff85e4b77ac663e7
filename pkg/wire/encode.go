package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// message is implemented by every encodable struct in this package.
type message interface {
	appendFields(b []byte) []byte
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendOptString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	return appendString(b, num, *v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendOptBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	return appendBool(b, num, *v)
}

// appendInt32 sign-extends negative values to ten bytes, as protobuf int32 requires.
func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendOptInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	return appendInt32(b, num, *v)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendOptDouble(b []byte, num protowire.Number, v *float64) []byte {
	if v == nil {
		return b
	}
	return appendDouble(b, num, *v)
}

func appendEnum[E ~int32](b []byte, num protowire.Number, v E) []byte {
	return appendInt32(b, num, int32(v))
}

func appendOptEnum[E ~int32](b []byte, num protowire.Number, v *E) []byte {
	if v == nil {
		return b
	}
	return appendEnum(b, num, *v)
}

func appendMessage(b []byte, num protowire.Number, m message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendFields(nil))
}

// appendOpt writes a sub-message unless the pointer is nil.
func appendOpt[T any, M interface {
	*T
	message
}](b []byte, num protowire.Number, m M) []byte {
	if m == nil {
		return b
	}
	return appendMessage(b, num, m)
}
