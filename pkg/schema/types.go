package schema

import (
	"fmt"
	"math"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

// Name implements Type.
func (t *StringType) Name() string { return "string" }

// Validate implements Type.
func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
// Whole floats are accepted because JSON and YAML decoders produce them.
type IntType struct{}

// Name implements Type.
func (t *IntType) Name() string { return "int" }

// Validate implements Type.
func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		return nil
	case float64:
		if v == math.Trunc(v) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// PositiveType wraps a numeric type and additionally requires value > 0.
type PositiveType struct {
	inner Type
}

// Name implements Type.
func (t *PositiveType) Name() string { return "positive " + t.inner.Name() }

// Validate implements Type.
func (t *PositiveType) Validate(value any) error {
	if err := t.inner.Validate(value); err != nil {
		return err
	}
	n, ok := asFloat(value)
	if !ok {
		return fmt.Errorf("expected number, got %T", value)
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Positive restricts a numeric type to values greater than zero.
func Positive(inner Type) Type { return &PositiveType{inner: inner} }

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
