package schema

// Enum is a closed mapping from symbolic names to wire codes.
// Lookups of symbols outside the table fail with a *ValidationError
// naming the field the enum belongs to.
type Enum[S ~string, W any] struct {
	field string
	table map[S]W
}

// NewEnum creates an enum for the given field. The table is copied.
func NewEnum[S ~string, W any](field string, table map[S]W) Enum[S, W] {
	cp := make(map[S]W, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return Enum[S, W]{field: field, table: cp}
}

// Lookup translates a symbol to its wire code.
func (e Enum[S, W]) Lookup(sym S) (W, error) {
	code, ok := e.table[sym]
	if !ok {
		var zero W
		return zero, Invalid(e.field, string(sym), "unknown value")
	}
	return code, nil
}

// LookupOptional translates an optional symbol. A nil symbol yields a nil code.
func (e Enum[S, W]) LookupOptional(sym *S) (*W, error) {
	if sym == nil {
		return nil, nil
	}
	code, err := e.Lookup(*sym)
	if err != nil {
		return nil, err
	}
	return &code, nil
}
