package schema

import "sort"

// Schema is a map of field names to their expected types.
// Example: {"width": Positive(Int()), "dpi": Positive(Int())}
type Schema map[string]Type

// Validate checks that every field of the schema is present in data and conforms.
// Returns an error with all validation failures found.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	var errs []error
	for _, fieldName := range sortedKeys(schema) {
		value, exists := data[fieldName]
		if !exists {
			errs = append(errs, Invalid(fieldName, nil, "required"))
			continue
		}
		if err := schema[fieldName].Validate(value); err != nil {
			errs = append(errs, Invalid(fieldName, value, err.Error()))
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// ValidatePresent checks only the fields present in data: each must be declared
// in the schema and conform to its type. Absent fields are fine.
// A nil or empty schema therefore accepts only empty data.
func ValidatePresent(schema Schema, data map[string]any) error {
	var errs []error
	for _, fieldName := range sortedKeys(data) {
		value := data[fieldName]
		fieldType, declared := schema[fieldName]
		if !declared {
			errs = append(errs, Invalid(fieldName, value, "not defined in schema"))
			continue
		}
		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, Invalid(fieldName, value, err.Error()))
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// sortedKeys keeps error order stable across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
