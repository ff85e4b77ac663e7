// Package schema holds the validation vocabulary shared by the document model.
//
// It defines ValidationError, the single error type raised when a value falls
// outside a closed range or a closed symbolic domain, and Enum, a closed
// mapping table from symbolic names (such as "dense-shading" or "top-left")
// to wire codes. A small type system (String, Int, Positive)
// backs the validation of loosely typed maps such as the per-format output
// options and the request metadata sent to the rendering engine.
//
// Basic usage:
//
//	ruleStyles := schema.NewEnum("style", map[RuleStyle]wire.RuleStyle{
//	    "solid":  wire.RuleStyleSolid,
//	    "double": wire.RuleStyleDouble,
//	})
//
//	code, err := ruleStyles.Lookup("dotted")
//	// err: field "style": unknown value (got dotted)
//
//	params := schema.Schema{"dpi": schema.Positive(schema.Int())}
//	if err := schema.ValidatePresent(params, map[string]any{"dpi": 300}); err != nil {
//	    // Handle validation errors
//	}
//
// This package depends only on the Go standard library.
package schema
