package schema

// Ptr returns a pointer to v. Optional properties throughout the document
// model are pointers; this keeps literals short:
//
//	content.SpanProperties{Bold: schema.Ptr(true)}
func Ptr[T any](v T) *T {
	return &v
}
