package cursor

// Decodable is the per-type decode contract for composite values. An
// implementation reads each of its fields in declaration order through
// the scalar/array/text primitives; the decoder never reinterprets a
// struct's in-memory layout.
type Decodable interface {
	DecodeFrom(c *Cursor) error
}

// ReadInto decodes v field by field from the cursor. Each field read
// follows the usual consuming rules, so a failed field still advances
// by that field's assumed width.
func ReadInto(c *Cursor, v Decodable) error {
	return v.DecodeFrom(c)
}

// PeekInto decodes v on a positional fork of the cursor, leaving the
// cursor itself untouched regardless of the outcome.
func PeekInto(c *Cursor, v Decodable) error {
	return v.DecodeFrom(c.fork())
}
