package cursor

import "fmt"

// Enum is a tagged value: a named integer type restricted to a closed
// variant set. Valid reports whether the receiver is one of the known
// variants; decode never hands back a value for which Valid is false.
type Enum interface {
	Scalar
	Valid() bool
}

// PeekTagged decodes the raw scalar backing T and validates it against
// T's variant set, without consuming it. A short buffer fails with
// ErrInsufficientData; a raw value outside the variant set fails with
// ErrInvalidEncoding.
func PeekTagged[T Enum](c *Cursor) (T, error) {
	v, err := PeekScalar[T](c)
	if err != nil {
		return v, err
	}
	if !v.Valid() {
		err := fmt.Errorf("cursor: raw value %d at offset %d matches no variant: %w",
			v, c.pos, ErrInvalidEncoding)
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadTagged decodes like PeekTagged and consumes the raw scalar's
// width, advancing even on failure.
func ReadTagged[T Enum](c *Cursor) (T, error) {
	v, err := PeekTagged[T](c)
	c.advance(widthOf[T]())
	return v, err
}
