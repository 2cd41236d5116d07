package cursor

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Scalar is the closed set of fixed-width integer types the decoder
// extracts. Width is intrinsic to the type: 1, 2, 4, or 8 bytes.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of fixed-width floating-point types.
type Float interface {
	~float32 | ~float64
}

func widthOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// decodeScalar reinterprets b as the native-byte-order representation
// of T. Bit-for-bit: no range check, no endianness conversion.
func decodeScalar[T Scalar](b []byte) T {
	switch len(b) {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.NativeEndian.Uint16(b))
	case 4:
		return T(binary.NativeEndian.Uint32(b))
	default:
		return T(binary.NativeEndian.Uint64(b))
	}
}

// PeekScalar decodes the next value of T without consuming it. Fails
// with ErrInsufficientData when fewer than width-of-T bytes remain; no
// partial value is ever produced.
func PeekScalar[T Scalar](c *Cursor) (T, error) {
	var zero T
	b, err := c.window(widthOf[T]())
	if err != nil {
		return zero, err
	}
	return decodeScalar[T](b), nil
}

// ReadScalar decodes the next value of T and consumes its width. The
// cursor advances by the assumed width even when the decode fails, so a
// short buffer ends the decode session rather than allowing spurious
// later reads.
func ReadScalar[T Scalar](c *Cursor) (T, error) {
	v, err := PeekScalar[T](c)
	c.advance(widthOf[T]())
	return v, err
}

// PeekArray decodes count consecutive values of T from contiguous bytes
// without consuming them. All-or-nothing: fails with ErrInsufficientData
// unless count*width bytes remain.
func PeekArray[T Scalar](c *Cursor, count int) ([]T, error) {
	w := widthOf[T]()
	// Divide instead of multiply so oversized counts cannot overflow.
	if count < 0 || count > c.Remaining()/w {
		return nil, fmt.Errorf("cursor: need %d elements of width %d at offset %d, have %d bytes: %w",
			count, w, c.pos, c.Remaining(), ErrInsufficientData)
	}
	b, err := c.window(count * w)
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		out[i] = decodeScalar[T](b[i*w : (i+1)*w])
	}
	return out, nil
}

// ReadArray decodes count consecutive values of T and consumes
// count*width bytes, advancing that far even on failure. An oversized
// count pins the cursor at the end of the buffer.
func ReadArray[T Scalar](c *Cursor, count int) ([]T, error) {
	v, err := PeekArray[T](c, count)
	w := widthOf[T]()
	if count > c.Remaining()/w {
		c.pos = len(c.buf)
	} else if count > 0 {
		c.advance(count * w)
	}
	return v, err
}

// PeekFloat decodes the next value of T from its native-order bit
// pattern without consuming it.
func PeekFloat[T Float](c *Cursor) (T, error) {
	var zero T
	w := int(unsafe.Sizeof(zero))
	b, err := c.window(w)
	if err != nil {
		return zero, err
	}
	if w == 4 {
		return T(math.Float32frombits(binary.NativeEndian.Uint32(b))), nil
	}
	return T(math.Float64frombits(binary.NativeEndian.Uint64(b))), nil
}

// ReadFloat decodes the next value of T and consumes its width,
// advancing even on failure.
func ReadFloat[T Float](c *Cursor) (T, error) {
	var zero T
	v, err := PeekFloat[T](c)
	c.advance(int(unsafe.Sizeof(zero)))
	return v, err
}
