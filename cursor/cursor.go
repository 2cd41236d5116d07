package cursor

import "fmt"

// Cursor pairs an immutable byte buffer with a mutable read position.
// The buffer is never written through the cursor; independent cursors
// over the same buffer are safe to use concurrently, a single cursor
// is not.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a cursor over buf positioned at offset 0. Buffer contents
// are not validated at construction.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total buffer length.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// IsAtEnd reports whether the cursor has reached or passed the end of
// the buffer.
func (c *Cursor) IsAtEnd() bool {
	return c.pos >= len(c.buf)
}

// Skip consumes n bytes without decoding them. Like every consuming
// operation it advances by the requested width even on failure, so a
// short skip pins the cursor at the end.
func (c *Cursor) Skip(n int) error {
	_, err := c.window(n)
	c.advance(n)
	return err
}

// window returns the n bytes at the current position without consuming
// them. The slice aliases the buffer; callers must not retain it across
// decode steps that copy out.
func (c *Cursor) window(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.pos {
		return nil, fmt.Errorf("cursor: need %d bytes at offset %d, have %d: %w",
			n, c.pos, len(c.buf)-c.pos, ErrInsufficientData)
	}
	return c.buf[c.pos : c.pos+n], nil
}

// advance moves the position forward by n, clamped to the buffer length
// so the position invariant [0, len] holds even after a failed read.
func (c *Cursor) advance(n int) {
	if n <= 0 {
		return
	}
	if n > len(c.buf)-c.pos {
		c.pos = len(c.buf)
		return
	}
	c.pos += n
}

// fork returns an independent cursor at the same position over the same
// buffer.
func (c *Cursor) fork() *Cursor {
	return &Cursor{buf: c.buf, pos: c.pos}
}
