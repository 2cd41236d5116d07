package cursor

import (
	"fmt"
	"unicode/utf8"
)

// PeekText decodes the next byteCount raw bytes as UTF-8 text without
// consuming them. byteCount is a byte width, not a character count;
// multi-byte code points must be fully contained in the range. Bytes
// that are not valid UTF-8 fail with ErrInvalidEncoding rather than
// producing a corrupted string.
func (c *Cursor) PeekText(byteCount int) (string, error) {
	b, err := c.window(byteCount)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("cursor: %d bytes at offset %d are not valid UTF-8: %w",
			byteCount, c.pos, ErrInvalidEncoding)
	}
	return string(b), nil
}

// ReadText decodes like PeekText and consumes byteCount bytes,
// advancing even when the decode fails.
func (c *Cursor) ReadText(byteCount int) (string, error) {
	s, err := c.PeekText(byteCount)
	c.advance(byteCount)
	return s, err
}
