package cursor

import "errors"

var (
	// ErrInsufficientData reports that the requested width exceeds the
	// remaining buffer length. Recoverable; callers may treat it as
	// end-of-stream.
	ErrInsufficientData = errors.New("cursor: insufficient data")

	// ErrInvalidEncoding reports that bytes of the correct width were
	// present but do not form a valid value of the requested type
	// (malformed UTF-8, tagged value with no matching variant).
	ErrInvalidEncoding = errors.New("cursor: invalid encoding")
)
