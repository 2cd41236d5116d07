// Package cursor owns sequential decode primitives over an immutable
// byte buffer.
//
// Ownership boundary:
// - bounds-checked peek/read duality over a byte range
// - native-order scalar, array, text, and tagged-value extraction
// - field-by-field composite decode via Decodable
//
// Callers supply the decode order and widths; the package performs no
// endianness conversion and defines no wire format of its own.
package cursor
