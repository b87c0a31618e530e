// Package codec serializes Cliffor values to the fixed binary layout used
// for array and FFI interop.
//
// 🚀 What is the layout?
//
//	A Cliffor is exactly 8 consecutive IEEE-754 float64 values in the
//	fixed order [a0, a1, a2, a3, a23, a31, a12, a123] — the full APS
//	embedding — little-endian, 64 bytes total, naturally 8-byte aligned.
//	There is no sparse or compact form: serialization projects every
//	variant through the full embedding, so a short element can never
//	reach the write path, and deserialization always reconstructs the
//	full 8-component variant (callers reduce explicitly if they want the
//	minimal one).
//
// ⚙️ Usage:
//
//	buf := codec.Marshal(v)                 // 64 bytes
//	w, err := codec.Unmarshal(buf)          // full APS variant
//	vs, err := codec.UnmarshalSlice(bulk)   // len(bulk)/64 values
//
// Errors:
//
//	ErrShortBuffer - fewer than 64 bytes where one value is expected.
//	ErrBadLength   - bulk byte length is not a multiple of 64.
package codec
