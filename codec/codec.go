// Package codec: fixed 64-byte binary layout for Cliffor values.

package codec

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/katalvlaran/cl3/cliffor"
)

// Size is the exact byte length of one serialized Cliffor: 8 float64
// coefficients in the full APS embedding.
const Size = 64

// coeffBytes is the width of one little-endian float64 coefficient.
const coeffBytes = 8

// Sentinel errors for codec operations.
var (
	// ErrShortBuffer indicates fewer than Size bytes where one value is expected.
	ErrShortBuffer = errors.New("codec: buffer shorter than one 64-byte value")

	// ErrBadLength indicates a bulk buffer whose length is not a multiple of Size.
	ErrBadLength = errors.New("codec: byte length is not a multiple of 64")
)

// Append serializes c and appends the 64-byte layout to dst, returning
// the extended slice. Every variant is projected through the full
// 8-component embedding first, so the write path always emits exactly
// 8 coefficients.
func Append(dst []byte, c cliffor.Cliffor) []byte {
	coeffs := c.ToAPS().Coeffs()
	for _, f := range coeffs {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(f))
	}

	return dst
}

// Marshal serializes c into a fresh 64-byte slice.
func Marshal(c cliffor.Cliffor) []byte {
	return Append(make([]byte, 0, Size), c)
}

// Unmarshal reconstructs one Cliffor from the first 64 bytes of b.
// The result is always the full 8-component APS variant; callers wanting
// the minimal variant reduce explicitly.
// Returns ErrShortBuffer when b holds fewer than Size bytes.
func Unmarshal(b []byte) (cliffor.Cliffor, error) {
	if len(b) < Size {
		return cliffor.Zero(), ErrShortBuffer
	}

	var coeffs [8]float64
	for i := range coeffs {
		bits := binary.LittleEndian.Uint64(b[i*coeffBytes:])
		coeffs[i] = math.Float64frombits(bits)
	}

	return cliffor.New(cliffor.APS, coeffs), nil
}

// MarshalSlice serializes every value of vs back-to-back into a single
// len(vs)·64-byte slice, preserving order.
func MarshalSlice(vs []cliffor.Cliffor) []byte {
	dst := make([]byte, 0, len(vs)*Size)
	for _, v := range vs {
		dst = Append(dst, v)
	}

	return dst
}

// UnmarshalSlice reconstructs len(b)/64 values from b.
// Returns ErrBadLength when len(b) is not a multiple of Size.
func UnmarshalSlice(b []byte) ([]cliffor.Cliffor, error) {
	if len(b)%Size != 0 {
		return nil, ErrBadLength
	}

	vs := make([]cliffor.Cliffor, 0, len(b)/Size)
	for off := 0; off < len(b); off += Size {
		v, err := Unmarshal(b[off:])
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}

	return vs, nil
}
