// Package tlv implements the BER-TLV length forms used by PIV card
// objects and certificate blobs.
//
// The codec supports the short form and the 0x81/0x82 long forms only,
// which covers every object a PIV card can return. Length values are
// limited to 0xFFFF.
package tlv

import (
	"github.com/pkg/errors"
)

// Length codec errors.
var (
	ErrMalformedLength = errors.New("tlv: malformed length")
	ErrValueTooLarge   = errors.New("tlv: length value too large")
	ErrUnexpectedTag   = errors.New("tlv: unexpected tag")
)

// MaxLength is the largest length representable by the three-byte form.
const MaxLength = 0xffff

// DecodeLength parses a BER length field at the start of b and returns
// the decoded value and the number of bytes consumed.
//
// Only the short form and the one- and two-byte long forms are
// accepted; any other leading byte, or a buffer too short for the form
// it announces, fails with ErrMalformedLength.
func DecodeLength(b []byte) (int, int, error) {
	if len(b) == 0 {
		return 0, 0, errors.WithMessage(ErrMalformedLength, "empty buffer")
	}
	switch {
	case b[0] < 0x80:
		return int(b[0]), 1, nil
	case b[0]&0x7f == 1:
		if len(b) < 2 {
			return 0, 0, errors.WithMessage(ErrMalformedLength, "truncated long form")
		}
		return int(b[1]), 2, nil
	case b[0]&0x7f == 2:
		if len(b) < 3 {
			return 0, 0, errors.WithMessage(ErrMalformedLength, "truncated long form")
		}
		return int(b[1])<<8 | int(b[2]), 3, nil
	default:
		return 0, 0, errors.WithMessagef(ErrMalformedLength, "unsupported form 0x%02X", b[0])
	}
}

// EncodeLength returns the encoding of length v.
//
// The one-byte long form covers values up to 0xFE only: 0xFF is emitted
// in the two-byte long form. Card objects in the field were written with
// this cutoff, so it is kept for wire compatibility.
func EncodeLength(v int) ([]byte, error) {
	return AppendLength(make([]byte, 0, 3), v)
}

// AppendLength appends the encoding of length v to dst and returns the
// extended buffer. Values outside [0, MaxLength] fail with
// ErrValueTooLarge.
func AppendLength(dst []byte, v int) ([]byte, error) {
	switch {
	case v < 0 || v > MaxLength:
		return nil, errors.WithMessagef(ErrValueTooLarge, "%d", v)
	case v < 0x80:
		return append(dst, byte(v)), nil
	case v < 0xff:
		return append(dst, 0x81, byte(v)), nil
	default:
		return append(dst, 0x82, byte(v>>8), byte(v)), nil
	}
}
