package sigutil

import (
	"math/big"

	"github.com/effective-security/piv/tlv"
	"github.com/pkg/errors"
)

// EncodeComponent serializes bn as a length-prefixed field of exactly
// width bytes: the TLV length encoding of width, then left zero
// padding, then the big-endian value bytes. ECDSA r and s values are
// packed this way for the card signing protocol.
//
// A value whose natural byte length exceeds width fails with
// ErrComponentOverflow; it is never truncated.
func EncodeComponent(bn *big.Int, width int) ([]byte, error) {
	return AppendComponent(make([]byte, 0, 3+width), bn, width)
}

// AppendComponent appends the length-prefixed fixed-width encoding of
// bn to dst and returns the extended buffer.
func AppendComponent(dst []byte, bn *big.Int, width int) ([]byte, error) {
	n := (bn.BitLen() + 7) / 8
	if n > width {
		return nil, errors.WithMessagef(ErrComponentOverflow, "value needs %d bytes, field is %d", n, width)
	}
	dst, err := tlv.AppendLength(dst, width)
	if err != nil {
		return nil, err
	}
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, 0)
	}
	bn.FillBytes(dst[start:])
	return dst, nil
}
