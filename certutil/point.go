package certutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"

	"github.com/effective-security/piv/piv"
	"github.com/pkg/errors"
)

// EncodePublicKeyPoint serializes the public key into buf and returns
// the number of bytes written.
//
// EC keys use the uncompressed point form: 0x04 followed by X and Y,
// each zero-padded to the curve field width. RSA keys are not served
// by this path and fail with ErrUnimplemented.
func EncodePublicKeyPoint(pub crypto.PublicKey, buf []byte) (int, error) {
	switch typ := pub.(type) {
	case *ecdsa.PublicKey:
		size := (typ.Params().BitSize + 7) / 8
		n := 1 + 2*size
		if len(buf) < n {
			return 0, errors.WithMessagef(ErrBufferTooSmall, "need %d bytes, have %d", n, len(buf))
		}
		buf[0] = 0x04
		typ.X.FillBytes(buf[1 : 1+size])
		typ.Y.FillBytes(buf[1+size : n])
		return n, nil
	case *rsa.PublicKey:
		return 0, errors.WithMessage(ErrUnimplemented, "RSA public key export")
	default:
		return 0, errors.WithMessagef(piv.ErrUnsupportedKeyType, "%T", pub)
	}
}
