package sigutil

import (
	"github.com/pkg/errors"
)

// PadPKCS1v15 applies EMSA-PKCS1-v1.5 type 1 padding to a DigestInfo
// for a raw RSA sign primitive, producing a block of exactly keySize
// bytes: 0x00 0x01 0xFF.. 0x00 followed by the DigestInfo.
func PadPKCS1v15(digestInfo []byte, keySize int) ([]byte, error) {
	// type 1 padding requires at least 8 bytes of 0xFF plus 3 marker bytes
	if keySize < len(digestInfo)+11 {
		return nil, errors.Errorf("sigutil: payload of %d bytes does not fit %d-byte key", len(digestInfo), keySize)
	}
	out := make([]byte, keySize)
	out[1] = 0x01
	pad := keySize - len(digestInfo) - 1
	for i := 2; i < pad; i++ {
		out[i] = 0xff
	}
	copy(out[pad+1:], digestInfo)
	return out, nil
}
