// Package sigutil prepares digests and signature components for raw
// card signing primitives.
//
// Card sign operations are raw: the host is responsible for wrapping
// the digest into a DigestInfo and applying PKCS#1 v1.5 padding before
// an RSA sign, and for packing ECDSA r/s values into fixed-width TLV
// fields. This package implements that preparation.
package sigutil

import (
	"crypto"

	"github.com/pkg/errors"
)

// Signature preparation errors.
var (
	ErrDigestLength      = errors.New("sigutil: digest length mismatch")
	ErrComponentOverflow = errors.New("sigutil: component exceeds field width")
	ErrUnsupportedHash   = errors.New("sigutil: unsupported hash")
)

// HashSpec carries the precomputed DigestInfo prefix for a hash
// algorithm. The prefix is the complete DER AlgorithmIdentifier plus
// the OCTET STRING header, with both length fields baked in for the
// digest size of the algorithm.
type HashSpec struct {
	Hash   crypto.Hash
	Size   int
	prefix []byte
}

// Prefix returns a copy of the DigestInfo prefix bytes.
func (s HashSpec) Prefix() []byte {
	out := make([]byte, len(s.prefix))
	copy(out, s.prefix)
	return out
}

var hashSpecs = []HashSpec{
	{
		Hash: crypto.SHA1,
		Size: 20,
		prefix: []byte{
			0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02,
			0x1a, 0x05, 0x00, 0x04, 0x14,
		},
	},
	{
		Hash: crypto.SHA256,
		Size: 32,
		prefix: []byte{
			0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
		},
	},
	{
		Hash: crypto.SHA384,
		Size: 48,
		prefix: []byte{
			0x30, 0x41, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00, 0x04, 0x30,
		},
	},
	{
		Hash: crypto.SHA512,
		Size: 64,
		prefix: []byte{
			0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04, 0x40,
		},
	},
}

// SpecFor returns the HashSpec for h. Only SHA-1, SHA-256, SHA-384 and
// SHA-512 are supported.
func SpecFor(h crypto.Hash) (HashSpec, error) {
	for _, s := range hashSpecs {
		if s.Hash == h {
			return s, nil
		}
	}
	return HashSpec{}, errors.WithMessagef(ErrUnsupportedHash, "%s", h)
}

// BuildDigestInfo returns the DER DigestInfo for digest:
// SEQUENCE { AlgorithmIdentifier, OCTET STRING digest }.
// The digest length must match the spec exactly.
func BuildDigestInfo(spec HashSpec, digest []byte) ([]byte, error) {
	if len(spec.prefix) == 0 {
		return nil, errors.WithStack(ErrUnsupportedHash)
	}
	if len(digest) != spec.Size {
		return nil, errors.WithMessagef(ErrDigestLength, "%s digest must be %d bytes, got %d",
			spec.Hash, spec.Size, len(digest))
	}
	out := make([]byte, 0, len(spec.prefix)+len(digest))
	out = append(out, spec.prefix...)
	return append(out, digest...), nil
}
