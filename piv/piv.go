// Package piv defines the algorithm and slot vocabulary of PIV cards
// and classifies host keys into it.
package piv

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"

	"github.com/pkg/errors"
)

// Classification errors.
var (
	ErrUnsupportedKeySize = errors.New("piv: unsupported key size")
	ErrUnsupportedCurve   = errors.New("piv: unsupported curve")
	ErrUnsupportedKeyType = errors.New("piv: unsupported key type")
)

// Algorithm identifies a PIV key algorithm as encoded on the card.
type Algorithm byte

// Supported card algorithms. The zero value means unknown.
const (
	AlgUnknown Algorithm = 0x00
	AlgRSA1024 Algorithm = 0x06
	AlgRSA2048 Algorithm = 0x07
	AlgECCP256 Algorithm = 0x11
	AlgECCP384 Algorithm = 0x14
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgRSA1024:
		return "RSA1024"
	case AlgRSA2048:
		return "RSA2048"
	case AlgECCP256:
		return "ECCP256"
	case AlgECCP384:
		return "ECCP384"
	default:
		return "Unknown"
	}
}

// ParseAlgorithm maps an algorithm name from configuration to its card
// value, AlgUnknown when the name is not recognized.
func ParseAlgorithm(name string) Algorithm {
	switch name {
	case "RSA1024":
		return AlgRSA1024
	case "RSA2048":
		return AlgRSA2048
	case "ECCP256":
		return AlgECCP256
	case "ECCP384":
		return AlgECCP384
	default:
		return AlgUnknown
	}
}

// AlgorithmForKey classifies pub into a supported card algorithm.
// Cards accept exactly 1024- and 2048-bit RSA keys and the P-256 and
// P-384 curves; anything else is reported as an error, never coerced.
func AlgorithmForKey(pub crypto.PublicKey) (Algorithm, error) {
	switch typ := pub.(type) {
	case *rsa.PublicKey:
		switch typ.Size() {
		case 128:
			return AlgRSA1024, nil
		case 256:
			return AlgRSA2048, nil
		default:
			return AlgUnknown, errors.WithMessagef(ErrUnsupportedKeySize,
				"%d bits, only 1024 and 2048 are supported", typ.N.BitLen())
		}
	case *ecdsa.PublicKey:
		switch typ.Curve {
		case elliptic.P256():
			return AlgECCP256, nil
		case elliptic.P384():
			return AlgECCP384, nil
		default:
			return AlgUnknown, errors.WithMessagef(ErrUnsupportedCurve, "%s", typ.Params().Name)
		}
	default:
		return AlgUnknown, errors.WithMessagef(ErrUnsupportedKeyType, "%T", pub)
	}
}

// SignatureAlgorithm returns the x509 signature algorithm produced by
// signing with the given card algorithm and hash,
// x509.UnknownSignatureAlgorithm for combinations the card cannot
// produce.
func SignatureAlgorithm(alg Algorithm, h crypto.Hash) x509.SignatureAlgorithm {
	switch alg {
	case AlgRSA1024, AlgRSA2048:
		switch h {
		case crypto.SHA1:
			return x509.SHA1WithRSA
		case crypto.SHA256:
			return x509.SHA256WithRSA
		case crypto.SHA384:
			return x509.SHA384WithRSA
		case crypto.SHA512:
			return x509.SHA512WithRSA
		}
	case AlgECCP256, AlgECCP384:
		switch h {
		case crypto.SHA1:
			return x509.ECDSAWithSHA1
		case crypto.SHA256:
			return x509.ECDSAWithSHA256
		case crypto.SHA384:
			return x509.ECDSAWithSHA384
		case crypto.SHA512:
			return x509.ECDSAWithSHA512
		}
	}
	return x509.UnknownSignatureAlgorithm
}
