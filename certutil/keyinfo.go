package certutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"

	"github.com/effective-security/piv/piv"
	"github.com/pkg/errors"
)

// KeyInfo provides information about the key
type KeyInfo struct {
	KeySize   int
	Type      string
	IsPrivate bool
	Algorithm piv.Algorithm
	Hash      crypto.Hash
	Key       interface{}
}

// NewKeyInfo returns *KeyInfo for a public or private key. The key
// must classify into a card algorithm; unsupported sizes, curves and
// key types are reported.
func NewKeyInfo(k interface{}) (*KeyInfo, error) {
	ki := &KeyInfo{Key: k}
	var pubKey crypto.PublicKey

	switch typ := k.(type) {
	case *rsa.PrivateKey:
		ki.IsPrivate = true
		pubKey = &typ.PublicKey
	case *ecdsa.PrivateKey:
		ki.IsPrivate = true
		pubKey = &typ.PublicKey
	case crypto.Signer:
		pubKey = typ.Public()
	default:
		pubKey = k
	}

	alg, err := piv.AlgorithmForKey(pubKey)
	if err != nil {
		return nil, err
	}
	ki.Algorithm = alg

	switch typ := pubKey.(type) {
	case *rsa.PublicKey:
		ki.Type = "RSA"
		ki.KeySize = typ.N.BitLen()
	case *ecdsa.PublicKey:
		ki.Type = "ECDSA"
		ki.KeySize = typ.Params().BitSize
	default:
		return nil, errors.Errorf("key not supported: %T", typ)
	}
	ki.Hash = hashAlgo(pubKey)
	return ki, nil
}

func hashAlgo(pub crypto.PublicKey) crypto.Hash {
	switch pub := pub.(type) {
	case *rsa.PublicKey:
		keySize := pub.N.BitLen()
		switch {
		case keySize >= 4096:
			return crypto.SHA512
		case keySize >= 3072:
			return crypto.SHA384
		case keySize >= 2048:
			return crypto.SHA256
		default:
			return crypto.SHA1
		}
	case *ecdsa.PublicKey:
		switch pub.Curve {
		case elliptic.P256():
			return crypto.SHA256
		case elliptic.P384():
			return crypto.SHA384
		case elliptic.P521():
			return crypto.SHA512
		default:
			return crypto.SHA1
		}
	default:
		return crypto.SHA1
	}
}
