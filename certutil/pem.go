package certutil

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadFromPEM returns Certificate loaded from the file
func LoadFromPEM(certFile string) (*x509.Certificate, error) {
	bytes, err := os.ReadFile(certFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseFromPEM(bytes)
}

// ParseFromPEM returns Certificate parsed from PEM
func ParseFromPEM(bytes []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(bytes)
	if block == nil || block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
		return nil, errors.Errorf("unable to parse PEM")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, errors.WithMessagef(ErrCertificateParse, "%v", err)
	}

	return cert, nil
}

// EncodeToPEM converts certificates to PEM format
func EncodeToPEM(out io.Writer, certs ...*x509.Certificate) error {
	for _, crt := range certs {
		if crt == nil {
			continue
		}
		err := pem.Encode(out, &pem.Block{Type: "CERTIFICATE", Bytes: crt.Raw})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// EncodeToPEMString converts certificates to PEM format
func EncodeToPEMString(certs ...*x509.Certificate) (string, error) {
	b := bytes.NewBuffer([]byte{})
	err := EncodeToPEM(b, certs...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

// EncodePublicKeyToPEM returns PEM encoded public key
func EncodePublicKeyToPEM(pubKey crypto.PublicKey) ([]byte, error) {
	asn1Bytes, err := x509.MarshalPKIXPublicKey(pubKey)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b := bytes.NewBuffer([]byte{})
	err = pem.Encode(b, &pem.Block{Type: "PUBLIC KEY", Bytes: asn1Bytes})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b.Bytes(), nil
}

// ParsePrivateKeyPEM parses and returns a PEM-encoded private key. The
// private key may be an unencrypted PKCS#8, PKCS#1, or elliptic
// private key.
func ParsePrivateKeyPEM(keyPEM []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, errors.Errorf("unable to decode private key")
	}
	return ParsePrivateKeyDER(block.Bytes)
}

// ParsePrivateKeyDER parses a PKCS#1, PKCS#8 or EC DER-encoded private
// key.
func ParsePrivateKeyDER(keyDER []byte) (crypto.Signer, error) {
	generalKey, err := x509.ParsePKCS8PrivateKey(keyDER)
	if err != nil {
		generalKey, err = x509.ParsePKCS1PrivateKey(keyDER)
		if err != nil {
			generalKey, err = x509.ParseECPrivateKey(keyDER)
			if err != nil {
				// the parse error is withheld to avoid leaking
				// information about the key material
				return nil, errors.Errorf("unable to parse private key")
			}
		}
	}

	switch typ := generalKey.(type) {
	case *rsa.PrivateKey:
		return typ, nil
	case *ecdsa.PrivateKey:
		return typ, nil
	}
	return nil, errors.Errorf("unable to parse private key")
}
