// Package certutil extracts certificate and key objects from card data
// and converts them between card, DER and PEM representations.
package certutil

import (
	"crypto"
	"crypto/x509"

	"github.com/effective-security/piv/tlv"
	"github.com/pkg/errors"
)

// Extraction errors.
var (
	ErrCertificateParse = errors.New("certutil: unable to parse certificate")
	ErrNoPublicKey      = errors.New("certutil: no public key")
	ErrBufferTooSmall   = errors.New("certutil: buffer too small")
	ErrUnimplemented    = errors.New("certutil: not implemented")
)

// TagCertificate is the object tag wrapping DER certificates in card
// data.
const TagCertificate = 0x70

// ParseCertificateObject parses a tagged card object into a
// certificate. The blob must start with TagCertificate followed by a
// TLV length field and the DER certificate bytes. The returned
// certificate is owned by the caller.
func ParseCertificateObject(blob []byte) (*x509.Certificate, error) {
	der, err := tlv.ParseTagged(TagCertificate, blob)
	if err != nil {
		return nil, err
	}
	crt, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, errors.WithMessagef(ErrCertificateParse, "%v", err)
	}
	return crt, nil
}

// EncodeCertificateObject wraps DER certificate bytes into the tagged
// card object form.
func EncodeCertificateObject(der []byte) ([]byte, error) {
	return tlv.EncodeTagged(TagCertificate, der)
}

// PublicKeyOf returns the public key embedded in the certificate.
func PublicKeyOf(crt *x509.Certificate) (crypto.PublicKey, error) {
	if crt == nil || crt.PublicKey == nil {
		return nil, errors.WithStack(ErrNoPublicKey)
	}
	return crt.PublicKey, nil
}
