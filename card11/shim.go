package card11

import (
	"crypto"
	"crypto/x509"
	stderrors "errors"

	"github.com/effective-security/piv/certutil"
	"github.com/effective-security/piv/piv"
	"github.com/effective-security/piv/sigutil"
	"github.com/effective-security/piv/tlv"
	"github.com/effective-security/xlog"
	"github.com/miekg/pkcs11"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/piv", "card11")

// CertObject owns a certificate parsed from card data, the public key
// derived from it and its card algorithm. The object belongs to the
// caller until Release.
type CertObject struct {
	Cert      *x509.Certificate
	PublicKey crypto.PublicKey
	Algorithm piv.Algorithm
}

// StoreCertificate ingests a tagged certificate blob read from the
// card: parses the certificate, derives the public key and classifies
// its algorithm. A blob holding an unsupported key is rejected rather
// than stored with a guessed algorithm.
func StoreCertificate(data []byte) (*CertObject, error) {
	crt, err := certutil.ParseCertificateObject(data)
	if err != nil {
		return nil, err
	}
	pub, err := certutil.PublicKeyOf(crt)
	if err != nil {
		return nil, err
	}
	alg, err := piv.AlgorithmForKey(pub)
	if err != nil {
		return nil, err
	}

	logger.Tracef("subject=%q, algorithm=%s", crt.Subject.CommonName, alg)

	return &CertObject{
		Cert:      crt,
		PublicKey: pub,
		Algorithm: alg,
	}, nil
}

// Release drops the object's references. Must be called exactly once
// by the owner.
func (o *CertObject) Release() {
	o.Cert = nil
	o.PublicKey = nil
	o.Algorithm = piv.AlgUnknown
}

// Attributes returns the PKCS#11 certificate object template for the
// stored certificate.
func (o *CertObject) Attributes(id []byte) []*pkcs11.Attribute {
	return []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_CLASS, pkcs11.CKO_CERTIFICATE),
		pkcs11.NewAttribute(pkcs11.CKA_CERTIFICATE_TYPE, pkcs11.CKC_X_509),
		pkcs11.NewAttribute(pkcs11.CKA_ID, id),
		pkcs11.NewAttribute(pkcs11.CKA_SUBJECT, o.Cert.RawSubject),
		pkcs11.NewAttribute(pkcs11.CKA_ISSUER, o.Cert.RawIssuer),
		pkcs11.NewAttribute(pkcs11.CKA_SERIAL_NUMBER, o.Cert.SerialNumber.Bytes()),
		pkcs11.NewAttribute(pkcs11.CKA_VALUE, o.Cert.Raw),
	}
}

// KeyTypeFor maps a card algorithm to a PKCS#11 key type. Unknown
// algorithms map to CKK_VENDOR_DEFINED, the historical sentinel of the
// shim.
func KeyTypeFor(alg piv.Algorithm) uint {
	switch alg {
	case piv.AlgRSA1024, piv.AlgRSA2048:
		return pkcs11.CKK_RSA
	case piv.AlgECCP256, piv.AlgECCP384:
		return pkcs11.CKK_EC
	default:
		return pkcs11.CKK_VENDOR_DEFINED
	}
}

// RVFor converts an internal error to the PKCS#11 return value
// reported to the shim host.
func RVFor(err error) uint {
	switch {
	case err == nil:
		return pkcs11.CKR_OK
	case stderrors.Is(err, certutil.ErrBufferTooSmall):
		return pkcs11.CKR_BUFFER_TOO_SMALL
	case stderrors.Is(err, certutil.ErrUnimplemented):
		return pkcs11.CKR_FUNCTION_NOT_SUPPORTED
	case stderrors.Is(err, piv.ErrUnsupportedKeyType),
		stderrors.Is(err, piv.ErrUnsupportedKeySize),
		stderrors.Is(err, piv.ErrUnsupportedCurve):
		return pkcs11.CKR_ATTRIBUTE_VALUE_INVALID
	case stderrors.Is(err, tlv.ErrMalformedLength),
		stderrors.Is(err, tlv.ErrValueTooLarge),
		stderrors.Is(err, tlv.ErrUnexpectedTag),
		stderrors.Is(err, certutil.ErrCertificateParse),
		stderrors.Is(err, certutil.ErrNoPublicKey),
		stderrors.Is(err, sigutil.ErrDigestLength),
		stderrors.Is(err, sigutil.ErrComponentOverflow),
		stderrors.Is(err, sigutil.ErrUnsupportedHash):
		return pkcs11.CKR_DATA_INVALID
	default:
		return pkcs11.CKR_FUNCTION_FAILED
	}
}

// Error reports the PKCS#11 value for err and logs failures with the
// full cause chain.
func Error(op string, err error) uint {
	rv := RVFor(err)
	if rv != pkcs11.CKR_OK {
		logger.Errorf("op=%s, rv=0x%X, err=[%+v]", op, rv, err)
	}
	return rv
}
