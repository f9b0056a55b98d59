package card11_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/effective-security/piv/card11"
	"github.com/effective-security/piv/certutil"
	"github.com/effective-security/piv/piv"
	"github.com/effective-security/piv/sigutil"
	"github.com/effective-security/piv/tlv"
	"github.com/miekg/pkcs11"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func certObjectBlob(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: "shim test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	blob, err := certutil.EncodeCertificateObject(der)
	require.NoError(t, err)
	return blob
}

func TestStoreCertificate(t *testing.T) {
	obj, err := card11.StoreCertificate(certObjectBlob(t))
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "shim test", obj.Cert.Subject.CommonName)
	assert.Equal(t, piv.AlgECCP256, obj.Algorithm)
	assert.NotNil(t, obj.PublicKey)

	attrs := obj.Attributes([]byte{0x01})
	require.NotEmpty(t, attrs)

	obj.Release()
	assert.Nil(t, obj.Cert)
	assert.Nil(t, obj.PublicKey)
	assert.Equal(t, piv.AlgUnknown, obj.Algorithm)
}

func TestStoreCertificateBadBlob(t *testing.T) {
	_, err := card11.StoreCertificate([]byte{0x30, 0x82, 0x01, 0x00})
	require.Error(t, err)
	assert.ErrorIs(t, err, tlv.ErrUnexpectedTag)

	blob, err := tlv.EncodeTagged(certutil.TagCertificate, []byte{0x01})
	require.NoError(t, err)
	_, err = card11.StoreCertificate(blob)
	require.Error(t, err)
	assert.ErrorIs(t, err, certutil.ErrCertificateParse)
}

func TestRVFor(t *testing.T) {
	tcases := []struct {
		err      error
		expected uint
	}{
		{nil, pkcs11.CKR_OK},
		{certutil.ErrBufferTooSmall, pkcs11.CKR_BUFFER_TOO_SMALL},
		{certutil.ErrUnimplemented, pkcs11.CKR_FUNCTION_NOT_SUPPORTED},
		{piv.ErrUnsupportedKeySize, pkcs11.CKR_ATTRIBUTE_VALUE_INVALID},
		{piv.ErrUnsupportedCurve, pkcs11.CKR_ATTRIBUTE_VALUE_INVALID},
		{piv.ErrUnsupportedKeyType, pkcs11.CKR_ATTRIBUTE_VALUE_INVALID},
		{tlv.ErrMalformedLength, pkcs11.CKR_DATA_INVALID},
		{tlv.ErrValueTooLarge, pkcs11.CKR_DATA_INVALID},
		{tlv.ErrUnexpectedTag, pkcs11.CKR_DATA_INVALID},
		{certutil.ErrCertificateParse, pkcs11.CKR_DATA_INVALID},
		{certutil.ErrNoPublicKey, pkcs11.CKR_DATA_INVALID},
		{sigutil.ErrDigestLength, pkcs11.CKR_DATA_INVALID},
		{sigutil.ErrComponentOverflow, pkcs11.CKR_DATA_INVALID},
		{errors.New("transport failure"), pkcs11.CKR_FUNCTION_FAILED},
	}

	for _, tc := range tcases {
		assert.Equal(t, tc.expected, card11.RVFor(tc.err), "err=%v", tc.err)
		// wrapped errors map the same way
		if tc.err != nil {
			wrapped := errors.WithMessage(tc.err, "while storing object")
			assert.Equal(t, tc.expected, card11.RVFor(wrapped), "wrapped err=%v", tc.err)
		}
	}
}

func TestErrorLogs(t *testing.T) {
	assert.Equal(t, uint(pkcs11.CKR_OK), card11.Error("C_Sign", nil))
	assert.Equal(t, uint(pkcs11.CKR_DATA_INVALID), card11.Error("C_Sign", tlv.ErrMalformedLength))
}

func TestKeyTypeFor(t *testing.T) {
	assert.Equal(t, uint(pkcs11.CKK_RSA), card11.KeyTypeFor(piv.AlgRSA1024))
	assert.Equal(t, uint(pkcs11.CKK_RSA), card11.KeyTypeFor(piv.AlgRSA2048))
	assert.Equal(t, uint(pkcs11.CKK_EC), card11.KeyTypeFor(piv.AlgECCP256))
	assert.Equal(t, uint(pkcs11.CKK_EC), card11.KeyTypeFor(piv.AlgECCP384))
	assert.Equal(t, uint(pkcs11.CKK_VENDOR_DEFINED), card11.KeyTypeFor(piv.AlgUnknown))
}
