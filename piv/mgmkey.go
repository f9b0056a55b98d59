package piv

import (
	"crypto/des" //nolint:staticcheck // 3DES is mandated by the card protocol
	"math/bits"

	"github.com/pkg/errors"
)

// ManagementKey is the 24-byte 3DES key used for card mutual
// authentication. The three single-DES subkeys are concatenated.
type ManagementKey [24]byte

// DefaultManagementKey is the well-known factory key. It must be
// rotated before a card is deployed.
var DefaultManagementKey = ManagementKey{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
}

// Weak and semi-weak DES keys, odd parity form.
var weakDESKeys = [16][8]byte{
	{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
	{0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe},
	{0x1f, 0x1f, 0x1f, 0x1f, 0x0e, 0x0e, 0x0e, 0x0e},
	{0xe0, 0xe0, 0xe0, 0xe0, 0xf1, 0xf1, 0xf1, 0xf1},

	{0x01, 0xfe, 0x01, 0xfe, 0x01, 0xfe, 0x01, 0xfe},
	{0xfe, 0x01, 0xfe, 0x01, 0xfe, 0x01, 0xfe, 0x01},
	{0x1f, 0xe0, 0x1f, 0xe0, 0x0e, 0xf1, 0x0e, 0xf1},
	{0xe0, 0x1f, 0xe0, 0x1f, 0xf1, 0x0e, 0xf1, 0x0e},
	{0x01, 0xe0, 0x01, 0xe0, 0x01, 0xf1, 0x01, 0xf1},
	{0xe0, 0x01, 0xe0, 0x01, 0xf1, 0x01, 0xf1, 0x01},
	{0x1f, 0xfe, 0x1f, 0xfe, 0x0e, 0xfe, 0x0e, 0xfe},
	{0xfe, 0x1f, 0xfe, 0x1f, 0xfe, 0x0e, 0xfe, 0x0e},
	{0x01, 0x1f, 0x01, 0x1f, 0x01, 0x0e, 0x01, 0x0e},
	{0x1f, 0x01, 0x1f, 0x01, 0x0e, 0x01, 0x0e, 0x01},
	{0xe0, 0xfe, 0xe0, 0xfe, 0xf1, 0xfe, 0xf1, 0xfe},
	{0xfe, 0xe0, 0xfe, 0xe0, 0xfe, 0xf1, 0xfe, 0xf1},
}

// IsWeakDES reports whether any of the three subkeys is a weak or
// semi-weak DES key. Parity bits are normalized to odd before the
// comparison, so keys differing only in parity are still rejected.
func (k *ManagementKey) IsWeakDES() bool {
	var norm [24]byte
	for i, b := range k {
		if bits.OnesCount8(b&0xfe)%2 == 0 {
			norm[i] = b&0xfe | 0x01
		} else {
			norm[i] = b & 0xfe
		}
	}
	for _, weak := range weakDESKeys {
		for off := 0; off < 24; off += 8 {
			if weak == [8]byte(norm[off:off+8]) {
				return true
			}
		}
	}
	return false
}

// EncryptBlock encrypts one 8-byte challenge block, as used in the
// card mutual authentication exchange.
func (k *ManagementKey) EncryptBlock(dst, src []byte) error {
	c, err := des.NewTripleDESCipher(k[:])
	if err != nil {
		return errors.WithStack(err)
	}
	if len(src) != des.BlockSize || len(dst) < des.BlockSize {
		return errors.Errorf("piv: challenge block must be %d bytes", des.BlockSize)
	}
	c.Encrypt(dst, src)
	return nil
}

// DecryptBlock decrypts one 8-byte witness block.
func (k *ManagementKey) DecryptBlock(dst, src []byte) error {
	c, err := des.NewTripleDESCipher(k[:])
	if err != nil {
		return errors.WithStack(err)
	}
	if len(src) != des.BlockSize || len(dst) < des.BlockSize {
		return errors.Errorf("piv: witness block must be %d bytes", des.BlockSize)
	}
	c.Decrypt(dst, src)
	return nil
}

// Zeroize clears the key material.
func (k *ManagementKey) Zeroize() {
	for i := range k {
		k[i] = 0
	}
}
