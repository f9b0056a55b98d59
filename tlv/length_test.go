package tlv_test

import (
	"testing"

	"github.com/effective-security/piv/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLength(t *testing.T) {
	tcases := []struct {
		value    int
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x81, 0x80}},
		{0xfe, []byte{0x81, 0xfe}},
		// 0xFF is always emitted in the two-byte long form
		{0xff, []byte{0x82, 0x00, 0xff}},
		{0x100, []byte{0x82, 0x01, 0x00}},
		{0x1234, []byte{0x82, 0x12, 0x34}},
		{0xffff, []byte{0x82, 0xff, 0xff}},
	}

	for _, tc := range tcases {
		b, err := tlv.EncodeLength(tc.value)
		require.NoError(t, err, "value=%d", tc.value)
		assert.Equal(t, tc.expected, b, "value=%d", tc.value)
	}
}

func TestEncodeLengthTooLarge(t *testing.T) {
	_, err := tlv.EncodeLength(0x10000)
	require.Error(t, err)
	assert.ErrorIs(t, err, tlv.ErrValueTooLarge)

	_, err = tlv.EncodeLength(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, tlv.ErrValueTooLarge)
}

func TestDecodeLength(t *testing.T) {
	tcases := []struct {
		buf      []byte
		value    int
		consumed int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0x7f}, 0x7f, 1},
		{[]byte{0x81, 0x80}, 0x80, 2},
		{[]byte{0x81, 0xfe}, 0xfe, 2},
		{[]byte{0x82, 0x00, 0xff}, 0xff, 3},
		{[]byte{0x82, 0x12, 0x34}, 0x1234, 3},
		{[]byte{0x82, 0xff, 0xff}, 0xffff, 3},
		// trailing bytes are ignored
		{[]byte{0x05, 0xaa, 0xbb}, 5, 1},
	}

	for _, tc := range tcases {
		v, n, err := tlv.DecodeLength(tc.buf)
		require.NoError(t, err, "buf=%x", tc.buf)
		assert.Equal(t, tc.value, v, "buf=%x", tc.buf)
		assert.Equal(t, tc.consumed, n, "buf=%x", tc.buf)
	}
}

func TestDecodeLengthMalformed(t *testing.T) {
	tcases := [][]byte{
		nil,
		{},
		{0x80},             // low 7 bits zero
		{0x83, 0x01, 0x02}, // unsupported three-byte announcement
		{0xff},
		{0x81},       // truncated
		{0x82, 0x01}, // truncated
	}

	for _, buf := range tcases {
		_, _, err := tlv.DecodeLength(buf)
		require.Error(t, err, "buf=%x", buf)
		assert.ErrorIs(t, err, tlv.ErrMalformedLength, "buf=%x", buf)
	}
}

func TestLengthRoundTrip(t *testing.T) {
	for v := 0; v <= tlv.MaxLength; v++ {
		b, err := tlv.EncodeLength(v)
		require.NoError(t, err)

		decoded, consumed, err := tlv.DecodeLength(b)
		require.NoError(t, err)
		require.Equal(t, v, decoded, "value=%d", v)
		require.Equal(t, len(b), consumed, "value=%d", v)
	}
}

func TestAppendLength(t *testing.T) {
	b, err := tlv.AppendLength([]byte{0x70}, 0x80)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x70, 0x81, 0x80}, b)
}
