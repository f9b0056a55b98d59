package tlv

import (
	"github.com/pkg/errors"
)

// ParseTagged checks that b starts with the given tag byte, decodes the
// length field that follows, and returns the value bytes. The value
// aliases b; callers that keep it past the lifetime of b must copy.
func ParseTagged(tag byte, b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, errors.WithMessagef(ErrUnexpectedTag, "empty buffer, want 0x%02X", tag)
	}
	if b[0] != tag {
		return nil, errors.WithMessagef(ErrUnexpectedTag, "got 0x%02X, want 0x%02X", b[0], tag)
	}
	n, consumed, err := DecodeLength(b[1:])
	if err != nil {
		return nil, err
	}
	content := b[1+consumed:]
	if len(content) < n {
		return nil, errors.WithMessagef(ErrMalformedLength, "value truncated: want %d bytes, have %d", n, len(content))
	}
	return content[:n], nil
}

// EncodeTagged returns the tag byte, the encoded length of value, and
// the value itself as a single buffer.
func EncodeTagged(tag byte, value []byte) ([]byte, error) {
	out := make([]byte, 0, 4+len(value))
	out = append(out, tag)
	out, err := AppendLength(out, len(value))
	if err != nil {
		return nil, err
	}
	return append(out, value...), nil
}
