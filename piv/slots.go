package piv

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot identifies a PIV key slot.
type Slot byte

// Standard slots per SP 800-73.
const (
	SlotAuthentication Slot = 0x9a
	SlotSignature      Slot = 0x9c
	SlotKeyManagement  Slot = 0x9d
	SlotCardAuth       Slot = 0x9e
)

// Retired key management slots.
const (
	SlotRetired1  Slot = 0x82
	SlotRetired20 Slot = 0x95
)

// String returns the hex slot name, e.g. "9a".
func (s Slot) String() string {
	return fmt.Sprintf("%02x", byte(s))
}

// IsRetired reports whether s is one of the 20 retired key management
// slots.
func (s Slot) IsRetired() bool {
	return s >= SlotRetired1 && s <= SlotRetired20
}

// ObjectID returns the card data object holding the certificate for
// the slot, zero when the slot is not recognized.
func (s Slot) ObjectID() int {
	switch s {
	case SlotAuthentication:
		return 0x5fc105
	case SlotSignature:
		return 0x5fc10a
	case SlotKeyManagement:
		return 0x5fc10b
	case SlotCardAuth:
		return 0x5fc101
	default:
		if s.IsRetired() {
			return 0x5fc10d + int(s-SlotRetired1)
		}
		return 0
	}
}

// ParseSlot maps a hex slot name from configuration to its value, zero
// when the name is not a known slot.
func ParseSlot(name string) Slot {
	v, err := strconv.ParseUint(strings.TrimPrefix(name, "0x"), 16, 8)
	if err != nil {
		return 0
	}
	s := Slot(v)
	if s.ObjectID() == 0 {
		return 0
	}
	return s
}
