package piv

// PINPolicy controls when key use requires the PIN.
type PINPolicy byte

// PIN policy values as encoded on the card. The zero value leaves the
// card default in place.
const (
	PINPolicyDefault PINPolicy = 0x00
	PINPolicyNever   PINPolicy = 0x01
	PINPolicyOnce    PINPolicy = 0x02
	PINPolicyAlways  PINPolicy = 0x03
)

// ParsePINPolicy maps a policy name from configuration to its card
// value, PINPolicyDefault when the name is not recognized.
func ParsePINPolicy(name string) PINPolicy {
	switch name {
	case "never":
		return PINPolicyNever
	case "once":
		return PINPolicyOnce
	case "always":
		return PINPolicyAlways
	default:
		return PINPolicyDefault
	}
}

// TouchPolicy controls when key use requires a touch.
type TouchPolicy byte

// Touch policy values as encoded on the card.
const (
	TouchPolicyDefault TouchPolicy = 0x00
	TouchPolicyNever   TouchPolicy = 0x01
	TouchPolicyAlways  TouchPolicy = 0x02
)

// ParseTouchPolicy maps a policy name from configuration to its card
// value, TouchPolicyDefault when the name is not recognized.
func ParseTouchPolicy(name string) TouchPolicy {
	switch name {
	case "never":
		return TouchPolicyNever
	case "always":
		return TouchPolicyAlways
	default:
		return TouchPolicyDefault
	}
}
