package certutil

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxDNLength bounds the accepted distinguished name string.
const MaxDNLength = 1024

var oidEmailAddress = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}

// ParseDN parses a slash-separated name of the form /CN=test/O=org
// into a pkix.Name. The name must start with '/', every segment must
// contain '=', and the whole string may not exceed MaxDNLength.
func ParseDN(s string) (*pkix.Name, error) {
	if len(s) > MaxDNLength {
		return nil, errors.Errorf("name exceeds %d characters", MaxDNLength)
	}
	if s == "" || s[0] != '/' {
		return nil, errors.Errorf("name does not start with '/'")
	}

	name := new(pkix.Name)
	for _, part := range strings.Split(s[1:], "/") {
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, errors.Errorf("segment %q does not contain '='", part)
		}
		switch strings.ToUpper(key) {
		case "CN":
			name.CommonName = value
		case "SERIALNUMBER":
			name.SerialNumber = value
		case "C":
			name.Country = append(name.Country, value)
		case "L":
			name.Locality = append(name.Locality, value)
		case "ST":
			name.Province = append(name.Province, value)
		case "STREET":
			name.StreetAddress = append(name.StreetAddress, value)
		case "O":
			name.Organization = append(name.Organization, value)
		case "OU":
			name.OrganizationalUnit = append(name.OrganizationalUnit, value)
		case "POSTALCODE":
			name.PostalCode = append(name.PostalCode, value)
		case "EMAIL", "EMAILADDRESS":
			name.ExtraNames = append(name.ExtraNames, pkix.AttributeTypeAndValue{
				Type:  oidEmailAddress,
				Value: value,
			})
		default:
			return nil, errors.Errorf("unsupported name attribute %q", key)
		}
	}
	return name, nil
}

// DNString formats the subject in the slash-separated form accepted by
// ParseDN.
func DNString(name *pkix.Name) string {
	var b strings.Builder
	add := func(key string, values ...string) {
		for _, v := range values {
			if v != "" {
				fmt.Fprintf(&b, "/%s=%s", key, v)
			}
		}
	}
	add("CN", name.CommonName)
	add("SERIALNUMBER", name.SerialNumber)
	add("C", name.Country...)
	add("L", name.Locality...)
	add("ST", name.Province...)
	add("STREET", name.StreetAddress...)
	add("O", name.Organization...)
	add("OU", name.OrganizationalUnit...)
	add("POSTALCODE", name.PostalCode...)
	for _, extra := range name.ExtraNames {
		if extra.Type.Equal(oidEmailAddress) {
			if v, ok := extra.Value.(string); ok {
				add("EMAIL", v)
			}
		}
	}
	return b.String()
}
