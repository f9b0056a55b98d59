package cli

import (
	"crypto"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/effective-security/piv/sigutil"
	"github.com/pkg/errors"
)

// SignCmd is the parent for signature preparation commands
type SignCmd struct {
	DigestInfo DigestInfoCmd `cmd:"" help:"build a DigestInfo for raw RSA signing"`
	Component  ComponentCmd  `cmd:"" help:"encode a signature component into a fixed-width field"`
}

// DigestInfoCmd builds the DER DigestInfo for a raw digest
type DigestInfoCmd struct {
	File    string `kong:"arg" required:"" help:"digest file, or '-' for stdin"`
	Hash    string `help:"digest hash algorithm (SHA1|SHA256|SHA384|SHA512)" default:"SHA256"`
	Pad     bool   `help:"apply PKCS#1 v1.5 type 1 padding"`
	KeySize int    `help:"RSA modulus size in bytes for padding" default:"256"`
}

// Run the command
func (a *DigestInfoCmd) Run(ctx *Cli) error {
	digest, err := ctx.ReadFile(a.File)
	if err != nil {
		return err
	}

	hash, err := parseHash(a.Hash)
	if err != nil {
		return err
	}
	spec, err := sigutil.SpecFor(hash)
	if err != nil {
		return err
	}

	di, err := sigutil.BuildDigestInfo(spec, digest)
	if err != nil {
		return err
	}

	if a.Pad {
		di, err = sigutil.PadPKCS1v15(di, a.KeySize)
		if err != nil {
			return err
		}
	}

	dumpHex(ctx.Writer(), di, false)
	return nil
}

// ComponentCmd encodes a big integer into a length-prefixed
// fixed-width field
type ComponentCmd struct {
	Value string `kong:"arg" required:"" help:"hex encoded unsigned integer"`
	Width int    `required:"" help:"field width in bytes"`
}

// Run the command
func (a *ComponentCmd) Run(ctx *Cli) error {
	raw, err := hex.DecodeString(a.Value)
	if err != nil {
		return errors.WithMessage(err, "invalid hex value")
	}

	b, err := sigutil.EncodeComponent(new(big.Int).SetBytes(raw), a.Width)
	if err != nil {
		return err
	}

	dumpHex(ctx.Writer(), b, false)
	return nil
}

func parseHash(name string) (crypto.Hash, error) {
	switch strings.ToUpper(name) {
	case "SHA1":
		return crypto.SHA1, nil
	case "SHA256":
		return crypto.SHA256, nil
	case "SHA384":
		return crypto.SHA384, nil
	case "SHA512":
		return crypto.SHA512, nil
	default:
		return 0, errors.Errorf("unsupported hash: %s", name)
	}
}
