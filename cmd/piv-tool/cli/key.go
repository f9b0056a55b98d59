package cli

import (
	"fmt"

	"github.com/effective-security/piv/certutil"
	"github.com/pkg/errors"
)

// KeyCmd is the parent for key commands
type KeyCmd struct {
	Info  KeyInfoCmd  `cmd:"" help:"print key information from a certificate object"`
	Point KeyPointCmd `cmd:"" help:"print the EC public key point from a certificate object"`
}

// KeyInfoCmd prints the key info
type KeyInfoCmd struct {
	File string `kong:"arg" required:"" help:"object blob file, or '-' for stdin"`
}

// Run the command
func (a *KeyInfoCmd) Run(ctx *Cli) error {
	blob, err := ctx.ReadFile(a.File)
	if err != nil {
		return err
	}

	crt, err := certutil.ParseCertificateObject(blob)
	if err != nil {
		return errors.WithMessagef(err, "unable to parse object: %s", a.File)
	}
	pub, err := certutil.PublicKeyOf(crt)
	if err != nil {
		return err
	}

	ki, err := certutil.NewKeyInfo(pub)
	if err != nil {
		return err
	}
	return ctx.WriteJSON(ki)
}

// KeyPointCmd prints the uncompressed EC point of the public key
type KeyPointCmd struct {
	File string `kong:"arg" required:"" help:"object blob file, or '-' for stdin"`
}

// Run the command
func (a *KeyPointCmd) Run(ctx *Cli) error {
	blob, err := ctx.ReadFile(a.File)
	if err != nil {
		return err
	}

	crt, err := certutil.ParseCertificateObject(blob)
	if err != nil {
		return errors.WithMessagef(err, "unable to parse object: %s", a.File)
	}
	pub, err := certutil.PublicKeyOf(crt)
	if err != nil {
		return err
	}

	buf := make([]byte, 1+2*48)
	n, err := certutil.EncodePublicKeyPoint(pub, buf)
	if err != nil {
		return err
	}

	dumpHex(ctx.Writer(), buf[:n], false)
	fmt.Fprintf(ctx.Writer(), "%d bytes\n", n)
	return nil
}
