package cli

import (
	"fmt"

	"github.com/effective-security/piv/certutil"
	"github.com/effective-security/piv/piv"
	"github.com/pkg/errors"
)

// CertCmd is the parent for certificate object commands
type CertCmd struct {
	Parse CertParseCmd `cmd:"" help:"parse a card certificate object"`
}

// CertParseCmd parses a tagged certificate object blob
type CertParseCmd struct {
	File string `kong:"arg" required:"" help:"object blob file, or '-' for stdin"`
	Pem  bool   `help:"print the certificate in PEM form"`
}

// Run the command
func (a *CertParseCmd) Run(ctx *Cli) error {
	blob, err := ctx.ReadFile(a.File)
	if err != nil {
		return err
	}
	logger.Tracef("file=%q, size=%d", a.File, len(blob))

	crt, err := certutil.ParseCertificateObject(blob)
	if err != nil {
		return errors.WithMessagef(err, "unable to parse object: %s", a.File)
	}

	out := ctx.Writer()
	fmt.Fprintf(out, "Subject: %s\n", certutil.DNString(&crt.Subject))
	fmt.Fprintf(out, "Issuer: %s\n", certutil.DNString(&crt.Issuer))
	fmt.Fprintf(out, "Serial: %s\n", crt.SerialNumber.String())
	fmt.Fprintf(out, "Not before: %s\n", crt.NotBefore.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Not after: %s\n", crt.NotAfter.UTC().Format("2006-01-02 15:04:05 MST"))

	pub, err := certutil.PublicKeyOf(crt)
	if err != nil {
		return err
	}
	alg, err := piv.AlgorithmForKey(pub)
	if err != nil {
		return errors.WithMessage(err, "certificate key is not usable on a card")
	}
	fmt.Fprintf(out, "Algorithm: %s\n", alg)

	if a.Pem {
		pem, err := certutil.EncodeToPEMString(crt)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", pem)
	}
	return nil
}
