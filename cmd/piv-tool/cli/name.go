package cli

import (
	"github.com/effective-security/piv/certutil"
	"github.com/pkg/errors"
)

// NameCmd is the parent for distinguished name commands
type NameCmd struct {
	Parse NameParseCmd `cmd:"" help:"parse a slash-separated distinguished name"`
}

// NameParseCmd parses a /key=value distinguished name
type NameParseCmd struct {
	DN string `kong:"arg" required:"" help:"name of the form /CN=test/O=org"`
}

// Run the command
func (a *NameParseCmd) Run(ctx *Cli) error {
	name, err := certutil.ParseDN(a.DN)
	if err != nil {
		return errors.WithMessagef(err, "unable to parse name: %q", a.DN)
	}
	return ctx.WriteJSON(name)
}
