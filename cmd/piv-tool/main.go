package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/effective-security/piv/cmd/piv-tool/cli"
	"github.com/effective-security/piv/internal/version"
	"github.com/effective-security/x/ctl"
)

type app struct {
	cli.Cli

	Cert cli.CertCmd `cmd:"" help:"Certificate object commands"`
	Key  cli.KeyCmd  `cmd:"" help:"Key commands"`
	Sign cli.SignCmd `cmd:"" help:"Signature preparation commands"`
	Name cli.NameCmd `cmd:"" help:"Distinguished name commands"`
}

func main() {
	realMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func realMain(args []string, out io.Writer, errout io.Writer, exit func(int)) {
	cl := app{
		Cli: cli.Cli{},
	}
	cl.Cli.WithErrWriter(errout).
		WithWriter(out)

	parser, err := kong.New(&cl,
		kong.Name("piv-tool"),
		kong.Description("CLI tool for PIV card objects"),
		kong.Writers(out, errout),
		kong.Exit(exit),
		ctl.BoolPtrMapper,
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.Current().String(),
		})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args[1:])
	parser.FatalIfErrorf(err)

	if ctx != nil {
		if cl.Debug {
			// in DEBUG mode print command line
			_, _ = fmt.Fprintf(ctx.Stdout, "#\n# %s\n#\n", strings.Join(args, " "))
		}
		err = ctx.Run(&cl.Cli)
		ctx.FatalIfErrorf(err)
	}
}
