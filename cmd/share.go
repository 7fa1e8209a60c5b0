package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/portfel-app/portfel"
)

// shareCmd holds the flags for the 'share' subcommand.
type shareCmd struct {
	origin    string
	path      string
	tokenOnly bool
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "build a shareable link for the portfolio" }
func (*shareCmd) Usage() string {
	return `pfl share [-origin <origin>] [-token]

  Encodes the portfolio into a compact token and prints a shareable URL.
  Opening the URL restores a read-only copy of the portfolio. The token
  carries no account data, only the asset list itself.
`
}

func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.origin, "origin", "https://portfel.app", "Origin of the viewer application.")
	f.StringVar(&c.path, "path", "/", "Path of the viewer page.")
	f.BoolVar(&c.tokenOnly, "token", false, "Print only the bare token instead of the full URL.")
}

func (c *shareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: portfolio is empty, nothing to share")
		return subcommands.ExitFailure
	}

	link, err := portfel.BuildShareLink(c.origin, c.path, p.Assets())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if link.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", link.Warning)
	}

	if c.tokenOnly {
		fmt.Println(link.Token)
	} else {
		fmt.Println(link.URL)
	}
	return subcommands.ExitSuccess
}
