package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/portfel-app/portfel"
)

type openCmd struct {
	merge bool
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a shared portfolio link or token" }
func (*openCmd) Usage() string {
	return `pfl open [-merge] <url-or-token>

  Decodes a shared portfolio and stores it as the working portfolio.
  Assets that cannot be decoded are skipped. By default the shared
  portfolio replaces the working one; use -merge to add its assets to
  the current holdings instead.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.merge, "merge", false, "Merge the shared assets into the working portfolio.")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one <url-or-token> is required")
		return subcommands.ExitUsageError
	}

	assets := portfel.DecodeToken(portfel.ParseShareToken(f.Arg(0)))
	if len(assets) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no assets could be decoded from the link")
		return subcommands.ExitFailure
	}

	p := portfel.NewPortfolio()
	if c.merge {
		var err error
		p, err = DecodePortfolio()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	for _, a := range assets {
		p.Add(a)
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened shared portfolio with %d assets.\n", len(assets))
	return subcommands.ExitSuccess
}
