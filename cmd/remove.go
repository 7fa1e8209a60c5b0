package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an asset from the portfolio" }
func (*removeCmd) Usage() string {
	return `pfl remove <ticker-or-id>...

  Removes assets from the portfolio, identified by ticker (market assets)
  or by asset id as shown in the summary.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one <ticker-or-id> is required")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed := 0
	for _, arg := range f.Args() {
		if p.Remove(arg) {
			removed++
		} else {
			fmt.Fprintf(os.Stderr, "Warning: no asset matches %q\n", arg)
		}
	}
	if removed == 0 {
		return subcommands.ExitFailure
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d assets, portfolio now holds %d.\n", removed, p.Len())
	return subcommands.ExitSuccess
}
