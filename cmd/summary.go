package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/portfel-app/portfel"
	"github.com/portfel-app/portfel/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	title string
	share bool
	raw   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio summary" }
func (*summaryCmd) Usage() string {
	return `pfl summary [-title <title>] [-share]

  Displays the portfolio positions, the total value, the allocation by
  asset kind and the value-weighted year change. With -share, a
  shareable link is appended to the report.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "Portfolio", "Title of the report.")
	f.BoolVar(&c.share, "share", false, "Append a shareable link to the report.")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	view := renderer.NewSummaryView(c.title, portfel.Summarize(p.Assets()))

	if c.share && p.Len() > 0 {
		link, err := portfel.BuildShareLink("https://portfel.app", "/", p.Assets())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot build share link: %v\n", err)
		} else {
			view.ShareURL = link.URL
		}
	}

	output := renderer.RenderSummary(view)
	if c.raw {
		fmt.Print(output)
	} else {
		printMarkdown(output)
	}
	return subcommands.ExitSuccess
}
