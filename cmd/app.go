// Package cmd implements the CLI application to manage and share a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/portfel-app/portfel"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&summaryCmd{}, "portfolio")

	c.Register(&shareCmd{}, "sharing")
	c.Register(&openCmd{}, "sharing")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the working portfolio file (JSONL format)")

// DecodePortfolio loads the working portfolio from the app portfolio file.
// A missing file is an empty portfolio, not an error.
func DecodePortfolio() (*portfel.Portfolio, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, portfolio file does not exist, starting from an empty portfolio")
		return portfel.NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()

	assets, err := portfel.DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", *portfolioFile, err)
	}
	p := portfel.NewPortfolio()
	p.Replace(assets)
	return p, nil
}

// EncodePortfolio persists the working portfolio into the app portfolio file.
func EncodePortfolio(p *portfel.Portfolio) error {
	f, err := os.Create(*portfolioFile)
	if err != nil {
		return fmt.Errorf("cannot create portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()

	if err := portfel.EncodePortfolio(f, p.Assets()); err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", *portfolioFile, err)
	}
	return nil
}
