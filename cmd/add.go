package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/portfel-app/portfel"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind     string
	name     string
	ticker   string
	iconURL  string
	quantity int64

	price             float64
	yearChangePercent float64
	pricePercent      float64

	value      float64
	rate       float64
	termMonths int

	category     string
	yieldPercent float64
	address      string

	businessType  string
	monthlyProfit float64
	profitMargin  float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to the portfolio" }
func (*addCmd) Usage() string {
	return `pfl add -k <kind> -n <name> [flags]

  Adds an asset to the portfolio. Adding a market asset (share, bond,
  currency, crypto, metal) with the same ticker merges with the existing
  position. Deposits, real estate and businesses are always added as
  separate positions.

Usage Examples:
# Add 10 shares.
$ pfl add -k share -n "Сбербанк" -t SBER -price 285.45 -change 1.2 -q 10

# Add a deposit.
$ pfl add -k deposit -n "Вклад" -value 100000 -rate 12.5 -term 6
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Asset kind (share, bond, currency, crypto, metal, deposit, realestate, business).")
	f.StringVar(&c.name, "n", "", "Display name of the asset.")
	f.StringVar(&c.ticker, "t", "", "Ticker, ISIN or currency code of a market asset.")
	f.StringVar(&c.iconURL, "icon", "", "URL of the asset logo.")
	f.Int64Var(&c.quantity, "q", 1, "Quantity held.")
	f.Float64Var(&c.price, "price", 0, "Unit price of a market asset.")
	f.Float64Var(&c.yearChangePercent, "change", 0, "Year change in percent.")
	f.Float64Var(&c.pricePercent, "price-percent", 100, "Bond price as a percentage of face value.")
	f.Float64Var(&c.value, "value", 0, "Total value of a deposit, real estate or business.")
	f.Float64Var(&c.rate, "rate", 0, "Deposit interest rate in percent.")
	f.IntVar(&c.termMonths, "term", 12, "Deposit term in months.")
	f.StringVar(&c.category, "category", "residential", "Real estate category (residential, commercial, land).")
	f.Float64Var(&c.yieldPercent, "yield", 0, "Real estate rental yield in percent.")
	f.StringVar(&c.address, "address", "", "Real estate address.")
	f.StringVar(&c.businessType, "business-type", "small", "Business type (small, medium, large, startup).")
	f.Float64Var(&c.monthlyProfit, "profit", 0, "Business monthly profit.")
	f.Float64Var(&c.profitMargin, "margin", 0, "Business profit margin in percent.")
}

// asset builds the Asset described by the flags.
func (c *addCmd) asset() (portfel.Asset, error) {
	kind, err := portfel.ParseKind(c.kind)
	if err != nil {
		return portfel.Asset{}, err
	}
	switch kind {
	case portfel.Share:
		return c.withIcon(portfel.NewShare(c.name, c.ticker, c.price, c.yearChangePercent, c.quantity)), nil
	case portfel.Bond:
		return c.withIcon(portfel.NewBond(c.name, c.ticker, c.pricePercent, c.yearChangePercent, c.quantity)), nil
	case portfel.Currency:
		return c.withIcon(portfel.NewCurrency(c.name, c.ticker, c.price, c.yearChangePercent, c.quantity)), nil
	case portfel.Crypto:
		return c.withIcon(portfel.NewCrypto(c.name, c.ticker, c.price, c.yearChangePercent, c.quantity)), nil
	case portfel.Metal:
		return c.withIcon(portfel.NewMetal(c.name, c.ticker, c.price, c.yearChangePercent, c.quantity)), nil
	case portfel.Deposit:
		return portfel.NewDeposit(c.name, c.value, c.rate, c.termMonths), nil
	case portfel.RealEstate:
		category, err := portfel.ParseRealEstateCategory(c.category)
		if err != nil {
			return portfel.Asset{}, err
		}
		return portfel.NewRealEstate(c.name, c.value, category, c.yieldPercent, c.address), nil
	case portfel.Business:
		businessType, err := portfel.ParseBusinessType(c.businessType)
		if err != nil {
			return portfel.Asset{}, err
		}
		return portfel.NewBusiness(c.name, c.value, businessType, c.monthlyProfit, c.profitMargin), nil
	default:
		return portfel.Asset{}, fmt.Errorf("unsupported asset kind %q", c.kind)
	}
}

func (c *addCmd) withIcon(a portfel.Asset) portfel.Asset {
	if c.iconURL != "" {
		a.IconURL = c.iconURL
		a.IconKey = portfel.ClassifyIcon(a)
	}
	return a
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n <name> is required")
		return subcommands.ExitUsageError
	}
	asset, err := c.asset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p.Add(asset)

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q, portfolio now holds %d assets.\n", asset.Name, p.Len())
	return subcommands.ExitSuccess
}
