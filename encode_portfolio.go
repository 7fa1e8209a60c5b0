package portfel

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file persists a portfolio as JSONL, one asset per line, the
// working-file format of the pfl command line tool. It is deliberately
// human-readable and git-friendly, unlike the share token which is
// optimized for URL density.

// jasset is the persisted shape of an asset. Fields irrelevant to a
// kind stay empty and are omitted.
type jasset struct {
	Kind              string  `json:"kind"`
	Name              string  `json:"name"`
	Quantity          int64   `json:"quantity,omitempty"`
	Ticker            string  `json:"ticker,omitempty"`
	Code              string  `json:"code,omitempty"`
	Price             float64 `json:"price,omitempty"`
	PricePercent      float64 `json:"pricePercent,omitempty"`
	YearChangePercent float64 `json:"yearChangePercent,omitempty"`
	Value             float64 `json:"value,omitempty"`
	Rate              float64 `json:"rate,omitempty"`
	TermMonths        int     `json:"termMonths,omitempty"`
	Category          string  `json:"category,omitempty"`
	YieldPercent      float64 `json:"yieldPercent,omitempty"`
	Address           string  `json:"address,omitempty"`
	BusinessType      string  `json:"businessType,omitempty"`
	MonthlyProfit     float64 `json:"monthlyProfit,omitempty"`
	ProfitMargin      float64 `json:"profitMargin,omitempty"`
	IconURL           string  `json:"iconUrl,omitempty"`
}

// EncodeAsset marshals a single asset to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeAsset(w io.Writer, a Asset) error {
	ja := jasset{
		Kind:              a.Kind.String(),
		Name:              a.Name,
		Quantity:          a.Quantity,
		Ticker:            a.Ticker,
		Code:              a.Code,
		Price:             a.Price,
		PricePercent:      a.PricePercent,
		YearChangePercent: a.YearChangePercent,
		Value:             a.Value,
		Rate:              a.Rate,
		TermMonths:        a.TermMonths,
		YieldPercent:      a.YieldPercent,
		Address:           a.Address,
		MonthlyProfit:     a.MonthlyProfit,
		ProfitMargin:      a.ProfitMargin,
		IconURL:           a.IconURL,
	}
	// enum fields only where they mean something
	switch a.Kind {
	case RealEstate:
		ja.Category = a.Category.String()
	case Business:
		ja.BusinessType = a.BusinessType.String()
	}

	data, err := json.Marshal(ja)
	if err != nil {
		return fmt.Errorf("failed to marshal asset %q: %w", a.Name, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write asset: %w", err)
	}
	return nil
}

// EncodePortfolio persists assets to an io.Writer in JSONL format, in
// portfolio order.
func EncodePortfolio(w io.Writer, assets []Asset) error {
	for _, a := range assets {
		if err := EncodeAsset(w, a); err != nil {
			return err
		}
	}
	return nil
}

// DecodePortfolio reads a JSONL stream of assets. Unlike the share
// token decoder this one fails loud: the working file is local and
// editable, a typo in it deserves a line-numbered error, not silence.
// Every decoded asset gets a fresh local PortfolioID.
func DecodePortfolio(r io.Reader) ([]Asset, error) {
	var assets []Asset
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		if strings.TrimSpace(txt) == "" {
			continue
		}

		var ja jasset
		if err := json.Unmarshal([]byte(txt), &ja); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}

		a, err := assetFromPersisted(ja)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		a.PortfolioID = storeID(a)
		assets = append(assets, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading portfolio: %w", err)
	}
	return assets, nil
}

// assetFromPersisted rebuilds the tagged union from its persisted shape.
func assetFromPersisted(ja jasset) (Asset, error) {
	kind, err := ParseKind(ja.Kind)
	if err != nil {
		return Asset{}, err
	}

	var a Asset
	switch kind {
	case Share:
		a = NewShare(ja.Name, ja.Ticker, ja.Price, ja.YearChangePercent, ja.Quantity)
	case Crypto:
		a = NewCrypto(ja.Name, ja.Ticker, ja.Price, ja.YearChangePercent, ja.Quantity)
	case Metal:
		a = NewMetal(ja.Name, ja.Ticker, ja.Price, ja.YearChangePercent, ja.Quantity)
	case Bond:
		a = NewBond(ja.Name, ja.Ticker, ja.PricePercent, ja.YearChangePercent, ja.Quantity)
	case Currency:
		a = NewCurrency(ja.Name, ja.Code, ja.Price, ja.YearChangePercent, ja.Quantity)
	case Deposit:
		a = NewDeposit(ja.Name, ja.Value, ja.Rate, ja.TermMonths)
	case RealEstate:
		category := Residential
		if ja.Category != "" {
			if category, err = ParseRealEstateCategory(ja.Category); err != nil {
				return Asset{}, err
			}
		}
		a = NewRealEstate(ja.Name, ja.Value, category, ja.YieldPercent, ja.Address)
	case Business:
		businessType := SmallBusiness
		if ja.BusinessType != "" {
			if businessType, err = ParseBusinessType(ja.BusinessType); err != nil {
				return Asset{}, err
			}
		}
		a = NewBusiness(ja.Name, ja.Value, businessType, ja.MonthlyProfit, ja.ProfitMargin)
	default:
		a = Asset{Kind: Other, Name: ja.Name, Value: ja.Value, Quantity: defaultQuantity(ja.Quantity)}
	}
	a.IconURL = ja.IconURL
	return a, nil
}
