package portfel

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Portfolio is the canonical in-memory asset list. It is the encoder's
// input and the decoder's output destination; the codec itself never
// touches it.
type Portfolio struct {
	assets []Asset
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{assets: make([]Asset, 0)}
}

// Add inserts an asset. Market assets (shares, bonds, currencies,
// cryptos, metals) that are already held merge into the existing
// position: quantities accumulate, prices refresh, the original
// PortfolioID survives and a newly supplied icon URL wins. Deposits,
// real estate and businesses are always distinct positions, two
// deposits with the same rate are still two deposits.
func (p *Portfolio) Add(a Asset) {
	key, mergeable := a.mergeKey()
	if mergeable {
		for i := range p.assets {
			existing, _ := p.assets[i].mergeKey()
			if existing == key {
				keep := p.assets[i]
				a.Quantity = keep.Quantity + defaultQuantity(a.Quantity)
				a.PortfolioID = keep.PortfolioID
				if a.IconURL == "" {
					a.IconURL = keep.IconURL
					a.IconKey = keep.IconKey
				}
				p.assets[i] = a
				return
			}
		}
	}
	if a.Quantity <= 0 {
		a.Quantity = 1
	}
	if a.PortfolioID == "" {
		a.PortfolioID = storeID(a)
	}
	p.assets = append(p.assets, a)
}

// Remove drops the position identified by its PortfolioID or, as a
// convenience for the CLI, by its market symbol. It reports whether
// anything was removed.
func (p *Portfolio) Remove(idOrSymbol string) bool {
	kept := p.assets[:0]
	removed := false
	for _, a := range p.assets {
		if a.PortfolioID == idOrSymbol || (a.Symbol() != "" && a.Symbol() == idOrSymbol) {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	p.assets = kept
	return removed
}

// Replace adopts a decoded asset list wholesale, dropping the previous
// content. This is the page-load path: decode then replace, never merge.
func (p *Portfolio) Replace(assets []Asset) {
	p.assets = make([]Asset, len(assets))
	copy(p.assets, assets)
}

// Assets returns a copy of the positions in insertion order.
func (p *Portfolio) Assets() []Asset {
	out := make([]Asset, len(p.assets))
	copy(out, p.assets)
	return out
}

// Len returns the number of positions.
func (p *Portfolio) Len() int { return len(p.assets) }

// storeID builds a locally unique id for an asset added directly to the
// store (as opposed to one reconstructed by the decoder).
func storeID(a Asset) string {
	sym := a.Symbol()
	if sym == "" {
		sym = a.Kind.String()
	}
	stamp := strconv.FormatInt(time.Now().UnixNano(), 36)
	return fmt.Sprintf("%s-%s-%s%02d", a.Kind.Code(), sym, stamp, rand.Intn(100))
}
