package renderer

import "github.com/portfel-app/portfel"

// SummaryView is the flattened, display-ready form of a portfolio
// summary. Everything is pre-formatted so the templates stay dumb.
type SummaryView struct {
	Title       string
	Total       string
	YearChange  string
	Positions   []PositionRow
	Allocations []AllocationRow
	ShareURL    string
	Warning     string
}

// PositionRow is one line of the positions table.
type PositionRow struct {
	Kind     string
	Name     string
	Symbol   string
	Quantity int64
	Value    string
	Weight   string
}

// AllocationRow is one line of the per-kind allocation table.
type AllocationRow struct {
	Kind   string
	Value  string
	Weight string
}

// NewSummaryView flattens a portfolio summary for rendering. The share
// link section is filled by the caller when one was built.
func NewSummaryView(title string, s *portfel.Summary) *SummaryView {
	v := &SummaryView{
		Title:      title,
		Total:      s.Total.String(),
		YearChange: s.YearChange.SignedString(),
	}
	for _, p := range s.Positions {
		v.Positions = append(v.Positions, PositionRow{
			Kind:     p.Asset.Kind.String(),
			Name:     p.Asset.Name,
			Symbol:   p.Asset.Symbol(),
			Quantity: p.Asset.Quantity,
			Value:    p.Value.String(),
			Weight:   p.Weight.String(),
		})
	}
	for _, a := range s.Allocations {
		v.Allocations = append(v.Allocations, AllocationRow{
			Kind:   a.Kind.String(),
			Value:  a.Value.String(),
			Weight: a.Weight.String(),
		})
	}
	return v
}
