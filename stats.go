package portfel

// bondFaceValue is the fixed face value every bond quote refers to.
// Bond prices travel as a percent of it.
const bondFaceValue = 1000

// PositionValue computes the monetary value of one asset line:
// price times quantity for market assets, percent of face value for
// bonds, the held principal for deposits, properties and businesses.
func PositionValue(a Asset) Money {
	switch a.Kind {
	case Bond:
		return RUB(a.PricePercent).Scale(float64(a.Quantity) * bondFaceValue / 100)
	case Deposit:
		return RUB(a.Value)
	case Share, Crypto, Metal, Currency:
		return RUB(a.Price).MulInt(a.Quantity)
	default:
		return RUB(a.Value).MulInt(a.Quantity)
	}
}

// Position pairs an asset with its computed valuation.
type Position struct {
	Asset  Asset
	Value  Money
	Weight Percent
}

// Allocation is the aggregate value held in one asset kind.
type Allocation struct {
	Kind   Kind
	Value  Money
	Weight Percent
}

// Summary aggregates a portfolio for display: total value, per-position
// weights, per-kind allocation and the value-weighted year change.
type Summary struct {
	Total       Money
	Positions   []Position
	Allocations []Allocation
	YearChange  Percent
}

// Summarize values every position and aggregates the totals. It is a
// pure function of the asset list; order of positions is preserved and
// allocations follow first appearance of each kind.
func Summarize(assets []Asset) *Summary {
	s := &Summary{Total: RUB(0)}

	byKind := make(map[Kind]int)
	for _, a := range assets {
		value := PositionValue(a)
		s.Total = s.Total.Add(value)
		s.Positions = append(s.Positions, Position{Asset: a, Value: value})

		idx, seen := byKind[a.Kind]
		if !seen {
			idx = len(s.Allocations)
			byKind[a.Kind] = idx
			s.Allocations = append(s.Allocations, Allocation{Kind: a.Kind, Value: RUB(0)})
		}
		s.Allocations[idx].Value = s.Allocations[idx].Value.Add(value)
	}

	var weightedChange float64
	for i := range s.Positions {
		s.Positions[i].Weight = s.Positions[i].Value.Share(s.Total)
		weightedChange += float64(s.Positions[i].Weight) / 100 * s.Positions[i].Asset.YearChangePercent
	}
	for i := range s.Allocations {
		s.Allocations[i].Weight = s.Allocations[i].Value.Share(s.Total)
	}
	s.YearChange = Percent(weightedChange)
	return s
}
