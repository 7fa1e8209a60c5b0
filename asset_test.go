package portfel

import "testing"

func TestKindCodeBijective(t *testing.T) {
	kinds := []Kind{Other, Share, Bond, Currency, Crypto, Metal, Deposit, RealEstate, Business}
	seen := make(map[string]Kind)
	for _, k := range kinds {
		code := k.Code()
		if len(code) != 1 {
			t.Errorf("kind %v has a multi-character code %q", k, code)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("code %q is shared by %v and %v", code, prev, k)
		}
		seen[code] = k
		if got := KindFromCode(code); got != k {
			t.Errorf("KindFromCode(%q) = %v, want %v", code, got, k)
		}
	}
}

func TestKindParseRoundTrip(t *testing.T) {
	kinds := []Kind{Other, Share, Bond, Currency, Crypto, Metal, Deposit, RealEstate, Business}
	for _, k := range kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q) returned an error: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("futures"); err == nil {
		t.Error("ParseKind should reject unknown kinds")
	}
}

func TestRealEstateCategoryCodes(t *testing.T) {
	categories := []RealEstateCategory{Residential, Commercial, Land, SpecialPurpose}
	for _, c := range categories {
		if got := RealEstateCategoryFromCode(c.Code()); got != c {
			t.Errorf("category %v does not round trip through code %q", c, c.Code())
		}
	}
	if got := RealEstateCategoryFromCode("?"); got != Residential {
		t.Errorf("unknown category code should default to residential, got %v", got)
	}
}

func TestBusinessTypeCodes(t *testing.T) {
	types := []BusinessType{SmallBusiness, MediumBusiness, LargeBusiness, Startup,
		Franchise, OnlineBusiness, Services, Manufacturing, Trade, OtherBusiness}
	seen := make(map[string]BusinessType)
	for _, b := range types {
		code := b.Code()
		if prev, dup := seen[code]; dup {
			t.Errorf("code %q is shared by %v and %v", code, prev, b)
		}
		seen[code] = b
		if got := BusinessTypeFromCode(code); got != b {
			t.Errorf("business type %v does not round trip through code %q", b, code)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Сбербанк", 20, "Сбербанк"},
		{"Газпром нефть и газ и еще что-то", 20, "Газпром нефть и газ "},
		{"  padded  ", 20, "padded"},
		{"abc", 0, ""},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.n); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestConstructorsSetDefaults(t *testing.T) {
	if a := NewShare("X", "X", 1, 0, 0); a.Quantity != 1 {
		t.Errorf("zero quantity should default to 1, got %d", a.Quantity)
	}
	if a := NewDeposit("X", 1000, 10, 0); a.TermMonths != 12 {
		t.Errorf("zero term should default to 12 months, got %d", a.TermMonths)
	}
	if a := NewCurrency("Доллар", "USD", 92.5, 0, 5); a.Symbol() != "USD" {
		t.Errorf("currency symbol should be the code, got %q", a.Symbol())
	}
}
