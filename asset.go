package portfel

import (
	"fmt"
	"strings"
)

// maxNameRunes is the hard length bound applied to asset names when a
// portfolio goes through the share codec. Decoding never recovers the
// truncated characters, this loss is intentional to keep tokens small.
const maxNameRunes = 20

// maxAddressRunes bounds the optional real-estate address the same way.
const maxAddressRunes = 30

// Kind is the discriminant of the Asset tagged union. It is set at
// creation and fully determines which payload fields are meaningful.
type Kind int

const (
	// Other is the catch-all kind for records whose tag is not recognized,
	// for example tokens produced by a newer format revision.
	Other Kind = iota
	// Share is an exchange traded stock.
	Share
	// Bond is a fixed income security quoted as a percent of a 1000-unit face value.
	Bond
	// Currency is a foreign currency position.
	Currency
	// Crypto is a cryptocurrency position.
	Crypto
	// Metal is a precious metal position (gold, silver, platinum, palladium).
	Metal
	// Deposit is a fixed-term bank deposit.
	Deposit
	// RealEstate is a real estate property.
	RealEstate
	// Business is a privately held business.
	Business
)

// Code returns the single-character wire tag for the kind.
// The mapping is bijective with KindFromCode.
func (k Kind) Code() string {
	switch k {
	case Share:
		return "s"
	case Bond:
		return "b"
	case Currency:
		return "c"
	case Crypto:
		return "x"
	case Metal:
		return "m"
	case Deposit:
		return "d"
	case RealEstate:
		return "r"
	case Business:
		return "u"
	default:
		return "o"
	}
}

// KindFromCode resolves a wire tag back into a Kind. Unrecognized tags
// map to Other rather than failing the record.
func KindFromCode(code string) Kind {
	switch code {
	case "s":
		return Share
	case "b":
		return Bond
	case "c":
		return Currency
	case "x":
		return Crypto
	case "m":
		return Metal
	case "d":
		return Deposit
	case "r":
		return RealEstate
	case "u":
		return Business
	default:
		return Other
	}
}

func (k Kind) String() string {
	switch k {
	case Share:
		return "share"
	case Bond:
		return "bond"
	case Currency:
		return "currency"
	case Crypto:
		return "crypto"
	case Metal:
		return "metal"
	case Deposit:
		return "deposit"
	case RealEstate:
		return "realestate"
	case Business:
		return "business"
	default:
		return "other"
	}
}

// ParseKind parses a kind name as used in the portfolio file and on the CLI.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "share":
		return Share, nil
	case "bond":
		return Bond, nil
	case "currency":
		return Currency, nil
	case "crypto":
		return Crypto, nil
	case "metal":
		return Metal, nil
	case "deposit":
		return Deposit, nil
	case "realestate":
		return RealEstate, nil
	case "business":
		return Business, nil
	case "other":
		return Other, nil
	default:
		return 0, fmt.Errorf("unknown asset kind: %q", s)
	}
}

// RealEstateCategory is the closed set of property categories.
type RealEstateCategory int

const (
	// Residential housing, the decode-time default.
	Residential RealEstateCategory = iota
	// Commercial property.
	Commercial
	// Land plots.
	Land
	// SpecialPurpose property (warehouses, infrastructure, ...).
	SpecialPurpose
)

// Code returns the single-character wire tag of the category.
func (c RealEstateCategory) Code() string {
	switch c {
	case Commercial:
		return "c"
	case Land:
		return "l"
	case SpecialPurpose:
		return "s"
	default:
		return "h"
	}
}

// RealEstateCategoryFromCode resolves a wire tag back into a category,
// defaulting to Residential.
func RealEstateCategoryFromCode(code string) RealEstateCategory {
	switch code {
	case "c":
		return Commercial
	case "l":
		return Land
	case "s":
		return SpecialPurpose
	default:
		return Residential
	}
}

func (c RealEstateCategory) String() string {
	switch c {
	case Commercial:
		return "commercial"
	case Land:
		return "land"
	case SpecialPurpose:
		return "special"
	default:
		return "residential"
	}
}

// ParseRealEstateCategory parses a category name.
func ParseRealEstateCategory(s string) (RealEstateCategory, error) {
	switch s {
	case "residential":
		return Residential, nil
	case "commercial":
		return Commercial, nil
	case "land":
		return Land, nil
	case "special":
		return SpecialPurpose, nil
	default:
		return 0, fmt.Errorf("unknown real estate category: %q", s)
	}
}

// BusinessType is the closed set of business classifications.
type BusinessType int

const (
	// SmallBusiness is the decode-time default.
	SmallBusiness BusinessType = iota
	MediumBusiness
	LargeBusiness
	Startup
	Franchise
	OnlineBusiness
	Services
	Manufacturing
	Trade
	OtherBusiness
)

// Code returns the single-character wire tag of the business type.
func (b BusinessType) Code() string {
	switch b {
	case MediumBusiness:
		return "m"
	case LargeBusiness:
		return "l"
	case Startup:
		return "t"
	case Franchise:
		return "f"
	case OnlineBusiness:
		return "i"
	case Services:
		return "v"
	case Manufacturing:
		return "p"
	case Trade:
		return "g"
	case OtherBusiness:
		return "o"
	default:
		return "s"
	}
}

// BusinessTypeFromCode resolves a wire tag back into a business type,
// defaulting to SmallBusiness.
func BusinessTypeFromCode(code string) BusinessType {
	switch code {
	case "m":
		return MediumBusiness
	case "l":
		return LargeBusiness
	case "t":
		return Startup
	case "f":
		return Franchise
	case "i":
		return OnlineBusiness
	case "v":
		return Services
	case "p":
		return Manufacturing
	case "g":
		return Trade
	case "o":
		return OtherBusiness
	default:
		return SmallBusiness
	}
}

func (b BusinessType) String() string {
	switch b {
	case MediumBusiness:
		return "medium"
	case LargeBusiness:
		return "large"
	case Startup:
		return "startup"
	case Franchise:
		return "franchise"
	case OnlineBusiness:
		return "online"
	case Services:
		return "services"
	case Manufacturing:
		return "manufacturing"
	case Trade:
		return "trade"
	case OtherBusiness:
		return "other"
	default:
		return "small"
	}
}

// ParseBusinessType parses a business type name.
func ParseBusinessType(s string) (BusinessType, error) {
	switch s {
	case "small":
		return SmallBusiness, nil
	case "medium":
		return MediumBusiness, nil
	case "large":
		return LargeBusiness, nil
	case "startup":
		return Startup, nil
	case "franchise":
		return Franchise, nil
	case "online":
		return OnlineBusiness, nil
	case "services":
		return Services, nil
	case "manufacturing":
		return Manufacturing, nil
	case "trade":
		return Trade, nil
	case "other":
		return OtherBusiness, nil
	default:
		return 0, fmt.Errorf("unknown business type: %q", s)
	}
}

// Asset is a single position in a portfolio. It is a tagged union: Kind
// selects which payload fields are meaningful, constructors guarantee
// that no asset carries fields from more than one payload.
//
// PortfolioID is a per-session identity. It is never transmitted in a
// share token and is regenerated on every decode, so two decodes of the
// same token yield different ids on purpose.
type Asset struct {
	Kind        Kind
	Name        string
	Quantity    int64
	PortfolioID string
	IconKey     IconKey
	IconURL     string

	// share, crypto, metal and currency payload.
	Price             float64
	Ticker            string
	Code              string // ISO-like currency code, currency kind only
	YearChangePercent float64

	// bond payload. Quoted as percent of a fixed 1000-unit face value.
	PricePercent float64

	// deposit payload.
	Value      float64
	Rate       float64
	TermMonths int

	// realestate payload.
	Category     RealEstateCategory
	YieldPercent float64
	Address      string

	// business payload.
	BusinessType  BusinessType
	MonthlyProfit float64
	ProfitMargin  float64
}

// NewShare creates a stock position.
func NewShare(name, ticker string, price, yearChangePercent float64, quantity int64) Asset {
	return Asset{Kind: Share, Name: name, Ticker: ticker, Price: price,
		YearChangePercent: yearChangePercent, Quantity: defaultQuantity(quantity)}
}

// NewBond creates a bond position. pricePercent is the quote in percent
// of the 1000-unit face value.
func NewBond(name, ticker string, pricePercent, yearChangePercent float64, quantity int64) Asset {
	return Asset{Kind: Bond, Name: name, Ticker: ticker, PricePercent: pricePercent,
		YearChangePercent: yearChangePercent, Quantity: defaultQuantity(quantity)}
}

// NewCurrency creates a foreign currency position.
func NewCurrency(name, code string, price, yearChangePercent float64, quantity int64) Asset {
	return Asset{Kind: Currency, Name: name, Code: code, Price: price,
		YearChangePercent: yearChangePercent, Quantity: defaultQuantity(quantity)}
}

// NewCrypto creates a cryptocurrency position.
func NewCrypto(name, ticker string, price, yearChangePercent float64, quantity int64) Asset {
	return Asset{Kind: Crypto, Name: name, Ticker: ticker, Price: price,
		YearChangePercent: yearChangePercent, Quantity: defaultQuantity(quantity)}
}

// NewMetal creates a precious metal position.
func NewMetal(name, ticker string, price, yearChangePercent float64, quantity int64) Asset {
	return Asset{Kind: Metal, Name: name, Ticker: ticker, Price: price,
		YearChangePercent: yearChangePercent, Quantity: defaultQuantity(quantity)}
}

// NewDeposit creates a fixed-term deposit position. rate is the yearly
// percent, termMonths defaults to 12 when not positive.
func NewDeposit(name string, value, rate float64, termMonths int) Asset {
	if termMonths <= 0 {
		termMonths = 12
	}
	return Asset{Kind: Deposit, Name: name, Value: value, Rate: rate,
		TermMonths: termMonths, Quantity: 1}
}

// NewRealEstate creates a property position.
func NewRealEstate(name string, value float64, category RealEstateCategory, yieldPercent float64, address string) Asset {
	return Asset{Kind: RealEstate, Name: name, Value: value, Category: category,
		YieldPercent: yieldPercent, Address: address, Quantity: 1}
}

// NewBusiness creates a private business position.
func NewBusiness(name string, value float64, businessType BusinessType, monthlyProfit, profitMargin float64) Asset {
	return Asset{Kind: Business, Name: name, Value: value, BusinessType: businessType,
		MonthlyProfit: monthlyProfit, ProfitMargin: profitMargin, Quantity: 1}
}

func defaultQuantity(q int64) int64 {
	if q <= 0 {
		return 1
	}
	return q
}

// Symbol returns the short market identifier of the asset: ticker for
// securities, code for currencies, empty otherwise.
func (a Asset) Symbol() string {
	if a.Kind == Currency {
		return a.Code
	}
	return a.Ticker
}

// mergeKey identifies assets that accumulate into a single position when
// added twice. Deposits, real estate and businesses never merge.
func (a Asset) mergeKey() (key string, mergeable bool) {
	switch a.Kind {
	case Deposit, RealEstate, Business:
		return "", false
	default:
		sym := a.Symbol()
		if sym == "" {
			sym = a.Name
		}
		return a.Kind.Code() + "-" + sym, true
	}
}

// truncate shortens s to at most n runes. Share tokens carry names and
// addresses in truncated form.
func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n])
}
