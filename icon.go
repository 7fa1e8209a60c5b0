package portfel

import (
	"net/url"
	"strings"
)

// IconKey is a symbolic icon reference the view layer maps to a local
// image, or IconCustom when the asset carries its own icon URL.
type IconKey string

const (
	IconDefault      IconKey = "default"
	IconBondOFZ      IconKey = "bond-ofz"
	IconBondDefault  IconKey = "bond-default"
	IconGold         IconKey = "metal-XAU"
	IconSilver       IconKey = "metal-XAG"
	IconPlatinum     IconKey = "metal-XPT"
	IconPalladium    IconKey = "metal-XPD"
	IconMetalDefault IconKey = "metal-default"
	IconDeposit      IconKey = "deposit"
	IconRealEstate   IconKey = "realestate"
	IconBusiness     IconKey = "business"
	// IconCustom marks assets with a resolved icon URL of their own.
	IconCustom IconKey = "has-icon"
)

// Code returns the single-character wire tag of the icon key.
// The mapping is bijective with IconKeyFromCode.
func (k IconKey) Code() string {
	switch k {
	case IconBondOFZ:
		return "z"
	case IconBondDefault:
		return "b"
	case IconGold:
		return "g"
	case IconSilver:
		return "v"
	case IconPlatinum:
		return "p"
	case IconPalladium:
		return "l"
	case IconMetalDefault:
		return "m"
	case IconDeposit:
		return "d"
	case IconRealEstate:
		return "r"
	case IconBusiness:
		return "u"
	case IconCustom:
		return "i"
	default:
		return "o"
	}
}

// IconKeyFromCode resolves a wire tag back into an IconKey, defaulting
// to IconDefault.
func IconKeyFromCode(code string) IconKey {
	switch code {
	case "z":
		return IconBondOFZ
	case "b":
		return IconBondDefault
	case "g":
		return IconGold
	case "v":
		return IconSilver
	case "p":
		return IconPlatinum
	case "l":
		return IconPalladium
	case "m":
		return IconMetalDefault
	case "d":
		return IconDeposit
	case "r":
		return IconRealEstate
	case "u":
		return IconBusiness
	case "i":
		return IconCustom
	default:
		return IconDefault
	}
}

// ClassifyIcon deterministically picks the icon key for an asset from
// its kind, market symbol, name and custom-URL presence. The classifier
// runs at encode time so the common case (a standard icon) costs a
// single character in the token.
func ClassifyIcon(a Asset) IconKey {
	switch a.Kind {
	case Bond:
		// Russian federal loan bonds (ОФЗ) have SU-prefixed tickers.
		if strings.HasPrefix(a.Ticker, "SU") || strings.Contains(a.Name, "ОФЗ") {
			return IconBondOFZ
		}
		return IconBondDefault
	case Metal:
		switch a.Ticker {
		case "XAU":
			return IconGold
		case "XAG":
			return IconSilver
		case "XPT":
			return IconPlatinum
		case "XPD":
			return IconPalladium
		}
		return IconMetalDefault
	case Deposit:
		return IconDeposit
	case RealEstate:
		return IconRealEstate
	case Business:
		return IconBusiness
	default:
		if a.IconURL != "" {
			return IconCustom
		}
		return IconDefault
	}
}

// encodedIconURL returns the URL string carried next to the icon tag.
// Only IconCustom assets carry one: currencies and cryptos keep the full
// URL (the view layer has no local fallback for them), everything else
// is truncated to scheme, host and the first three path segments.
func encodedIconURL(a Asset, key IconKey) string {
	if key != IconCustom {
		return ""
	}
	switch a.Kind {
	case Currency, Crypto:
		return a.IconURL
	default:
		return truncateIconURL(a.IconURL)
	}
}

// truncateIconURL keeps scheme, host and at most three path segments of
// a URL. Anything unparseable is carried as-is.
func truncateIconURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	path := strings.Join(segments, "/")
	if path != "" {
		path = "/" + path
	}
	return u.Scheme + "://" + u.Host + path
}
