package portfel

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// shareParam is the query parameter carrying the token in a share URL.
const shareParam = "d"

// Share URL length budget. Above softURLBudget the cosmetic short id is
// dropped to save five characters; above hardURLBudget sharing fails
// outright. Browsers and chat clients start mangling URLs around 2000
// characters.
const (
	softURLBudget = 1800
	hardURLBudget = 2000
)

// ErrPortfolioTooLarge is returned when a portfolio cannot fit the URL
// budget even without the short id. Assets are never silently dropped.
var ErrPortfolioTooLarge = errors.New("portfolio too large to share")

// ShareLink is the result of a successful share operation.
type ShareLink struct {
	// URL is the complete shareable address.
	URL string
	// Token is the encoded portfolio payload, without the short id.
	Token string
	// ShortID is the cosmetic 4-character label. It may be absent from
	// URL when the length budget forced it out.
	ShortID string
	// Warning is a non-fatal remark for the user, such as the short id
	// having been dropped.
	Warning string
}

// BuildShareLink encodes assets and assembles the share URL
// origin+path+"?d="+shortID+":"+token, enforcing the length budget.
// When the full form exceeds the soft budget the short id is dropped;
// when even the bare form exceeds the hard budget it returns
// ErrPortfolioTooLarge with an actionable message.
func BuildShareLink(origin, path string, assets []Asset) (ShareLink, error) {
	token, err := EncodeToken(assets)
	if err != nil {
		return ShareLink{}, fmt.Errorf("cannot build share link: %w", err)
	}

	shortID := NewShortID()
	base := origin + path + "?" + shareParam + "="
	full := base + shortID + ":" + token
	if len(full) <= softURLBudget {
		return ShareLink{URL: full, Token: token, ShortID: shortID}, nil
	}

	// Retry without the short id prefix.
	bare := base + token
	if len(bare) <= hardURLBudget {
		return ShareLink{
			URL:     bare,
			Token:   token,
			ShortID: shortID,
			Warning: "the link is very long, the short id was left out of the URL",
		}, nil
	}

	return ShareLink{}, fmt.Errorf("%w: the share URL is %d characters, the maximum is about %d; remove some assets or shorten their names",
		ErrPortfolioTooLarge, len(bare), hardURLBudget)
}

// ParseShareToken extracts the token from a pasted share URL. A string
// that is not a URL with a "d" query parameter is treated as a bare
// token. The short-id prefix, if any, is kept: DecodeToken handles it.
func ParseShareToken(s string) string {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if d := u.Query().Get(shareParam); d != "" {
		return d
	}
	return s
}
