package portfel

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// This file implements the share token codec.
//
// The overall strategy is density first, the whole format exists to fit a
// portfolio into a ~2000 character URL:
//
//   Encode: each asset becomes a positional array (no field names on the
//           wire), the first five slots are always
//           [kindTag, name, quantity, iconTag, iconURL], the remaining
//           slots depend on the kind. Numbers are quantized to small
//           integers. The array-of-arrays is marshaled to compact JSON,
//           deflated, base64-encoded with the URL alphabet, stripped of
//           trailing padding and prefixed with a version character.
//
//   Decode: the exact inverse, except it never fails: a malformed token
//           decodes to an empty portfolio and a malformed field inside an
//           otherwise valid record falls back to a documented default.
//           A shared link must not crash the receiving page, however old
//           or corrupted it is.

// tokenVersion is the leading character of every token. Earlier format
// revisions had no tag and had to be guessed at; the decoder still
// accepts a bare payload for those.
const tokenVersion = '1'

// maxInflatedPayload caps the inflated JSON size. Tokens are bounded by
// the URL budget, anything expanding past this is hostile.
const maxInflatedPayload = 1 << 20

// EncodeToken serializes assets into a compact URL-safe token. An empty
// portfolio encodes to an empty token. The input is never mutated.
//
// Quantization makes this deliberately lossy: prices keep 2 decimals,
// percents 1, names at most 20 runes. Decoding is exact with respect to
// what was encoded.
func EncodeToken(assets []Asset) (string, error) {
	if len(assets) == 0 {
		return "", nil
	}

	records := make([][]any, 0, len(assets))
	for _, a := range assets {
		records = append(records, encodeRecord(a))
	}

	// Compact JSON: json.Marshal emits no whitespace.
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("cannot serialize portfolio: %w", err)
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("cannot initialize compressor: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		return "", fmt.Errorf("cannot compress portfolio: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("cannot compress portfolio: %w", err)
	}

	// Trailing '=' padding is reconstructible from the length, so it is
	// dead weight in a URL.
	token := strings.TrimRight(base64.URLEncoding.EncodeToString(buf.Bytes()), "=")
	return string(tokenVersion) + token, nil
}

// DecodeToken reconstructs assets from a share token. It never returns
// an error: any malformed input yields an empty list. The optional
// 4-character short-id prefix is ignored, decoding must succeed from the
// payload alone. Order is preserved, and every asset gets a fresh
// PortfolioID unique to this call.
func DecodeToken(token string) []Asset {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	// Split off the cosmetic "xxxx:" short-id prefix if present.
	if len(token) > shortIDLen && token[shortIDLen] == ':' && isShortID(token[:shortIDLen]) {
		token = token[shortIDLen+1:]
	}

	// Version-tagged tokens strip the tag; bare payloads from earlier
	// revisions are attempted as the current format.
	if len(token) > 0 && token[0] == tokenVersion {
		token = token[1:]
	}

	raw, ok := inflateToken(token)
	if !ok {
		return nil
	}

	var records [][]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}

	stamp := strconv.FormatInt(time.Now().UnixNano(), 36)
	assets := make([]Asset, 0, len(records))
	for i, rec := range records {
		assets = append(assets, decodeRecord(rec, i, stamp))
	}
	return assets
}

// encodeRecord packs one asset into its positional wire form.
func encodeRecord(a Asset) []any {
	key := a.IconKey
	if key == "" {
		key = ClassifyIcon(a)
	}

	rec := []any{
		a.Kind.Code(),
		truncate(a.Name, maxNameRunes),
		defaultQuantity(a.Quantity),
		key.Code(),
		encodedIconURL(a, key),
	}

	switch a.Kind {
	case Share, Crypto, Metal:
		rec = append(rec, quantize(a.Price, priceFactor), a.Ticker, quantize(a.YearChangePercent, percentFactor))
	case Bond:
		rec = append(rec, quantize(a.PricePercent, percentFactor), a.Ticker, quantize(a.YearChangePercent, percentFactor))
	case Currency:
		rec = append(rec, quantize(a.Price, priceFactor), a.Code, quantize(a.YearChangePercent, percentFactor))
	case Deposit:
		rec = append(rec, quantize(a.Value, 1), quantize(a.Rate, percentFactor), a.TermMonths)
	case RealEstate:
		rec = append(rec, quantize(a.Value, 1), a.Category.Code(), quantize(a.YieldPercent, percentFactor), truncate(a.Address, maxAddressRunes))
	case Business:
		rec = append(rec, quantize(a.Value, 1), a.BusinessType.Code(), quantize(a.MonthlyProfit, 1), quantize(a.ProfitMargin, percentFactor))
	default:
		rec = append(rec, quantize(a.Value, 1))
	}
	return rec
}

// decodeRecord unpacks one positional record. Every missing or
// mistyped slot falls back to an explicit default:
//
//	kind          -> Other
//	name          -> "Актив N"
//	quantity      -> 1
//	price, value  -> 0
//	percents      -> 0, except bond price which defaults to 100.0%
//	term          -> 12 months
//	category      -> residential, business type -> small
func decodeRecord(rec []any, index int, stamp string) Asset {
	kind := KindFromCode(recString(rec, 0))

	name := recString(rec, 1)
	if name == "" {
		name = fmt.Sprintf("Актив %d", index+1)
	}

	quantity := int64(recNumber(rec, 2))
	if quantity <= 0 {
		quantity = 1
	}

	a := Asset{
		Kind:        kind,
		Name:        name,
		Quantity:    quantity,
		PortfolioID: newPortfolioID(index, kind, stamp),
		IconKey:     IconKeyFromCode(recString(rec, 3)),
		IconURL:     recString(rec, 4),
	}

	switch kind {
	case Share, Crypto, Metal:
		a.Price = dequantize(recNumber(rec, 5), priceFactor)
		a.Ticker = recString(rec, 6)
		a.YearChangePercent = dequantize(recNumber(rec, 7), percentFactor)
	case Bond:
		pricePercent := recNumber(rec, 5)
		if pricePercent == 0 {
			pricePercent = 1000 // 100.0% of face value
		}
		a.PricePercent = dequantize(pricePercent, percentFactor)
		a.Ticker = recString(rec, 6)
		a.YearChangePercent = dequantize(recNumber(rec, 7), percentFactor)
	case Currency:
		a.Price = dequantize(recNumber(rec, 5), priceFactor)
		a.Code = recString(rec, 6)
		a.YearChangePercent = dequantize(recNumber(rec, 7), percentFactor)
	case Deposit:
		a.Value = recNumber(rec, 5)
		a.Rate = dequantize(recNumber(rec, 6), percentFactor)
		a.TermMonths = int(recNumber(rec, 7))
		if a.TermMonths <= 0 {
			a.TermMonths = 12
		}
	case RealEstate:
		a.Value = recNumber(rec, 5)
		a.Category = RealEstateCategoryFromCode(recString(rec, 6))
		a.YieldPercent = dequantize(recNumber(rec, 7), percentFactor)
		a.Address = recString(rec, 8)
	case Business:
		a.Value = recNumber(rec, 5)
		a.BusinessType = BusinessTypeFromCode(recString(rec, 6))
		a.MonthlyProfit = recNumber(rec, 7)
		a.ProfitMargin = dequantize(recNumber(rec, 8), percentFactor)
	default:
		a.Value = recNumber(rec, 5)
	}
	return a
}

// inflateToken reverses the base64 and deflate steps. The boolean is
// false on any malformed input.
func inflateToken(token string) ([]byte, bool) {
	// Restore the padding stripped at encode time.
	if n := len(token) % 4; n != 0 {
		token += strings.Repeat("=", 4-n)
	}
	compressed, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}

	zr := flate.NewReader(bytes.NewReader(compressed))
	defer zr.Close()
	raw, err := io.ReadAll(io.LimitReader(zr, maxInflatedPayload))
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// recString reads a string slot, empty when missing or mistyped.
func recString(rec []any, i int) string {
	if i < len(rec) {
		if s, ok := rec[i].(string); ok {
			return s
		}
	}
	return ""
}

// recNumber reads a numeric slot, zero when missing or mistyped.
func recNumber(rec []any, i int) float64 {
	if i < len(rec) {
		if n, ok := rec[i].(float64); ok {
			return n
		}
	}
	return 0
}

// newPortfolioID builds a per-session asset identity from the record
// position, the kind tag, the decode timestamp and a random suffix.
// Identity is per decode on purpose: decoding the same token twice
// yields disjoint ids.
func newPortfolioID(index int, kind Kind, stamp string) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = shortIDAlphabet[rand.Intn(len(shortIDAlphabet))]
	}
	return fmt.Sprintf("p-%d-%s-%s%s", index, kind.Code(), stamp, suffix)
}
