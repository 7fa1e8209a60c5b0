package portfel

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

// makeTestToken builds a token straight from positional records,
// bypassing the encoder, to exercise the decoder on arbitrary shapes.
func makeTestToken(t *testing.T, records [][]any) string {
	t.Helper()
	payload, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("cannot marshal test records: %v", err)
	}
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		t.Fatalf("cannot create compressor: %v", err)
	}
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("cannot compress test records: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("cannot close compressor: %v", err)
	}
	return string(tokenVersion) + strings.TrimRight(base64.URLEncoding.EncodeToString(buf.Bytes()), "=")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// 1. Arrange: one asset of every kind.
	original := samplePortfolio()

	// 2. Act: encode then decode.
	token, err := EncodeToken(original)
	if err != nil {
		t.Fatalf("EncodeToken() returned an unexpected error: %v", err)
	}
	decoded := DecodeToken(token)

	// 3. Assert: same length, order, kinds and symbols.
	if len(decoded) != len(original) {
		t.Fatalf("decoded wrong number of assets. Got: %d, want: %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i].Kind != original[i].Kind {
			t.Errorf("asset %d has wrong kind. Got: %v, want: %v", i, decoded[i].Kind, original[i].Kind)
		}
		if decoded[i].Symbol() != original[i].Symbol() {
			t.Errorf("asset %d has wrong symbol. Got: %q, want: %q", i, decoded[i].Symbol(), original[i].Symbol())
		}
		if decoded[i].Quantity != original[i].Quantity {
			t.Errorf("asset %d has wrong quantity. Got: %d, want: %d", i, decoded[i].Quantity, original[i].Quantity)
		}
	}
}

func TestRoundTripShareScenario(t *testing.T) {
	original := []Asset{NewShare("Сбербанк", "SBER", 285.45, 1.23, 10)}

	token, err := EncodeToken(original)
	if err != nil {
		t.Fatalf("EncodeToken() returned an unexpected error: %v", err)
	}
	decoded := DecodeToken(token)

	if len(decoded) != 1 {
		t.Fatalf("decoded wrong number of assets. Got: %d, want: 1", len(decoded))
	}
	got := decoded[0]
	if got.Ticker != "SBER" {
		t.Errorf("wrong ticker. Got: %q, want: %q", got.Ticker, "SBER")
	}
	if got.Price != 285.45 {
		t.Errorf("wrong price. Got: %v, want: 285.45", got.Price)
	}
	if got.Quantity != 10 {
		t.Errorf("wrong quantity. Got: %d, want: 10", got.Quantity)
	}
	// 1.23 is quantized to one decimal on the wire.
	if got.YearChangePercent != 1.2 {
		t.Errorf("wrong year change. Got: %v, want: 1.2", got.YearChangePercent)
	}
	if got.Name != "Сбербанк" {
		t.Errorf("wrong name. Got: %q, want: %q", got.Name, "Сбербанк")
	}
}

func TestRoundTripDepositExact(t *testing.T) {
	original := []Asset{NewDeposit("Вклад", 100000, 12.5, 6)}

	token, err := EncodeToken(original)
	if err != nil {
		t.Fatalf("EncodeToken() returned an unexpected error: %v", err)
	}
	decoded := DecodeToken(token)

	if len(decoded) != 1 {
		t.Fatalf("decoded wrong number of assets. Got: %d, want: 1", len(decoded))
	}
	got := decoded[0]
	if got.Value != 100000 {
		t.Errorf("wrong value. Got: %v, want: 100000", got.Value)
	}
	if got.Rate != 12.5 {
		t.Errorf("wrong rate. Got: %v, want: 12.5", got.Rate)
	}
	if got.TermMonths != 6 {
		t.Errorf("wrong term. Got: %d, want: 6", got.TermMonths)
	}
}

func TestRoundTripBondFields(t *testing.T) {
	original := []Asset{sampleOFZBond()}

	decoded := DecodeToken(mustEncode(t, original))

	if len(decoded) != 1 {
		t.Fatalf("decoded wrong number of assets. Got: %d, want: 1", len(decoded))
	}
	got := decoded[0]
	if got.PricePercent != 98.5 {
		t.Errorf("wrong price percent. Got: %v, want: 98.5", got.PricePercent)
	}
	if got.YearChangePercent != -2.4 {
		t.Errorf("wrong year change. Got: %v, want: -2.4", got.YearChangePercent)
	}
	if got.IconKey != IconBondOFZ {
		t.Errorf("wrong icon key. Got: %q, want: %q", got.IconKey, IconBondOFZ)
	}
}

func TestOrderPreservation(t *testing.T) {
	original := samplePortfolio()

	decoded := DecodeToken(mustEncode(t, original))

	for i := range original {
		if decoded[i].Name != truncate(original[i].Name, maxNameRunes) {
			t.Errorf("position %d out of order. Got: %q, want: %q", i, decoded[i].Name, original[i].Name)
		}
	}
}

func TestNameTruncation(t *testing.T) {
	longName := "Очень длинное название актива в портфеле"
	original := []Asset{NewShare(longName, "LONG", 10, 0, 1)}

	decoded := DecodeToken(mustEncode(t, original))

	want := string([]rune(longName)[:maxNameRunes])
	if decoded[0].Name != want {
		t.Errorf("wrong truncated name. Got: %q, want: %q", decoded[0].Name, want)
	}

	// A second round trip through the codec must be loss-free: the name
	// is already within the bound.
	again := DecodeToken(mustEncode(t, decoded))
	if again[0].Name != want {
		t.Errorf("truncation is not idempotent. Got: %q, want: %q", again[0].Name, want)
	}
}

func TestPortfolioIDFreshness(t *testing.T) {
	token := mustEncode(t, samplePortfolio())

	first := DecodeToken(token)
	second := DecodeToken(token)

	seen := make(map[string]bool)
	for _, a := range first {
		if a.PortfolioID == "" {
			t.Fatal("decoded asset has empty portfolio id")
		}
		seen[a.PortfolioID] = true
	}
	for _, a := range second {
		if seen[a.PortfolioID] {
			t.Errorf("portfolio id %q reused across decodes", a.PortfolioID)
		}
	}
}

func TestDecodeFailSoft(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not-a-valid-token!!",
		"abcd:not-a-valid-token",
		"1",
		"1AAAA",
		"1" + strings.Repeat("_", 50),
	}
	for _, token := range cases {
		if got := DecodeToken(token); len(got) != 0 {
			t.Errorf("DecodeToken(%q) should decode to nothing, got %d assets", token, len(got))
		}
	}
}

func TestDecodeIgnoresShortIDPrefix(t *testing.T) {
	token := mustEncode(t, []Asset{sampleShare()})

	withID := DecodeToken("z9x4:" + token)
	without := DecodeToken(token)

	if len(withID) != 1 || len(without) != 1 {
		t.Fatalf("short id prefix changed the decode result: %d vs %d assets", len(withID), len(without))
	}
	if withID[0].Ticker != without[0].Ticker {
		t.Errorf("short id prefix changed the payload. Got: %q, want: %q", withID[0].Ticker, without[0].Ticker)
	}
}

func TestDecodeAcceptsUntaggedToken(t *testing.T) {
	// Tokens from before the version character happen to be the same
	// payload without the leading tag.
	token := mustEncode(t, []Asset{sampleShare()})
	bare := strings.TrimPrefix(token, string(tokenVersion))

	decoded := DecodeToken(bare)
	if len(decoded) != 1 || decoded[0].Ticker != "SBER" {
		t.Errorf("untagged token should still decode, got %d assets", len(decoded))
	}
}

func TestDecodeDefaults(t *testing.T) {
	records := [][]any{
		{"b"},           // bond with every slot missing
		{"d", "", 0},    // deposit with empty name and zero quantity
		{"q", "Загадка"}, // unknown kind tag
	}
	decoded := DecodeToken(makeTestToken(t, records))

	if len(decoded) != 3 {
		t.Fatalf("decoded wrong number of records. Got: %d, want: 3", len(decoded))
	}

	bond := decoded[0]
	if bond.Kind != Bond {
		t.Errorf("wrong kind. Got: %v, want: %v", bond.Kind, Bond)
	}
	if bond.Name != "Актив 1" {
		t.Errorf("missing name should get a placeholder. Got: %q", bond.Name)
	}
	if bond.Quantity != 1 {
		t.Errorf("missing quantity should default to 1. Got: %d", bond.Quantity)
	}
	if bond.PricePercent != 100.0 {
		t.Errorf("missing bond price should default to 100%%. Got: %v", bond.PricePercent)
	}

	deposit := decoded[1]
	if deposit.TermMonths != 12 {
		t.Errorf("missing term should default to 12 months. Got: %d", deposit.TermMonths)
	}
	if deposit.Name != "Актив 2" {
		t.Errorf("empty name should get a placeholder. Got: %q", deposit.Name)
	}

	other := decoded[2]
	if other.Kind != Other {
		t.Errorf("unknown tag should map to Other. Got: %v", other.Kind)
	}
	if other.Name != "Загадка" {
		t.Errorf("wrong name. Got: %q", other.Name)
	}
}

func TestEncodeEmptyPortfolio(t *testing.T) {
	token, err := EncodeToken(nil)
	if err != nil {
		t.Fatalf("EncodeToken(nil) returned an unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("empty portfolio should encode to an empty token, got %q", token)
	}
	if got := DecodeToken(token); len(got) != 0 {
		t.Errorf("empty token should decode to an empty list, got %d assets", len(got))
	}
}

func TestEncodeNeverMutatesInput(t *testing.T) {
	original := []Asset{NewShare("Очень длинное название актива в портфеле", "LONG", 10.123, 1.234, 3)}
	name, price := original[0].Name, original[0].Price

	if _, err := EncodeToken(original); err != nil {
		t.Fatalf("EncodeToken() returned an unexpected error: %v", err)
	}

	if original[0].Name != name || original[0].Price != price {
		t.Error("EncodeToken mutated its input")
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	token := mustEncode(t, samplePortfolio())

	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token contains characters outside the URL-safe alphabet: %q", token)
	}
}

func TestIconURLCarry(t *testing.T) {
	crypto := sampleCrypto()
	withIcon := NewShare("Яндекс", "YDEX", 4100, 7.5, 1)
	withIcon.IconURL = "https://static.example.com/logos/yandex/v2/main/square/256/icon.png"

	decoded := DecodeToken(mustEncode(t, []Asset{crypto, withIcon}))

	if len(decoded) != 2 {
		t.Fatalf("decoded wrong number of assets. Got: %d, want: 2", len(decoded))
	}
	// Cryptos carry the full URL.
	if decoded[0].IconKey != IconCustom || decoded[0].IconURL != crypto.IconURL {
		t.Errorf("crypto icon URL should survive in full. Got: %q, want: %q", decoded[0].IconURL, crypto.IconURL)
	}
	// Shares carry a host + 3 path segments truncation.
	want := "https://static.example.com/logos/yandex/v2"
	if decoded[1].IconKey != IconCustom || decoded[1].IconURL != want {
		t.Errorf("share icon URL should be truncated. Got: %q, want: %q", decoded[1].IconURL, want)
	}
}

func mustEncode(t *testing.T, assets []Asset) string {
	t.Helper()
	token, err := EncodeToken(assets)
	if err != nil {
		t.Fatalf("EncodeToken() returned an unexpected error: %v", err)
	}
	return token
}
