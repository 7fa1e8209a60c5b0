package portfel

import "math/rand"

// shortIDAlphabet is the 36-symbol alphabet of cosmetic portfolio ids.
const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// shortIDLen is the fixed length of a short id inside a share URL.
const shortIDLen = 4

// NewShortID returns a 4-character label drawn uniformly from [a-z0-9].
// It is cosmetic only: decoding a token never needs it and collisions
// are acceptable, there is no registry to collide in.
func NewShortID() string {
	b := make([]byte, shortIDLen)
	for i := range b {
		b[i] = shortIDAlphabet[rand.Intn(len(shortIDAlphabet))]
	}
	return string(b)
}

// isShortID reports whether s is a well-formed short id.
func isShortID(s string) bool {
	if len(s) != shortIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
