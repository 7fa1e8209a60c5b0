package portfel

import (
	"strings"
	"testing"
)

func TestNewShortID(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewShortID()
		if len(id) != shortIDLen {
			t.Fatalf("short id %q has wrong length. Got: %d, want: %d", id, len(id), shortIDLen)
		}
		for _, c := range id {
			if !strings.ContainsRune(shortIDAlphabet, c) {
				t.Fatalf("short id %q contains %q outside the alphabet", id, c)
			}
		}
	}
}

func TestIsShortID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ab12", true},
		{"zzzz", true},
		{"0000", true},
		{"ab1", false},
		{"ab123", false},
		{"AB12", false},
		{"ab-2", false},
		{"", false},
	}
	for _, c := range cases {
		if got := isShortID(c.in); got != c.want {
			t.Errorf("isShortID(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
