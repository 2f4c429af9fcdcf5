package utils

import (
	"errors"
	"testing"
)

func TestNormalizeMSISDNVariants(t *testing.T) {
	cases := map[string]string{
		"0712345678":     "254712345678",
		"0112345678":     "254112345678",
		"712345678":      "254712345678",
		"254712345678":   "254712345678",
		"+254712345678":  "254712345678",
		"0712 345 678":   "254712345678",
		"0712-345-678":   "254712345678",
		" 254712345678 ": "254712345678",
	}
	for in, want := range cases {
		got, err := NormalizeMSISDN(in)
		if err != nil {
			t.Fatalf("NormalizeMSISDN(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeMSISDN(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestNormalizeMSISDNRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		"",
		"not-a-number",
		"07123",          // too short
		"07123456789012", // too long
		"441234567890",   // wrong country
		"07123456ab",     // letters after prefix handling
	} {
		_, err := NormalizeMSISDN(in)
		if err == nil {
			t.Fatalf("Expected error for %q, got none", in)
		}
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("Expected ErrInvalidPhone for %q, got %v", in, err)
		}
	}
}
