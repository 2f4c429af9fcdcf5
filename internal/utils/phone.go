package utils

import (
	"fmt"
	"strings"
)

// Kenyan M-Pesa MSISDNs are the country prefix plus nine digits.
const (
	KenyaCountryPrefix = "254"
	msisdnLength       = 12
)

// NormalizeMSISDN converts a user-supplied Kenyan phone number into the
// 254XXXXXXXXX form Paystack expects for mobile-money charges.
//
//   - whitespace, hyphens and a leading plus are stripped
//   - a leading "0" is replaced with the country prefix ("0712..." -> "254712...")
//   - numbers already starting with "254" pass through
//   - numbers starting with a local mobile prefix ("7" or "1") get "254" prepended
//
// Anything else, or a result that is not exactly twelve digits, is rejected
// before any network call is made.
func NormalizeMSISDN(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, "+", "")

	switch {
	case strings.HasPrefix(phone, "0"):
		phone = KenyaCountryPrefix + phone[1:]
	case strings.HasPrefix(phone, KenyaCountryPrefix):
		// already in canonical form
	case strings.HasPrefix(phone, "7"), strings.HasPrefix(phone, "1"):
		phone = KenyaCountryPrefix + phone
	default:
		return "", fmt.Errorf("%w: use format 0712345678 or 254712345678", ErrInvalidPhone)
	}

	if len(phone) != msisdnLength || !isAllDigits(phone) {
		return "", fmt.Errorf("%w: expected %d digits, got %d", ErrInvalidPhone, msisdnLength, len(phone))
	}
	return phone, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
