// Package luhn validates identification numbers, such as payment card
// numbers, with the Luhn checksum.
package luhn

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidPayload is returned by CheckDigit for input it cannot complete
var ErrInvalidPayload = errors.New("invalid payload")

// Normalize trims surrounding whitespace and removes interior spaces
func Normalize(number string) string {
	return strings.ReplaceAll(strings.TrimSpace(number), " ", "")
}

// Valid reports whether number passes the Luhn check.
// Spaces are separators; any other non-digit character makes the number
// invalid, as does having fewer than two digits.
func Valid(number string) bool {
	digits := Normalize(number)
	if len(digits) < 2 {
		return false
	}

	total, ok := sum(digits, false)
	if !ok {
		return false
	}
	return total%10 == 0
}

// CheckDigit returns the digit that, appended to payload, yields a number
// accepted by Valid. Only leading whitespace and spaces are allowed around
// the digits; once the check digit is appended, any trailing tab or newline
// would sit inside the number.
func CheckDigit(payload string) (int, error) {
	digits := strings.ReplaceAll(strings.TrimLeftFunc(payload, unicode.IsSpace), " ", "")
	if digits == "" {
		return 0, fmt.Errorf("%w: no digits", ErrInvalidPayload)
	}

	// The check digit takes index 0, so every payload digit moves one place left.
	s, ok := sum(digits, true)
	if !ok {
		return 0, fmt.Errorf("%w: %q contains a non-digit character", ErrInvalidPayload, payload)
	}
	return (10 - s%10) % 10, nil
}

// sum walks digits from the right. Index 0 is the last character unless
// shifted is set, in which case the last character takes index 1.
func sum(digits string, shifted bool) (int, bool) {
	total := 0
	double := shifted
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n := int(c - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
		double = !double
	}
	return total, true
}
