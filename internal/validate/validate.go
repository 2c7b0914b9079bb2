package validate

import "regexp"

// Identity and Instrument are the external format validators the core
// delegates to. Both are pure string -> bool checks.

var identityPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{4,15}$`)

// Identity reports whether s is a well-formed account identity:
// 4 to 15 characters, letters, digits, underscore or hyphen.
func Identity(s string) bool {
	return identityPattern.MatchString(s)
}

// Instrument reports whether s is a plausible funding instrument number:
// 13 to 19 digits passing the Luhn checksum.
func Instrument(s string) bool {
	if len(s) < 13 || len(s) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
