package crypto

import (
	"strings"
	"unicode/utf8"
)

// StrongLength is the length at which a password earns the length point.
const StrongLength = 12

// Rating is a coarse password strength label.
type Rating int

const (
	Weak Rating = iota
	Moderate
	Strong
)

func (r Rating) String() string {
	switch r {
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the rating by name so JSON bodies read "Strong" rather than 2.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Points counts how many of the five strength checks the password passes:
// an uppercase letter, a lowercase letter, a digit, a symbol and a length of
// at least StrongLength characters.
func Points(password string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(SymbolChars, r):
			hasSymbol = true
		}
	}

	points := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol, utf8.RuneCountInString(password) >= StrongLength} {
		if ok {
			points++
		}
	}
	return points
}

// Score maps a password to its Rating: 0-2 points is Weak, 3-4 Moderate, 5 Strong.
func Score(password string) Rating {
	return RatingFor(Points(password))
}

// RatingFor converts a point total into a Rating.
func RatingFor(points int) Rating {
	switch {
	case points <= 2:
		return Weak
	case points <= 4:
		return Moderate
	default:
		return Strong
	}
}

// ParseRating is the inverse of Rating.String.
func ParseRating(s string) (Rating, bool) {
	for _, r := range []Rating{Weak, Moderate, Strong} {
		if r.String() == s {
			return r, true
		}
	}
	return Weak, false
}
