package crypto

import (
	"fmt"
	"unicode/utf8"
)

// Strength is the ordinal strength label of a password.
type Strength int

const (
	Weak Strength = iota
	Moderate
	Strong
	VeryStrong
)

var strengthLabels = [...]string{
	Weak:       "Weak",
	Moderate:   "Moderate",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

func (s Strength) String() string {
	if s < Weak || s > VeryStrong {
		return fmt.Sprintf("Strength(%d)", int(s))
	}
	return strengthLabels[s]
}

// MarshalText encodes the strength as its label so JSON responses carry "Very Strong" rather than 3.
func (s Strength) MarshalText() ([]byte, error) {
	if s < Weak || s > VeryStrong {
		return nil, fmt.Errorf("invalid strength %d", int(s))
	}
	return []byte(strengthLabels[s]), nil
}

// UnmarshalText parses a label produced by MarshalText.
func (s *Strength) UnmarshalText(text []byte) error {
	for i, label := range strengthLabels {
		if label == string(text) {
			*s = Strength(i)
			return nil
		}
	}
	return fmt.Errorf("unknown strength %q", text)
}

// PresentClasses returns the set of classes with at least one member in password.
func PresentClasses(password string) ClassSet {
	var s ClassSet
	for _, r := range password {
		if c, ok := ClassOf(r); ok {
			s = s.With(c)
			if s == AllClasses {
				break
			}
		}
	}
	return s
}

// Diversity counts the character classes represented in password.
func Diversity(password string) int {
	return PresentClasses(password).Len()
}

// Evaluate classifies password by length and class diversity. Rules are checked
// from strongest to weakest and the first match wins.
func Evaluate(password string) Strength {
	length := utf8.RuneCountInString(password)
	diversity := Diversity(password)

	switch {
	case length >= 12 && diversity >= 4:
		return VeryStrong
	case length >= 10 && diversity >= 3:
		return Strong
	case length >= 8 && diversity >= 2:
		return Moderate
	default:
		return Weak
	}
}
