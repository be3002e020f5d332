// Package crypto generates passwords from the four ASCII character classes
// using crypto/rand, rates their strength, and signs the session tokens the
// API hands out. It holds no state; every function is safe for concurrent use.
package crypto

import (
	"fmt"
	"strings"
)

// CharacterClass is one of the four ASCII character categories a password can draw from.
type CharacterClass uint8

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digit
	Symbol

	numClasses = 4
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var classChars = [numClasses]string{
	Lowercase: lowercaseChars,
	Uppercase: uppercaseChars,
	Digit:     digitChars,
	Symbol:    symbolChars,
}

var classNames = [numClasses]string{
	Lowercase: "lowercase",
	Uppercase: "uppercase",
	Digit:     "digits",
	Symbol:    "symbols",
}

// Classes lists every character class in generation order.
var Classes = [numClasses]CharacterClass{Lowercase, Uppercase, Digit, Symbol}

// Chars returns the character set for the class.
func (c CharacterClass) Chars() string {
	if int(c) >= numClasses {
		return ""
	}
	return classChars[c]
}

func (c CharacterClass) String() string {
	if int(c) >= numClasses {
		return fmt.Sprintf("CharacterClass(%d)", uint8(c))
	}
	return classNames[c]
}

// ParseClass maps a class name (as printed by String, or a common alias) back to its class.
func ParseClass(name string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowercase", "lower":
		return Lowercase, nil
	case "uppercase", "upper":
		return Uppercase, nil
	case "digits", "digit", "numbers":
		return Digit, nil
	case "symbols", "symbol":
		return Symbol, nil
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// ClassOf reports which class r belongs to. ok is false for runes outside all four sets.
func ClassOf(r rune) (c CharacterClass, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Lowercase, true
	case r >= 'A' && r <= 'Z':
		return Uppercase, true
	case r >= '0' && r <= '9':
		return Digit, true
	case r < 0x80 && strings.ContainsRune(symbolChars, r):
		return Symbol, true
	}
	return 0, false
}

// ClassSet is a set of character classes. The zero value is the empty set.
type ClassSet uint8

// AllClasses enables every character class.
const AllClasses ClassSet = 1<<numClasses - 1

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns s plus c.
func (s ClassSet) With(c CharacterClass) ClassSet {
	if int(c) >= numClasses {
		return s
	}
	return s | 1<<c
}

// Has reports whether c is in s.
func (s ClassSet) Has(c CharacterClass) bool {
	return int(c) < numClasses && s&(1<<c) != 0
}

// Len returns the number of classes in s.
func (s ClassSet) Len() int {
	n := 0
	for _, c := range Classes {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no class is selected.
func (s ClassSet) IsEmpty() bool {
	return s&AllClasses == 0
}

// Normalize widens an empty selection to AllClasses. Non-empty sets are returned unchanged.
func (s ClassSet) Normalize() ClassSet {
	if s.IsEmpty() {
		return AllClasses
	}
	return s & AllClasses
}

// Slice returns the classes in s in generation order.
func (s ClassSet) Slice() []CharacterClass {
	out := make([]CharacterClass, 0, numClasses)
	for _, c := range Classes {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the class names in generation order.
func (s ClassSet) Names() []string {
	classes := s.Slice()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

func (s ClassSet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	return strings.Join(s.Names(), ",")
}

// pool concatenates the character sets of every class in s.
func (s ClassSet) pool() string {
	var b strings.Builder
	for _, c := range s.Slice() {
		b.WriteString(c.Chars())
	}
	return b.String()
}
