package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	MinLength = 8
	MaxLength = 128
)

var (
	ErrInvalidLength  = errors.New("password length cannot hold one character from each selected class")
	ErrLengthTooShort = errors.New("password length must be at least 8")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// ValidateLength checks a user-supplied length against MinLength and MaxLength.
// Generate itself only enforces the one-per-class bound.
func ValidateLength(length int) error {
	if length < MinLength {
		return ErrLengthTooShort
	}
	if length > MaxLength {
		return ErrLengthTooLong
	}
	return nil
}

// Generate creates a cryptographically secure random password of the given length.
// An empty class set is widened to AllClasses. The result contains at least one
// character from every selected class; it fails with ErrInvalidLength when length
// is smaller than the number of selected classes.
func Generate(length int, classes ClassSet) (string, error) {
	classes = classes.Normalize()
	selected := classes.Slice()

	if length < len(selected) {
		return "", fmt.Errorf("%w: length %d, %d classes selected", ErrInvalidLength, length, len(selected))
	}

	pool := classes.pool()
	result := make([]byte, length)

	// Guarantee at least one character from each selected class.
	for i, c := range selected {
		result[i] = randChar(c.Chars())
	}

	// Fill the remaining positions from the full pool.
	for i := len(selected); i < length; i++ {
		result[i] = randChar(pool)
	}

	// Hide the required-characters-first layout.
	secureShuffle(result)

	return string(result), nil
}

// randIndex returns a uniform integer in [0, n) from crypto/rand.
// A failing entropy source is unrecoverable, so it panics instead of returning an error.
func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto: secure random source failed: %v", err))
	}
	return int(v.Int64())
}

// randChar picks a random character from charset.
func randChar(charset string) byte {
	return charset[randIndex(len(charset))]
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
