package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	MaxLength = 128

	// MaxBatchSize bounds how many passwords a single Generate call produces.
	MaxBatchSize = 10000

	// LengthWarning is shown when a requested length is clamped to MaxLength.
	LengthWarning = "Maximum allowed length is 128 characters. Password will be generated with 128 characters."
)

var (
	ErrInvalidInput  = errors.New("please enter a valid positive number")
	ErrBatchTooLarge = errors.New("too many passwords requested")
)

// ClampLength caps length at MaxLength. The second result reports whether the
// value was clamped, in which case the caller must surface LengthWarning.
func ClampLength(length int) (int, bool) {
	if length > MaxLength {
		return MaxLength, true
	}
	return length, false
}

// ParsePositive parses user-entered text as a positive integer.
func ParsePositive(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, ErrInvalidInput
	}
	return n, nil
}

// Generate creates batchSize passwords of exactly length characters. Every
// character is drawn independently and uniformly from charset using crypto/rand.
// A batchSize above MaxBatchSize returns ErrBatchTooLarge.
func Generate(length, batchSize int, charset string) ([]string, error) {
	if length <= 0 || batchSize <= 0 {
		return nil, ErrInvalidInput
	}
	if batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: at most %d per request", ErrBatchTooLarge, MaxBatchSize)
	}
	if charset == "" {
		return nil, ErrEmptyCharset
	}

	// Index by rune so a non-ASCII pool still yields exactly length characters.
	pool := []rune(charset)
	var passwords []string

	for range batchSize {
		result := make([]rune, length)
		for i := range result {
			ch, err := randChar(pool)
			if err != nil {
				return nil, err
			}
			result[i] = ch
		}
		passwords = append(passwords, string(result))
	}

	return passwords, nil
}

// GenerateOne is Generate with a batch size of one.
func GenerateOne(length int, charset string) (string, error) {
	passwords, err := Generate(length, 1, charset)
	if err != nil {
		return "", err
	}
	return passwords[0], nil
}

// randChar picks a random character from pool using crypto/rand.
func randChar(pool []rune) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, err
	}
	return pool[n.Int64()], nil
}
