package crypto

import (
	"errors"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"

	// SymbolChars is the ASCII punctuation set used for the symbols class.
	SymbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrEmptyCharset = errors.New("please select at least one character type")

// CharsetOptions selects the optional character classes. Lowercase letters are always included.
type CharsetOptions struct {
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultCharsetOptions returns options with every class enabled.
func DefaultCharsetOptions() CharsetOptions {
	return CharsetOptions{
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Charset assembles the character pool for the options.
func (o CharsetOptions) Charset() (string, error) {
	return BuildCharset(o.Uppercase, o.Numbers, o.Symbols)
}

// BuildCharset returns lowercase letters followed by uppercase letters, digits and
// symbols for each enabled flag, in that order.
func BuildCharset(includeUppercase, includeNumbers, includeSymbols bool) (string, error) {
	var sb strings.Builder
	sb.WriteString(lowercaseChars)

	if includeUppercase {
		sb.WriteString(uppercaseChars)
	}
	if includeNumbers {
		sb.WriteString(numberChars)
	}
	if includeSymbols {
		sb.WriteString(SymbolChars)
	}

	if sb.Len() == 0 {
		return "", ErrEmptyCharset
	}
	return sb.String(), nil
}
