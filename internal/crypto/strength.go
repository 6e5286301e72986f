package crypto

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strength is a coarse label derived from length and character-class diversity.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

const minStrongLength = 6

// otherDigits holds the non-decimal characters with Numeric_Type=Digit:
// superscripts, subscripts, circled and parenthesized digits and the like.
var otherDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// isDigit reports whether r is a decimal digit (Nd) or one of otherDigits.
func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(otherDigits, r)
}

func (s Strength) String() string {
	switch s {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// Color is the display hint collaborators use when rendering the label.
func (s Strength) Color() string {
	switch s {
	case Medium:
		return "orange"
	case Strong:
		return "green"
	default:
		return "red"
	}
}

func (s Strength) MarshalText() ([]byte, error) {
	if s < Weak || s > Strong {
		return nil, fmt.Errorf("invalid strength %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strength) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "weak":
		*s = Weak
	case "medium":
		*s = Medium
	case "strong":
		*s = Strong
	default:
		return fmt.Errorf("unknown strength %q", text)
	}
	return nil
}

// Score counts how many of the upper, lower, digit and symbol classes occur in password.
func Score(password string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case isDigit(r):
			hasDigit = true
		case strings.ContainsRune(SymbolChars, r):
			hasSymbol = true
		}
	}

	score := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}
	return score
}

// Classify labels password. Short passwords and those with two or fewer
// classes are Weak; three classes is Medium; all four is Strong.
func Classify(password string) Strength {
	length := utf8.RuneCountInString(password)
	score := Score(password)

	switch {
	case length < minStrongLength || score <= 2:
		return Weak
	case score == 3:
		return Medium
	default:
		return Strong
	}
}
