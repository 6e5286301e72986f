package crypto

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildCharset(t *testing.T) {
	tests := []struct {
		name                    string
		upper, numbers, symbols bool
		want                    string
	}{
		{name: "lowercase only", want: lowercaseChars},
		{name: "uppercase", upper: true, want: lowercaseChars + uppercaseChars},
		{name: "numbers", numbers: true, want: lowercaseChars + numberChars},
		{name: "symbols", symbols: true, want: lowercaseChars + SymbolChars},
		{
			name:    "all classes in fixed order",
			upper:   true,
			numbers: true,
			symbols: true,
			want:    lowercaseChars + uppercaseChars + numberChars + SymbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildCharset(tt.upper, tt.numbers, tt.symbols)
			if err != nil {
				t.Fatalf("BuildCharset() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCharsetLowercaseOnlyHasExactly26Letters(t *testing.T) {
	got, err := BuildCharset(false, false, false)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}
	if len(got) != 26 {
		t.Fatalf("BuildCharset() length = %d, want 26", len(got))
	}
	for c := 'a'; c <= 'z'; c++ {
		if !strings.ContainsRune(got, c) {
			t.Errorf("BuildCharset() missing %q", c)
		}
	}
}

func TestBuildCharsetHasNoDuplicates(t *testing.T) {
	got, _ := BuildCharset(true, true, true)
	seen := make(map[rune]bool)
	for _, c := range got {
		if seen[c] {
			t.Errorf("duplicate character %q in charset", c)
		}
		seen[c] = true
	}
	if len(SymbolChars) != 32 {
		t.Errorf("SymbolChars length = %d, want 32", len(SymbolChars))
	}
}

func TestCharsetOptions(t *testing.T) {
	got, err := DefaultCharsetOptions().Charset()
	if err != nil {
		t.Fatalf("Charset() unexpected error: %v", err)
	}
	if len(got) != 26+26+10+32 {
		t.Errorf("Charset() length = %d, want %d", len(got), 26+26+10+32)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		batchSize int
		charset   string
		wantErr   error
	}{
		{name: "single", length: 16, batchSize: 1, charset: lowercaseChars},
		{name: "batch", length: 12, batchSize: 25, charset: lowercaseChars + numberChars},
		{name: "length one", length: 1, batchSize: 3, charset: SymbolChars},
		{name: "maximum length", length: MaxLength, batchSize: 2, charset: lowercaseChars + uppercaseChars},
		{name: "zero batch", length: 8, batchSize: 0, charset: lowercaseChars, wantErr: ErrInvalidInput},
		{name: "negative length", length: -1, batchSize: 1, charset: lowercaseChars, wantErr: ErrInvalidInput},
		{name: "zero length", length: 0, batchSize: 1, charset: lowercaseChars, wantErr: ErrInvalidInput},
		{name: "empty charset", length: 8, batchSize: 1, charset: "", wantErr: ErrEmptyCharset},
		{name: "maximum batch", length: 4, batchSize: MaxBatchSize, charset: numberChars},
		{name: "batch above maximum", length: 8, batchSize: MaxBatchSize + 1, charset: lowercaseChars, wantErr: ErrBatchTooLarge},
		{name: "huge batch", length: 8, batchSize: math.MaxInt, charset: lowercaseChars, wantErr: ErrBatchTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passwords, err := Generate(tt.length, tt.batchSize, tt.charset)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if passwords != nil {
					t.Error("Generate() should return nil on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(passwords) != tt.batchSize {
				t.Fatalf("Generate() returned %d passwords, want %d", len(passwords), tt.batchSize)
			}
			for _, p := range passwords {
				if utf8.RuneCountInString(p) != tt.length {
					t.Errorf("password %q length = %d, want %d", p, utf8.RuneCountInString(p), tt.length)
				}
				for _, ch := range p {
					if !strings.ContainsRune(tt.charset, ch) {
						t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
					}
				}
			}
		})
	}
}

func TestGenerateNonASCIICharset(t *testing.T) {
	passwords, err := Generate(10, 5, "äöü")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	for _, p := range passwords {
		if n := utf8.RuneCountInString(p); n != 10 {
			t.Errorf("password %q has %d characters, want 10", p, n)
		}
	}
}

func TestGenerateOne(t *testing.T) {
	charset, _ := BuildCharset(true, true, true)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := GenerateOne(32, charset)
		if err != nil {
			t.Fatalf("GenerateOne() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestClampLength(t *testing.T) {
	tests := []struct {
		in         int
		want       int
		wantWarned bool
	}{
		{in: 1, want: 1},
		{in: 128, want: 128},
		{in: 129, want: 128, wantWarned: true},
		{in: 200, want: 128, wantWarned: true},
	}

	for _, tt := range tests {
		got, warned := ClampLength(tt.in)
		if got != tt.want || warned != tt.wantWarned {
			t.Errorf("ClampLength(%d) = (%d, %v), want (%d, %v)", tt.in, got, warned, tt.want, tt.wantWarned)
		}
	}
}

func TestParsePositive(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "12", want: 12},
		{in: "  200 ", want: 200},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePositive(tt.in)
		if tt.wantErr {
			if err != ErrInvalidInput {
				t.Errorf("ParsePositive(%q) error = %v, want %v", tt.in, err, ErrInvalidInput)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePositive(%q) = (%d, %v), want %d", tt.in, got, err, tt.want)
		}
	}
}
