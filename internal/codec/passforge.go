// Package codec reads and writes .passforge history files: the history joined
// with newlines, UTF-8 encoded, then standard base64 with padding. There is no
// header, version marker or checksum.
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extension is the file suffix used for exported history.
const Extension = ".passforge"

const separator = "\n"

var errInvalidUTF8 = errors.New("decoded payload is not valid UTF-8")

// DecodeError reports a blob that could not be turned back into a history.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode passforge data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Encode serializes history into the .passforge format.
func Encode(history []string) []byte {
	text := strings.Join(history, separator)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(text)))
	base64.StdEncoding.Encode(out, []byte(text))
	return out
}

// Decode parses a .passforge blob back into the ordered history. An empty blob
// yields an empty history.
func Decode(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []string{}, nil
	}

	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	raw = raw[:n]

	if !utf8.Valid(raw) {
		return nil, &DecodeError{Err: errInvalidUTF8}
	}
	if len(raw) == 0 {
		return []string{}, nil
	}

	return strings.Split(string(raw), separator), nil
}

// EnsureExtension appends Extension to path unless it already has it.
func EnsureExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}

// WriteFile writes history to path in the .passforge format.
func WriteFile(path string, history []string) error {
	if err := os.WriteFile(path, Encode(history), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads the history stored at path.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}
