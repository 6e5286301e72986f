package model

import "github.com/passforge/passforge-go/internal/crypto"

const (
	DefaultLength = 16
	DefaultCount  = 1
)

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Count     int   `json:"count"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// DefaultGenerateRequest returns the request used when a caller omits fields.
// Explicit zero values decoded over it are rejected, not defaulted.
func DefaultGenerateRequest() GenerateRequest {
	return GenerateRequest{Length: DefaultLength, Count: DefaultCount}
}

// GenerateResponse represents a password generation response. Password is the
// one the collaborator displays (the last of the batch) and Strength describes it.
type GenerateResponse struct {
	Passwords []string        `json:"passwords"`
	Password  string          `json:"password"`
	Length    int             `json:"length"`
	Strength  crypto.Strength `json:"strength"`
	Warning   string          `json:"warning,omitempty"`
}

// StrengthRequest asks for the classification of a single password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the label and the number of character classes found.
type StrengthResponse struct {
	Strength crypto.Strength `json:"strength"`
	Score    int             `json:"score"`
	Color    string          `json:"color"`
}
