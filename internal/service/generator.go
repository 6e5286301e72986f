package service

import (
	"fmt"
	"log/slog"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	maxBatchSize int
}

// NewGeneratorService creates a new GeneratorService. A maxBatchSize of zero
// or less, or above crypto.MaxBatchSize, is replaced by crypto.MaxBatchSize.
func NewGeneratorService(maxBatchSize int) *GeneratorService {
	if maxBatchSize <= 0 || maxBatchSize > crypto.MaxBatchSize {
		maxBatchSize = crypto.MaxBatchSize
	}
	return &GeneratorService{maxBatchSize: maxBatchSize}
}

// Generate produces a batch of passwords for the request, records them in the
// session history and makes the last one the session's current password.
func (s *GeneratorService) Generate(sess *repository.Session, req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Length <= 0 || req.Count <= 0 {
		return model.GenerateResponse{}, crypto.ErrInvalidInput
	}
	if req.Count > s.maxBatchSize {
		return model.GenerateResponse{}, fmt.Errorf("%w: at most %d per request", crypto.ErrBatchTooLarge, s.maxBatchSize)
	}

	length, clamped := crypto.ClampLength(req.Length)

	opts := crypto.CharsetOptions{
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}
	charset, err := opts.Charset()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	passwords, err := crypto.Generate(length, req.Count, charset)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	sess.History.Append(passwords...)
	current := passwords[len(passwords)-1]
	sess.SetCurrent(current)

	resp := model.GenerateResponse{
		Passwords: passwords,
		Password:  current,
		Length:    length,
		Strength:  crypto.Classify(current),
	}
	if clamped {
		resp.Warning = crypto.LengthWarning
		slog.Warn("requested length clamped", "session_id", sess.ID, "requested", req.Length, "length", length)
	}

	return resp, nil
}

// Strength classifies a single password.
func (s *GeneratorService) Strength(password string) model.StrengthResponse {
	strength := crypto.Classify(password)
	return model.StrengthResponse{
		Strength: strength,
		Score:    crypto.Score(password),
		Color:    strength.Color(),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
