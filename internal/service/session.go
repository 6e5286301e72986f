package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionService opens sessions and resolves session tokens.
type SessionService struct {
	repo   *repository.SessionRepository
	secret string
	expiry time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo *repository.SessionRepository, secret string, expiry time.Duration) *SessionService {
	return &SessionService{
		repo:   repo,
		secret: secret,
		expiry: expiry,
	}
}

// Open creates a session and returns a signed token for it.
func (s *SessionService) Open() (model.SessionResponse, error) {
	sess := s.repo.Create()

	token, expiresAt, err := crypto.GenerateToken(sess.ID, s.secret, s.expiry)
	if err != nil {
		s.repo.Delete(sess.ID)
		return model.SessionResponse{}, err
	}

	slog.Info("session opened", "session_id", sess.ID)

	return model.SessionResponse{
		Token:     token,
		SessionID: sess.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve validates token and returns the session it refers to.
func (s *SessionService) Resolve(token string) (*repository.Session, error) {
	claims, err := crypto.ValidateToken(token, s.secret)
	if err != nil {
		return nil, ErrInvalidSession
	}

	sess, err := s.repo.Get(claims.SessionID)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return sess, nil
}
