package service

import (
	"errors"
	"log/slog"
	"os"

	"github.com/passforge/passforge-go/internal/codec"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrNoCurrentPassword = errors.New("no password has been generated yet")
	ErrNothingToExport   = errors.New("no passwords to export")
)

// HistoryService handles listing, clearing, exporting and loading session history.
type HistoryService struct{}

// NewHistoryService creates a new HistoryService.
func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

// List returns the history in generation order.
func (s *HistoryService) List(sess *repository.Session) model.HistoryResponse {
	entries := sess.History.All()
	return model.HistoryResponse{
		Entries: entries,
		Count:   len(entries),
	}
}

// Clear empties the history. The current password is left as displayed.
func (s *HistoryService) Clear(sess *repository.Session) {
	sess.History.Clear()
	slog.Info("history cleared", "session_id", sess.ID)
}

// Export encodes the history in the .passforge format.
func (s *HistoryService) Export(sess *repository.Session) []byte {
	return codec.Encode(sess.History.All())
}

// Import decodes data and appends its entries to the history. On a decode
// error the history is left unchanged.
func (s *HistoryService) Import(sess *repository.Session, data []byte) (model.ImportResponse, error) {
	entries, err := codec.Decode(data)
	if err != nil {
		slog.Warn("history import rejected", "session_id", sess.ID, "error", err)
		return model.ImportResponse{}, err
	}
	return s.appendEntries(sess, entries), nil
}

// ExportFile writes the history to path, adding the .passforge extension when
// missing, and returns the path written.
func (s *HistoryService) ExportFile(sess *repository.Session, path string) (string, error) {
	entries := sess.History.All()
	if len(entries) == 0 {
		return "", ErrNothingToExport
	}

	path = codec.EnsureExtension(path)
	if err := codec.WriteFile(path, entries); err != nil {
		return "", err
	}

	slog.Info("history exported", "session_id", sess.ID, "path", path, "count", len(entries))
	return path, nil
}

// ImportFile reads a .passforge file and appends its entries to the history.
// When path does not exist, path with the .passforge extension is tried.
func (s *HistoryService) ImportFile(sess *repository.Session, path string) (model.ImportResponse, error) {
	entries, err := codec.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if withExt := codec.EnsureExtension(path); withExt != path {
			entries, err = codec.ReadFile(withExt)
		}
	}
	if err != nil {
		slog.Warn("history import rejected", "session_id", sess.ID, "path", path, "error", err)
		return model.ImportResponse{}, err
	}
	return s.appendEntries(sess, entries), nil
}

func (s *HistoryService) appendEntries(sess *repository.Session, entries []string) model.ImportResponse {
	sess.History.Append(entries...)
	return model.ImportResponse{
		Imported: len(entries),
		Total:    sess.History.Len(),
	}
}

// Current returns the password currently displayed for the session.
func (s *HistoryService) Current(sess *repository.Session) (model.CurrentResponse, error) {
	password, ok := sess.Current()
	if !ok {
		return model.CurrentResponse{}, ErrNoCurrentPassword
	}
	return model.CurrentResponse{Password: password}, nil
}
