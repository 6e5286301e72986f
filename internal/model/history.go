package model

import "time"

// HistoryResponse lists a session's history in generation order.
type HistoryResponse struct {
	Entries []string `json:"entries"`
	Count   int      `json:"count"`
}

// ImportResponse reports how many entries a load appended.
type ImportResponse struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// CurrentResponse carries the currently displayed password for clipboard copy.
type CurrentResponse struct {
	Password string `json:"password"`
}

// SessionResponse is returned when a session is opened.
type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
