package model

import (
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// SessionResponse carries a new history session handle.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HistoryEntry is one password in a session's history listing.
type HistoryEntry struct {
	Index     int             `json:"index"`
	Password  string          `json:"password"`
	Strength  crypto.Strength `json:"strength"`
	CreatedAt time.Time       `json:"created_at"`
}

// HistoryResponse lists a session's generated passwords, oldest first.
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	Entries   []HistoryEntry `json:"entries"`
}
