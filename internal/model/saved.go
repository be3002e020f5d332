package model

import (
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// SavedPassword represents a password written to the durable log.
type SavedPassword struct {
	ID        int64
	Password  string
	Strength  crypto.Strength
	CreatedAt time.Time
}

// SaveRequest asks the server to persist a password.
type SaveRequest struct {
	Password string `json:"password"`
}

// SaveResult reports whether a password reached durable storage.
// A failed save never invalidates the password itself.
type SaveResult struct {
	Saved    bool   `json:"saved"`
	Location string `json:"location,omitempty"`
}

// SavedPasswordResponse is a durable log entry as returned by the API.
type SavedPasswordResponse struct {
	Password  string          `json:"password"`
	Strength  crypto.Strength `json:"strength"`
	CreatedAt time.Time       `json:"created_at"`
}
