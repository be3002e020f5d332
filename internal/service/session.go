package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/history"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService hands out history sessions and records generated passwords into them.
type SessionService struct {
	store  *history.Store
	secret string
	ttl    time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(store *history.Store, secret string, ttl time.Duration) *SessionService {
	return &SessionService{store: store, secret: secret, ttl: ttl}
}

// Start opens a new empty session and returns its signed token.
func (s *SessionService) Start() (model.SessionResponse, error) {
	id := uuid.NewString()

	token, err := crypto.IssueSessionToken(id, s.secret, s.ttl)
	if err != nil {
		return model.SessionResponse{}, err
	}
	s.store.Get(id)

	return model.SessionResponse{
		SessionID: id,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl).UTC(),
	}, nil
}

// Record appends a generated password to the session's history.
// Sessions pruned for inactivity are recreated, since the token is still valid.
func (s *SessionService) Record(sessionID string, resp model.GenerateResponse) {
	s.store.Get(sessionID).Append(resp.Password, resp.Strength)
}

// History lists the session's passwords, oldest first, numbered from 1.
func (s *SessionService) History(sessionID string) (model.HistoryResponse, error) {
	log, ok := s.store.Lookup(sessionID)
	if !ok {
		return model.HistoryResponse{}, ErrSessionNotFound
	}

	entries := log.Entries()
	out := make([]model.HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = model.HistoryEntry{
			Index:     i + 1,
			Password:  e.Password,
			Strength:  e.Strength,
			CreatedAt: e.CreatedAt,
		}
	}

	return model.HistoryResponse{SessionID: sessionID, Entries: out}, nil
}

// End discards the session's history. The token stays valid until it expires,
// and a later Record starts an empty history under the same ID.
func (s *SessionService) End(sessionID string) error {
	if _, ok := s.store.Lookup(sessionID); !ok {
		return ErrSessionNotFound
	}
	s.store.Remove(sessionID)
	return nil
}
