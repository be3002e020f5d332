// Package history keeps the in-memory record of passwords generated during a session.
// The generator never writes here; callers append what they choose to keep.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Entry is one recorded password.
type Entry struct {
	Password  string
	Strength  crypto.Strength
	CreatedAt time.Time
}

// Log is an append-only, concurrency-safe list of entries.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	lastSeen time.Time
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{lastSeen: time.Now()}
}

// Append records password with its strength label.
func (l *Log) Append(password string, strength crypto.Strength) Entry {
	e := Entry{Password: password, Strength: strength, CreatedAt: time.Now().UTC()}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	l.lastSeen = time.Now()
	return e
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log) touch() {
	l.mu.Lock()
	l.lastSeen = time.Now()
	l.mu.Unlock()
}

func (l *Log) idleSince() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastSeen
}

// Store maps session IDs to their logs.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Log
	idleTTL  time.Duration
}

// NewStore creates a Store that forgets sessions idle for longer than idleTTL.
func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Log),
		idleTTL:  idleTTL,
	}
}

// Get returns the log for id, creating it on first use.
func (s *Store) Get(id string) *Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.sessions[id]
	if !ok {
		l = NewLog()
		s.sessions[id] = l
		return l
	}
	l.touch()
	return l
}

// Lookup returns the log for id without creating one.
func (s *Store) Lookup(id string) (*Log, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.sessions[id]
	if ok {
		l.touch()
	}
	return l, ok
}

// Remove drops the log for id.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune removes sessions idle since before now-idleTTL and returns how many were dropped.
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, l := range s.sessions {
		if now.Sub(l.idleSince()) > s.idleTTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run prunes idle sessions every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Prune(now)
		}
	}
}
