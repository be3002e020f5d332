package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

// ArchiveService persists passwords to a durable log.
type ArchiveService struct {
	log repository.PasswordLog
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(log repository.PasswordLog) *ArchiveService {
	return &ArchiveService{log: log}
}

// Validate reports whether password is acceptable to the log. It rejects empty,
// multi-line and over-long input with the repository sentinels.
func (s *ArchiveService) Validate(password string) error {
	return repository.ValidatePassword(password)
}

// Save writes password to the log. Failures are logged and reported through
// SaveResult; they are never returned as errors.
func (s *ArchiveService) Save(ctx context.Context, password string) model.SaveResult {
	entry := model.SavedPassword{
		Password: password,
		Strength: crypto.Evaluate(password),
	}

	if err := s.log.Append(ctx, &entry); err != nil {
		slog.Warn("saving password failed", "location", s.log.Location(), "error", err)
		return model.SaveResult{Saved: false}
	}

	return model.SaveResult{Saved: true, Location: s.log.Location()}
}

// Recent returns up to limit saved passwords, newest first.
func (s *ArchiveService) Recent(ctx context.Context, limit int) ([]model.SavedPasswordResponse, error) {
	entries, err := s.log.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]model.SavedPasswordResponse, len(entries))
	for i, e := range entries {
		result[i] = model.SavedPasswordResponse{
			Password:  e.Password,
			Strength:  e.Strength,
			CreatedAt: e.CreatedAt,
		}
	}
	return result, nil
}
