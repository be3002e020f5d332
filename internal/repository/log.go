package repository

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

var (
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordMultiline = errors.New("password must not contain line breaks")
	ErrPasswordTooLong   = errors.New("password is longer than the generator maximum")
)

// PasswordLog is append-only durable storage for generated passwords.
type PasswordLog interface {
	Append(ctx context.Context, entry *model.SavedPassword) error
	// List returns up to limit entries, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]model.SavedPassword, error)
	// Location describes where entries end up, for user-facing messages.
	Location() string
}

// ValidatePassword reports whether password can be stored in a PasswordLog.
// Anything the generator could have produced is accepted.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case strings.ContainsAny(password, "\r\n"):
		return ErrPasswordMultiline
	case utf8.RuneCountInString(password) > crypto.MaxLength:
		return ErrPasswordTooLong
	}
	return nil
}
