package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/model"
)

const savedSchema = `
	CREATE TABLE IF NOT EXISTS saved_passwords (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		password   VARCHAR(255) NOT NULL,
		strength   VARCHAR(16)  NOT NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_saved_passwords_created_at (created_at)
	)`

// MySQLLog handles saved password persistence in the saved_passwords table.
type MySQLLog struct {
	db       *sql.DB
	location string
}

// NewMySQLLog creates a new MySQLLog. label is shown to users as the save location.
func NewMySQLLog(db *sql.DB, label string) *MySQLLog {
	return &MySQLLog{db: db, location: label}
}

// EnsureSchema creates the saved_passwords table if it does not exist.
func (r *MySQLLog) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, savedSchema)
	return err
}

// Location returns the label given at construction.
func (r *MySQLLog) Location() string {
	return r.location
}

// Append inserts a saved password and sets the generated ID on the entry.
func (r *MySQLLog) Append(ctx context.Context, entry *model.SavedPassword) error {
	if err := ValidatePassword(entry.Password); err != nil {
		return err
	}

	strength, err := entry.Strength.MarshalText()
	if err != nil {
		return err
	}

	query := `INSERT INTO saved_passwords (password, strength) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, entry.Password, string(strength))
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// List retrieves saved passwords, most recent first.
func (r *MySQLLog) List(ctx context.Context, limit int) ([]model.SavedPassword, error) {
	query := `SELECT id, password, strength, created_at FROM saved_passwords ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.SavedPassword{}
	for rows.Next() {
		var (
			e        model.SavedPassword
			strength string
		)
		if err := rows.Scan(&e.ID, &e.Password, &strength, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := e.Strength.UnmarshalText([]byte(strength)); err != nil {
			return nil, fmt.Errorf("saved password %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
