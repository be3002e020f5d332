package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func newTestFileLog(t *testing.T) *FileLog {
	t.Helper()
	log := NewFileLog(filepath.Join(t.TempDir(), "passwords.txt"))
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	log.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return log
}

func TestFileLogAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("writes header once and appends lines", func(t *testing.T) {
		log := newTestFileLog(t)

		require.NoError(t, log.Append(ctx, &model.SavedPassword{Password: "first"}))
		require.NoError(t, log.Append(ctx, &model.SavedPassword{Password: "Aa1!: tricky"}))

		data, err := os.ReadFile(log.Location())
		require.NoError(t, err)
		assert.Equal(t,
			"# Password Generator History\n\n"+
				"2026-01-02 03:04:06: first\n"+
				"2026-01-02 03:04:07: Aa1!: tricky\n",
			string(data))
	})

	t.Run("keeps existing content", func(t *testing.T) {
		log := newTestFileLog(t)
		require.NoError(t, os.WriteFile(log.Location(), []byte("# Password Generator History\n\n2025-12-31 23:59:59: old\n"), 0o600))

		require.NoError(t, log.Append(ctx, &model.SavedPassword{Password: "new"}))

		entries, err := log.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "new", entries[0].Password)
		assert.Equal(t, "old", entries[1].Password)
	})

	t.Run("file is private", func(t *testing.T) {
		log := newTestFileLog(t)
		require.NoError(t, log.Append(ctx, &model.SavedPassword{Password: "pw"}))

		info, err := os.Stat(log.Location())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("rejects empty and multi-line passwords", func(t *testing.T) {
		log := newTestFileLog(t)

		assert.ErrorIs(t, log.Append(ctx, &model.SavedPassword{}), ErrPasswordRequired)
		assert.ErrorIs(t, log.Append(ctx, &model.SavedPassword{Password: "a\nb"}), ErrPasswordMultiline)
		assert.ErrorIs(t, log.Append(ctx, &model.SavedPassword{Password: strings.Repeat("a", crypto.MaxLength+1)}), ErrPasswordTooLong)

		_, err := os.Stat(log.Location())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("unwritable path", func(t *testing.T) {
		log := NewFileLog(filepath.Join(t.TempDir(), "missing-dir", "passwords.txt"))
		assert.Error(t, log.Append(ctx, &model.SavedPassword{Password: "pw"}))
	})

	t.Run("cancelled context", func(t *testing.T) {
		log := newTestFileLog(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, log.Append(cctx, &model.SavedPassword{Password: "pw"}), context.Canceled)
	})
}

func TestFileLogList(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is empty", func(t *testing.T) {
		log := newTestFileLog(t)

		entries, err := log.List(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("newest first with limit and recomputed strength", func(t *testing.T) {
		log := newTestFileLog(t)
		for _, pw := range []string{"aaaaaaaa", "Aa1!Aa1!", "Aa1!Aa1!Aa1!"} {
			require.NoError(t, log.Append(ctx, &model.SavedPassword{Password: pw}))
		}

		entries, err := log.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Aa1!Aa1!Aa1!", entries[0].Password)
		assert.Equal(t, crypto.VeryStrong, entries[0].Strength)
		assert.Equal(t, int64(3), entries[0].ID)
		assert.Equal(t, "Aa1!Aa1!", entries[1].Password)
		assert.Equal(t, crypto.Moderate, entries[1].Strength)
	})

	t.Run("skips lines too long to read", func(t *testing.T) {
		log := newTestFileLog(t)
		content := "# Password Generator History\n\n" +
			"2026-01-02 03:04:05: short-ok-1A!\n" +
			"2026-01-02 03:04:06: " + strings.Repeat("a", 70000) + "\n" +
			"2026-01-02 03:04:07: after-long-2B?\n"
		require.NoError(t, os.WriteFile(log.Location(), []byte(content), 0o600))

		entries, err := log.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "after-long-2B?", entries[0].Password)
		assert.Equal(t, "short-ok-1A!", entries[1].Password)
	})

	t.Run("oversized last line without newline", func(t *testing.T) {
		log := newTestFileLog(t)
		content := "2026-01-02 03:04:05: short-ok-1A!\n" +
			"2026-01-02 03:04:06: " + strings.Repeat("a", 70000)
		require.NoError(t, os.WriteFile(log.Location(), []byte(content), 0o600))

		entries, err := log.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "short-ok-1A!", entries[0].Password)
	})
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "generated", password: "Aa1!Aa1!Aa1!"},
		{name: "maximum length", password: strings.Repeat("a", crypto.MaxLength)},
		{name: "maximum length in runes", password: strings.Repeat("é", crypto.MaxLength)},
		{name: "empty", password: "", wantErr: ErrPasswordRequired},
		{name: "carriage return", password: "a\rb", wantErr: ErrPasswordMultiline},
		{name: "too long", password: strings.Repeat("a", crypto.MaxLength+1), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
		wantPW string
	}{
		{name: "entry", line: "2026-01-02 03:04:05: secret", wantOK: true, wantPW: "secret"},
		{name: "password with separator", line: "2026-01-02 03:04:05: a: b", wantOK: true, wantPW: "a: b"},
		{name: "header", line: "# Password Generator History", wantOK: false},
		{name: "blank", line: "", wantOK: false},
		{name: "bad timestamp", line: "2026-13-02 03:04:05: secret", wantOK: false},
		{name: "no password", line: "2026-01-02 03:04:05: ", wantOK: false},
		{name: "garbage", line: "hello", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := parseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPW, entry.Password)
			}
		})
	}
}
