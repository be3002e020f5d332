package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	fileHeader     = "# Password Generator History\n\n"
	fileTimeLayout = "2006-01-02 15:04:05"

	// maxLineBytes bounds a single line on read. Longer lines were not written
	// by Append and are skipped.
	maxLineBytes = 4096
)

// FileLog appends timestamped passwords to a plain text file, one per line:
//
//	2006-01-02 15:04:05: <password>
type FileLog struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileLog creates a FileLog writing to path. The file is created on first Append.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path, now: time.Now}
}

// Location returns the file path.
func (f *FileLog) Location() string {
	return f.path
}

// Append writes entry to the end of the file, writing the header first if the file is new.
func (f *FileLog) Append(ctx context.Context, entry *model.SavedPassword) error {
	if err := ValidatePassword(entry.Password); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = f.now()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening password log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat password log: %w", err)
	}

	var b strings.Builder
	if info.Size() == 0 {
		b.WriteString(fileHeader)
	}
	fmt.Fprintf(&b, "%s: %s\n", entry.CreatedAt.Format(fileTimeLayout), entry.Password)

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing password log: %w", err)
	}
	return file.Sync()
}

// List parses the file back into entries, newest first. A missing file yields no entries.
// Strength is recomputed because the file format does not store it.
func (f *FileLog) List(ctx context.Context, limit int) ([]model.SavedPassword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.SavedPassword{}, nil
		}
		return nil, fmt.Errorf("opening password log: %w", err)
	}
	defer file.Close()

	var entries []model.SavedPassword
	reader := bufio.NewReaderSize(file, maxLineBytes)
	var id int64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading password log: %w", err)
		}
		if isPrefix {
			if err := skipLine(reader); err != nil {
				return nil, fmt.Errorf("reading password log: %w", err)
			}
			continue
		}

		entry, ok := parseLine(string(line))
		if !ok {
			continue
		}
		id++
		entry.ID = id
		entries = append(entries, entry)
	}

	// Newest first.
	for l, r := 0, len(entries)-1; l < r; l, r = l+1, r-1 {
		entries[l], entries[r] = entries[r], entries[l]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []model.SavedPassword{}
	}
	return entries, nil
}

// skipLine discards the rest of a line that did not fit the reader's buffer.
func skipLine(reader *bufio.Reader) error {
	for {
		_, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !isPrefix {
			return nil
		}
	}
}

// parseLine splits "<timestamp>: <password>". Passwords may contain ": " themselves,
// so the split happens at the fixed timestamp width.
func parseLine(line string) (model.SavedPassword, bool) {
	if line == "" || strings.HasPrefix(line, "#") {
		return model.SavedPassword{}, false
	}
	n := len(fileTimeLayout)
	if len(line) < n+2 || line[n:n+2] != ": " {
		return model.SavedPassword{}, false
	}
	ts, err := time.ParseInLocation(fileTimeLayout, line[:n], time.Local)
	if err != nil {
		return model.SavedPassword{}, false
	}
	password := line[n+2:]
	if password == "" {
		return model.SavedPassword{}, false
	}
	return model.SavedPassword{
		Password:  password,
		Strength:  crypto.Evaluate(password),
		CreatedAt: ts,
	}, true
}
