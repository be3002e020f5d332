package repository

import (
	"context"
	"log/slog"
)

// OpenLog returns the MySQL log when dsn is set and the database is reachable,
// and the file log at path otherwise. close releases the database pool, if any.
func OpenLog(ctx context.Context, dsn, path string) (log PasswordLog, close func() error) {
	if dsn != "" {
		db, err := NewDB(ctx, dsn)
		if err != nil {
			slog.Warn("database connection failed, saving to file instead", "file", path, "error", err)
		} else {
			mysqlLog := NewMySQLLog(db, RedactDSN(dsn))
			if err := mysqlLog.EnsureSchema(ctx); err != nil {
				slog.Warn("creating saved_passwords table failed, saving to file instead", "file", path, "error", err)
				db.Close()
			} else {
				return mysqlLog, db.Close
			}
		}
	}
	return NewFileLog(path), func() error { return nil }
}
