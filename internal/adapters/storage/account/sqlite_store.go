package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coursedesk/internal/adapters/storage"
	domain "coursedesk/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new AccountStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByEmail retrieves an Account by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, email, password_hash, role, created_at, failed_logins, locked_until FROM account WHERE email = ?", email)
	var entity domain.Account
	var createdAt string
	var lockedUntil sql.NullString
	err := row.Scan(&entity.ID, &entity.Email, &entity.PasswordHash, &entity.Role, &createdAt, &entity.FailedLogins, &lockedUntil)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	if err != nil {
		return domain.Account{}, err
	}
	if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		entity.CreatedAt = t
	}
	if lockedUntil.Valid && lockedUntil.String != "" {
		if t, perr := time.Parse(time.RFC3339, lockedUntil.String); perr == nil {
			entity.LockedUntil = t
		}
	}
	return entity, nil
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Account) error {
	var lockedUntil any
	if !entity.LockedUntil.IsZero() {
		lockedUntil = entity.LockedUntil.Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO account (id, email, password_hash, role, created_at, failed_logins, locked_until) VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET email=excluded.email, password_hash=excluded.password_hash, role=excluded.role, failed_logins=excluded.failed_logins, locked_until=excluded.locked_until",
		entity.ID, entity.Email, entity.PasswordHash, entity.Role, entity.CreatedAt.Format(time.RFC3339), entity.FailedLogins, lockedUntil,
	)
	return err
}

// Count returns the number of accounts.
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM account")
	var n int
	err := row.Scan(&n)
	return n, err
}
