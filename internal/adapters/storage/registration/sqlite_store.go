package registration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coursedesk/internal/adapters/storage"
	courseDomain "coursedesk/internal/domain/course"
	domain "coursedesk/internal/domain/registration"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new RegistrationStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Registration by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Registration, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, course_id, name, email, phone, created_at FROM registration WHERE id = ?", id)
	entity, err := scanRegistration(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Registration{}, fmt.Errorf("registration not found: %w", err)
	}
	return entity, err
}

// CreateWithSeat claims a seat and records the registration atomically.
// The conditional UPDATE only succeeds while remaining > 0, so concurrent
// registrations can never oversell the session.
// PRE: entity has been validated
// POST: On success, registration row exists AND remaining is one lower;
// on ErrSoldOut/ErrNotFound nothing is written
func (s *SQLiteStore) CreateWithSeat(ctx context.Context, entity domain.Registration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seat claim: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE course_session SET remaining = remaining - 1 WHERE id = ? AND remaining > 0",
		entity.CourseID,
	)
	if err != nil {
		return fmt.Errorf("claim seat: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a missing session from a full one.
		var exists int
		row := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM course_session WHERE id = ?", entity.CourseID)
		if err := row.Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return courseDomain.ErrNotFound
		}
		return courseDomain.ErrSoldOut
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO registration (id, course_id, name, email, phone, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		entity.ID, entity.CourseID, entity.Name, entity.Email, entity.Phone, entity.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

// ListByCourseID retrieves Registrations for a course session.
// PRE: courseID is non-empty
// POST: Returns registrations ordered by creation time
func (s *SQLiteStore) ListByCourseID(ctx context.Context, courseID string) ([]domain.Registration, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, course_id, name, email, phone, created_at FROM registration WHERE course_id = ? ORDER BY created_at", courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Registration
	for rows.Next() {
		entity, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// DeleteByCourseID removes all Registrations for a course session.
// PRE: courseID is non-empty
// POST: No registrations reference the course; no error if none existed
func (s *SQLiteStore) DeleteByCourseID(ctx context.Context, courseID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM registration WHERE course_id = ?", courseID)
	return err
}

func scanRegistration(scan func(dest ...any) error) (domain.Registration, error) {
	var entity domain.Registration
	var createdAt string
	if err := scan(&entity.ID, &entity.CourseID, &entity.Name, &entity.Email, &entity.Phone, &createdAt); err != nil {
		return domain.Registration{}, err
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		entity.CreatedAt = t
	}
	return entity, nil
}
