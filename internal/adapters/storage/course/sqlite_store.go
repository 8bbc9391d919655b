package course

import (
	"context"
	"database/sql"
	"fmt"

	"coursedesk/internal/adapters/storage"
	domain "coursedesk/internal/domain/course"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new CourseStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const sessionColumns = "id, date, start_time, end_time, name, description, capacity, remaining"

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity, or domain.ErrNotFound if no row matches
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM course_session WHERE id = ?", id)
	var entity domain.Session
	err := row.Scan(&entity.ID, &entity.Date, &entity.StartTime, &entity.EndTime, &entity.Name, &entity.Description, &entity.Capacity, &entity.Remaining)
	if err == sql.ErrNoRows {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("get course session: %w", err)
	}
	return entity, nil
}

// Save persists a Session to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO course_session (id, date, start_time, end_time, name, description, capacity, remaining) VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET date=excluded.date, start_time=excluded.start_time, end_time=excluded.end_time, name=excluded.name, description=excluded.description, capacity=excluded.capacity, remaining=excluded.remaining",
		entity.ID, entity.Date, entity.StartTime, entity.EndTime, entity.Name, entity.Description, entity.Capacity, entity.Remaining,
	)
	return err
}

// Delete removes a Session from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed; no error if it never existed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM course_session WHERE id = ?", id)
	return err
}

// List retrieves all Sessions ordered by date then start time.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Session, error) {
	return s.querySessions(ctx, "SELECT "+sessionColumns+" FROM course_session ORDER BY date, start_time")
}

// ListByDateRange retrieves Sessions whose date falls within [from, to]
// inclusive. Dates are zero-padded YYYY-MM-DD so the comparison is a true
// closed range on date values, not a string-prefix match.
// PRE: from <= to, both YYYY-MM-DD
// POST: Returns matching sessions ordered by date then start time
func (s *SQLiteStore) ListByDateRange(ctx context.Context, from, to string) ([]domain.Session, error) {
	return s.querySessions(ctx, "SELECT "+sessionColumns+" FROM course_session WHERE date >= ? AND date <= ? ORDER BY date, start_time", from, to)
}

func (s *SQLiteStore) querySessions(ctx context.Context, query string, args ...interface{}) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		var entity domain.Session
		if err := rows.Scan(&entity.ID, &entity.Date, &entity.StartTime, &entity.EndTime, &entity.Name, &entity.Description, &entity.Capacity, &entity.Remaining); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
