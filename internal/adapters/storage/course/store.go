package course

import (
	"context"

	domain "coursedesk/internal/domain/course"
)

// Store persists CourseSession state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Session, error)
	ListByDateRange(ctx context.Context, from, to string) ([]domain.Session, error)
}
