package registration

import (
	"context"

	domain "coursedesk/internal/domain/registration"
)

// Store persists Registration state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Registration, error)
	// CreateWithSeat inserts the registration and decrements the parent
	// course session's remaining seats as a single transaction.
	// Returns course.ErrNotFound if the session does not exist and
	// course.ErrSoldOut if no seats remain.
	CreateWithSeat(ctx context.Context, value domain.Registration) error
	ListByCourseID(ctx context.Context, courseID string) ([]domain.Registration, error)
	DeleteByCourseID(ctx context.Context, courseID string) error
}
