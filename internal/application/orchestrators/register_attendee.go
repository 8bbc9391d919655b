package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"coursedesk/internal/domain/registration"

	"github.com/google/uuid"
)

// RegistrationStoreForRegister defines the store interface needed by RegisterAttendee.
type RegistrationStoreForRegister interface {
	CreateWithSeat(ctx context.Context, r registration.Registration) error
}

// RegisterAttendeeInput carries input for a registration.
type RegisterAttendeeInput struct {
	CourseID string
	Name     string
	Email    string
	Phone    string
}

// RegisterAttendeeDeps holds dependencies for RegisterAttendee.
type RegisterAttendeeDeps struct {
	RegistrationStore RegistrationStoreForRegister
}

// ExecuteRegisterAttendee registers an attendee on a course session.
// The seat decrement and registration insert are one unit of work in the
// store, so a full session can never be oversold under concurrent
// requests.
// PRE: Input fields are raw form values
// POST: On success a registration exists and Remaining is one lower;
// returns course.ErrNotFound or course.ErrSoldOut otherwise
func ExecuteRegisterAttendee(ctx context.Context, input RegisterAttendeeInput, deps RegisterAttendeeDeps) (string, error) {
	r := registration.Registration{
		ID:        uuid.New().String(),
		CourseID:  input.CourseID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: time.Now(),
	}

	if err := r.Validate(); err != nil {
		return "", err
	}

	if err := deps.RegistrationStore.CreateWithSeat(ctx, r); err != nil {
		return "", err
	}

	slog.Info("attendee_registered", "course_id", input.CourseID, "registration_id", r.ID)
	return r.ID, nil
}
