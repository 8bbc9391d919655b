package registration

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 50
	MaxEmailLength = 254
	MaxPhoneLength = 20
)

// Domain errors
var (
	ErrEmptyCourseID = errors.New("course ID cannot be empty")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmptyPhone    = errors.New("phone cannot be empty")
)

// Registration represents one claimed seat on a course session.
// CourseID is a weak reference: it is swept by the session's cascading
// delete, never enforced by the store.
type Registration struct {
	ID        string
	CourseID  string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// Validate checks if the Registration has valid data.
// PRE: Registration struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.CourseID) == "" {
		return ErrEmptyCourseID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > MaxNameLength {
		return errors.New("name cannot exceed 50 characters")
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if len(r.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrEmptyPhone
	}
	if len(r.Phone) > MaxPhoneLength {
		return errors.New("phone cannot exceed 20 characters")
	}
	return nil
}
