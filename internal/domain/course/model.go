package course

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Slot constants derived from a session's start hour.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyName       = errors.New("course name cannot be empty")
	ErrEmptyDate       = errors.New("course date cannot be empty")
	ErrInvalidDate     = errors.New("course date must be in YYYY-MM-DD format")
	ErrInvalidTime     = errors.New("times must be in HH:MM format")
	ErrInvalidTimes    = errors.New("start time must be before end time")
	ErrInvalidCapacity = errors.New("capacity must be a positive number")
	ErrNotFound        = errors.New("course session not found")
	ErrSoldOut         = errors.New("course session is sold out")
)

// Session represents one scheduled course offering with a seat capacity.
// Date is YYYY-MM-DD and times are zero-padded HH:MM, so lexicographic
// order matches temporal order within a day.
// INVARIANT: 0 <= Remaining <= Capacity
type Session struct {
	ID          string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Name        string
	Description string // optional, Markdown
	Capacity    int
	Remaining   int
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Name) > MaxNameLength {
		return errors.New("course name cannot exceed 100 characters")
	}
	if len(s.Description) > MaxDescriptionLength {
		return errors.New("course description cannot exceed 2000 characters")
	}
	if strings.TrimSpace(s.Date) == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return ErrInvalidDate
	}
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return ErrInvalidTime
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return ErrInvalidTime
	}
	if !start.Before(end) {
		return ErrInvalidTimes
	}
	if s.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// Slot classifies the session as morning or afternoon by its start hour.
// PRE: StartTime is valid HH:MM
// INVARIANT: Session fields are not mutated
func (s *Session) Slot() string {
	hour, err := strconv.Atoi(strings.SplitN(s.StartTime, ":", 2)[0])
	if err == nil && hour < 12 {
		return SlotMorning
	}
	return SlotAfternoon
}

// Day returns the day-of-month of the session's date.
// PRE: Date is valid YYYY-MM-DD
// POST: Returns 1..31, or 0 if Date cannot be parsed
func (s *Session) Day() int {
	d, err := time.Parse("2006-01-02", s.Date)
	if err != nil {
		return 0
	}
	return d.Day()
}

// ClampRemaining enforces Remaining <= Capacity after a capacity edit.
// POST: Remaining <= Capacity
func (s *Session) ClampRemaining() {
	if s.Remaining > s.Capacity {
		s.Remaining = s.Capacity
	}
}
