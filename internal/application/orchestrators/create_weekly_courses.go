package orchestrators

import (
	"context"
	"errors"
	"time"

	"coursedesk/internal/domain/course"

	"github.com/google/uuid"
)

// Weekly creation errors
var (
	ErrInvalidStartDate = errors.New("start date must be in YYYY-MM-DD format")
	ErrInvalidWeekday   = errors.New("weekday must be 0 (Monday) through 6 (Sunday)")
	ErrInvalidWeekCount = errors.New("week count must be a positive number")
)

// CreateWeeklyCoursesInput carries input for a weekly-recurring batch.
// Weekday is Monday-based: 0=Monday .. 6=Sunday.
type CreateWeeklyCoursesInput struct {
	StartDate   string // YYYY-MM-DD; first occurrence is on/after this date
	Weeks       int
	Weekday     int
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Name        string
	Description string
	Capacity    int
}

// CreateWeeklyCoursesDeps holds dependencies for CreateWeeklyCourses.
type CreateWeeklyCoursesDeps struct {
	CourseStore CourseStoreForCreate
}

// ExecuteCreateWeeklyCourses creates one session per week at a fixed
// 7-day stride. The start date is advanced forward (never backward)
// day-by-day until it lands on the requested weekday; that is the first
// occurrence. All sessions share name/times/capacity but carry their own
// ID and an independent Remaining count.
// PRE: Input fields are raw form values
// POST: Weeks sessions persisted; returns their IDs in date order
func ExecuteCreateWeeklyCourses(ctx context.Context, input CreateWeeklyCoursesInput, deps CreateWeeklyCoursesDeps) ([]string, error) {
	if input.Weeks <= 0 {
		return nil, ErrInvalidWeekCount
	}
	if input.Weekday < 0 || input.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	current, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, ErrInvalidStartDate
	}

	// Validate the shared fields once against the first candidate date.
	probe := course.Session{
		ID:          "probe",
		Date:        input.StartDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		Remaining:   input.Capacity,
	}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	for mondayBased(current.Weekday()) != input.Weekday {
		current = current.AddDate(0, 0, 1)
	}

	ids := make([]string, 0, input.Weeks)
	for i := 0; i < input.Weeks; i++ {
		s := course.Session{
			ID:          uuid.New().String(),
			Date:        current.Format("2006-01-02"),
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
			Name:        input.Name,
			Description: input.Description,
			Capacity:    input.Capacity,
			Remaining:   input.Capacity,
		}
		if err := deps.CourseStore.Save(ctx, s); err != nil {
			return ids, err
		}
		ids = append(ids, s.ID)
		current = current.AddDate(0, 0, 7)
	}

	return ids, nil
}

// mondayBased converts time.Weekday (Sunday=0) to Monday-based (Monday=0).
func mondayBased(d time.Weekday) int {
	return (int(d) + 6) % 7
}
