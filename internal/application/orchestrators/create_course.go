package orchestrators

import (
	"context"

	"coursedesk/internal/domain/course"

	"github.com/google/uuid"
)

// CourseStoreForCreate defines the store interface needed by course creation.
type CourseStoreForCreate interface {
	Save(ctx context.Context, s course.Session) error
}

// CreateCourseInput carries input for a single-date course session.
type CreateCourseInput struct {
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Name        string
	Description string
	Capacity    int
}

// CreateCourseDeps holds dependencies for CreateCourse.
type CreateCourseDeps struct {
	CourseStore CourseStoreForCreate
}

// ExecuteCreateCourse creates one course session on a single date.
// PRE: Input fields are raw form values
// POST: Session persisted with Remaining == Capacity; returns its ID
func ExecuteCreateCourse(ctx context.Context, input CreateCourseInput, deps CreateCourseDeps) (string, error) {
	s := course.Session{
		ID:          uuid.New().String(),
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		Remaining:   input.Capacity,
	}

	if err := s.Validate(); err != nil {
		return "", err
	}

	if err := deps.CourseStore.Save(ctx, s); err != nil {
		return "", err
	}

	return s.ID, nil
}
