package orchestrators

import (
	"context"

	"coursedesk/internal/domain/course"
)

// CourseStoreForEdit defines the store interface needed by EditCourse.
type CourseStoreForEdit interface {
	GetByID(ctx context.Context, id string) (course.Session, error)
	Save(ctx context.Context, s course.Session) error
}

// EditCourseInput carries the replacement field values for a session.
type EditCourseInput struct {
	ID          string
	Date        string
	StartTime   string
	EndTime     string
	Name        string
	Description string
	Capacity    int
}

// EditCourseDeps holds dependencies for EditCourse.
type EditCourseDeps struct {
	CourseStore CourseStoreForEdit
}

// ExecuteEditCourse overwrites all editable fields of a session.
// PRE: Input fields are raw form values
// POST: Session persisted with Remaining clamped to the new Capacity;
// returns course.ErrNotFound if no such session
func ExecuteEditCourse(ctx context.Context, input EditCourseInput, deps EditCourseDeps) error {
	s, err := deps.CourseStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}

	s.Date = input.Date
	s.StartTime = input.StartTime
	s.EndTime = input.EndTime
	s.Name = input.Name
	s.Description = input.Description
	s.Capacity = input.Capacity

	if err := s.Validate(); err != nil {
		return err
	}

	// Shrinking capacity below the unclaimed seat count must not leave
	// Remaining > Capacity.
	s.ClampRemaining()

	return deps.CourseStore.Save(ctx, s)
}
