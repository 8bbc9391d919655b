package orchestrators

import (
	"context"
	"log/slog"
)

// CourseStoreForDelete defines the store interface needed by DeleteCourse.
type CourseStoreForDelete interface {
	Delete(ctx context.Context, id string) error
}

// RegistrationStoreForDelete defines the store interface needed by DeleteCourse.
type RegistrationStoreForDelete interface {
	DeleteByCourseID(ctx context.Context, courseID string) error
}

// DeleteCourseDeps holds dependencies for DeleteCourse.
type DeleteCourseDeps struct {
	CourseStore       CourseStoreForDelete
	RegistrationStore RegistrationStoreForDelete
}

// ExecuteDeleteCourse removes a session and all its registrations.
// The cascade is application-level: registrations first, then the
// session, so the store never needs a foreign-key cascade.
// POST: No registration references the session; the session row is gone.
// Deleting a nonexistent id is a no-op, not an error.
func ExecuteDeleteCourse(ctx context.Context, courseID string, deps DeleteCourseDeps) error {
	if err := deps.RegistrationStore.DeleteByCourseID(ctx, courseID); err != nil {
		return err
	}
	if err := deps.CourseStore.Delete(ctx, courseID); err != nil {
		return err
	}
	slog.Info("course_deleted", "course_id", courseID)
	return nil
}
