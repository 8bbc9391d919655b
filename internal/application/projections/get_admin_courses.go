package projections

import (
	"context"

	"coursedesk/internal/domain/course"
	"coursedesk/internal/domain/registration"
)

// AdminCoursesCourseStore defines the store interface needed by this projection.
type AdminCoursesCourseStore interface {
	List(ctx context.Context) ([]course.Session, error)
}

// AdminCoursesRegistrationStore defines the store interface needed by this projection.
type AdminCoursesRegistrationStore interface {
	ListByCourseID(ctx context.Context, courseID string) ([]registration.Registration, error)
}

// GetAdminCoursesDeps holds dependencies for the projection.
type GetAdminCoursesDeps struct {
	CourseStore       AdminCoursesCourseStore
	RegistrationStore AdminCoursesRegistrationStore
}

// AdminCourse pairs a session with its registration list.
type AdminCourse struct {
	course.Session
	Registrations []registration.Registration
}

// QueryAdminCourses lists every session ordered by (date, start time)
// together with the attendees registered on it.
// POST: read-only against storage
func QueryAdminCourses(ctx context.Context, deps GetAdminCoursesDeps) ([]AdminCourse, error) {
	sessions, err := deps.CourseStore.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]AdminCourse, 0, len(sessions))
	for _, s := range sessions {
		regs, err := deps.RegistrationStore.ListByCourseID(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, AdminCourse{Session: s, Registrations: regs})
	}
	return results, nil
}
