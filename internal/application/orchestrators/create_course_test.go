package orchestrators

import (
	"context"
	"testing"

	"coursedesk/internal/domain/course"
	"coursedesk/internal/domain/registration"
)

// mockCourseStore implements the course store interfaces for testing.
type mockCourseStore struct {
	sessions map[string]course.Session
	saved    []string // IDs in save order
}

func newMockCourseStore() *mockCourseStore {
	return &mockCourseStore{sessions: make(map[string]course.Session)}
}

// Save implements CourseStoreForCreate/CourseStoreForEdit.
// POST: session is persisted
func (m *mockCourseStore) Save(_ context.Context, s course.Session) error {
	m.sessions[s.ID] = s
	m.saved = append(m.saved, s.ID)
	return nil
}

// GetByID implements CourseStoreForEdit.
// POST: returns session or course.ErrNotFound
func (m *mockCourseStore) GetByID(_ context.Context, id string) (course.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return course.Session{}, course.ErrNotFound
	}
	return s, nil
}

// Delete implements CourseStoreForDelete.
// POST: session with given id is removed; missing id is a no-op
func (m *mockCourseStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

// mockRegistrationStore implements the registration store interfaces for testing.
type mockRegistrationStore struct {
	regs    map[string]registration.Registration
	courses *mockCourseStore
}

func newMockRegistrationStore(courses *mockCourseStore) *mockRegistrationStore {
	return &mockRegistrationStore{regs: make(map[string]registration.Registration), courses: courses}
}

// CreateWithSeat implements RegistrationStoreForRegister with the same
// claim semantics as the SQLite store.
// POST: registration stored and remaining decremented, or nothing changes
func (m *mockRegistrationStore) CreateWithSeat(_ context.Context, r registration.Registration) error {
	s, ok := m.courses.sessions[r.CourseID]
	if !ok {
		return course.ErrNotFound
	}
	if s.Remaining <= 0 {
		return course.ErrSoldOut
	}
	s.Remaining--
	m.courses.sessions[r.CourseID] = s
	m.regs[r.ID] = r
	return nil
}

// DeleteByCourseID implements RegistrationStoreForDelete.
// POST: no registration references the course
func (m *mockRegistrationStore) DeleteByCourseID(_ context.Context, courseID string) error {
	for id, r := range m.regs {
		if r.CourseID == courseID {
			delete(m.regs, id)
		}
	}
	return nil
}

// --- ExecuteCreateCourse tests ---

// TestExecuteCreateCourse_Valid tests creating a single session.
func TestExecuteCreateCourse_Valid(t *testing.T) {
	store := newMockCourseStore()
	id, err := ExecuteCreateCourse(context.Background(), CreateCourseInput{
		Date:      "2026-03-14",
		StartTime: "09:00",
		EndTime:   "11:00",
		Name:      "Intro to Pottery",
		Capacity:  8,
	}, CreateCourseDeps{CourseStore: store})
	if err != nil {
		t.Fatalf("ExecuteCreateCourse() error = %v", err)
	}
	s, ok := store.sessions[id]
	if !ok {
		t.Fatal("session was not saved")
	}
	if s.Remaining != 8 {
		t.Errorf("Remaining = %d, want capacity 8", s.Remaining)
	}
}

// TestExecuteCreateCourse_Invalid tests validation failures reach the caller.
func TestExecuteCreateCourse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateCourseInput
		wantErr error
	}{
		{
			name:    "start equals end",
			input:   CreateCourseInput{Date: "2026-03-14", StartTime: "09:00", EndTime: "09:00", Name: "X", Capacity: 5},
			wantErr: course.ErrInvalidTimes,
		},
		{
			name:    "start after end",
			input:   CreateCourseInput{Date: "2026-03-14", StartTime: "14:00", EndTime: "09:00", Name: "X", Capacity: 5},
			wantErr: course.ErrInvalidTimes,
		},
		{
			name:    "zero capacity",
			input:   CreateCourseInput{Date: "2026-03-14", StartTime: "09:00", EndTime: "11:00", Name: "X", Capacity: 0},
			wantErr: course.ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockCourseStore()
			_, err := ExecuteCreateCourse(context.Background(), tt.input, CreateCourseDeps{CourseStore: store})
			if err != tt.wantErr {
				t.Errorf("ExecuteCreateCourse() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.sessions) != 0 {
				t.Error("invalid input must not persist a session")
			}
		})
	}
}
