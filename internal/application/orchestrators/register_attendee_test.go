package orchestrators

import (
	"context"
	"fmt"
	"testing"

	"coursedesk/internal/domain/course"
	"coursedesk/internal/domain/registration"
)

// TestExecuteRegisterAttendee_SeatCountdown tests that k registrations
// leave capacity-k seats and attempt k+1 fails sold out.
func TestExecuteRegisterAttendee_SeatCountdown(t *testing.T) {
	const capacity = 4
	courses := newMockCourseStore()
	courses.sessions["c1"] = course.Session{
		ID: "c1", Date: "2026-03-14", StartTime: "09:00", EndTime: "11:00",
		Name: "Intro to Pottery", Capacity: capacity, Remaining: capacity,
	}
	regs := newMockRegistrationStore(courses)
	deps := RegisterAttendeeDeps{RegistrationStore: regs}

	for k := 1; k <= capacity; k++ {
		_, err := ExecuteRegisterAttendee(context.Background(), RegisterAttendeeInput{
			CourseID: "c1",
			Name:     fmt.Sprintf("Attendee %d", k),
			Email:    fmt.Sprintf("a%d@example.com", k),
			Phone:    "021 555 0101",
		}, deps)
		if err != nil {
			t.Fatalf("registration %d error = %v", k, err)
		}
		if got := courses.sessions["c1"].Remaining; got != capacity-k {
			t.Errorf("after %d registrations Remaining = %d, want %d", k, got, capacity-k)
		}
	}

	_, err := ExecuteRegisterAttendee(context.Background(), RegisterAttendeeInput{
		CourseID: "c1", Name: "One Too Many", Email: "late@example.com", Phone: "021 555 0102",
	}, deps)
	if err != course.ErrSoldOut {
		t.Fatalf("registration beyond capacity error = %v, want ErrSoldOut", err)
	}
	if got := courses.sessions["c1"].Remaining; got != 0 {
		t.Errorf("Remaining after sold-out attempt = %d, want 0", got)
	}
	if len(regs.regs) != capacity {
		t.Errorf("stored %d registrations, want %d", len(regs.regs), capacity)
	}
}

// TestExecuteRegisterAttendee_DuplicateEmailAllowed tests that the same
// person may register twice while seats remain.
func TestExecuteRegisterAttendee_DuplicateEmailAllowed(t *testing.T) {
	courses := newMockCourseStore()
	courses.sessions["c1"] = course.Session{ID: "c1", Capacity: 3, Remaining: 3}
	regs := newMockRegistrationStore(courses)
	deps := RegisterAttendeeDeps{RegistrationStore: regs}

	in := RegisterAttendeeInput{CourseID: "c1", Name: "Mere", Email: "mere@example.com", Phone: "021"}
	if _, err := ExecuteRegisterAttendee(context.Background(), in, deps); err != nil {
		t.Fatalf("first registration error = %v", err)
	}
	if _, err := ExecuteRegisterAttendee(context.Background(), in, deps); err != nil {
		t.Fatalf("duplicate registration error = %v, want nil", err)
	}
	if got := courses.sessions["c1"].Remaining; got != 1 {
		t.Errorf("Remaining = %d, want 1", got)
	}
}

// TestExecuteRegisterAttendee_Errors tests not-found and validation gates.
func TestExecuteRegisterAttendee_Errors(t *testing.T) {
	courses := newMockCourseStore()
	courses.sessions["c1"] = course.Session{ID: "c1", Capacity: 3, Remaining: 3}
	regs := newMockRegistrationStore(courses)
	deps := RegisterAttendeeDeps{RegistrationStore: regs}

	_, err := ExecuteRegisterAttendee(context.Background(), RegisterAttendeeInput{
		CourseID: "missing", Name: "Mere", Email: "mere@example.com", Phone: "021",
	}, deps)
	if err != course.ErrNotFound {
		t.Errorf("unknown session error = %v, want ErrNotFound", err)
	}

	_, err = ExecuteRegisterAttendee(context.Background(), RegisterAttendeeInput{
		CourseID: "c1", Name: "", Email: "mere@example.com", Phone: "021",
	}, deps)
	if err != registration.ErrEmptyName {
		t.Errorf("empty name error = %v, want ErrEmptyName", err)
	}
	if courses.sessions["c1"].Remaining != 3 {
		t.Error("failed registration must not consume a seat")
	}
}
