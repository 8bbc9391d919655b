package projections

import (
	"context"
	"testing"
	"time"

	"coursedesk/internal/domain/calendar"
	"coursedesk/internal/domain/course"
)

// mockMonthCourseStore implements MonthCalendarCourseStore for testing.
type mockMonthCourseStore struct {
	sessions []course.Session
}

// ListByDateRange implements the closed-range filter over the fixture set.
// POST: returns sessions with from <= date <= to
func (m *mockMonthCourseStore) ListByDateRange(_ context.Context, from, to string) ([]course.Session, error) {
	var out []course.Session
	for _, s := range m.sessions {
		if s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

// TestQueryMonthCalendar_GroupsAndSorts tests day grouping, time ordering
// and morning/afternoon tagging.
func TestQueryMonthCalendar_GroupsAndSorts(t *testing.T) {
	store := &mockMonthCourseStore{sessions: []course.Session{
		{ID: "pm", Date: "2026-03-07", StartTime: "14:00", EndTime: "16:00", Name: "Glazing", Capacity: 5, Remaining: 5},
		{ID: "am", Date: "2026-03-07", StartTime: "09:30", EndTime: "11:00", Name: "Wheel", Capacity: 5, Remaining: 5},
		{ID: "other", Date: "2026-03-21", StartTime: "12:00", EndTime: "13:00", Name: "Kiln", Capacity: 5, Remaining: 5},
	}}

	m := calendar.Month{Year: 2026, Month: time.March}
	result, err := QueryMonthCalendar(context.Background(), m, GetMonthCalendarDeps{CourseStore: store})
	if err != nil {
		t.Fatalf("QueryMonthCalendar() error = %v", err)
	}

	day7 := result.SessionsByDay[7]
	if len(day7) != 2 {
		t.Fatalf("day 7 has %d sessions, want 2", len(day7))
	}
	if day7[0].ID != "am" || day7[1].ID != "pm" {
		t.Errorf("day 7 order = %s, %s; want am first", day7[0].ID, day7[1].ID)
	}
	if day7[0].Slot != course.SlotMorning || day7[1].Slot != course.SlotAfternoon {
		t.Errorf("slots = %s, %s", day7[0].Slot, day7[1].Slot)
	}

	day21 := result.SessionsByDay[21]
	if len(day21) != 1 || day21[0].Slot != course.SlotAfternoon {
		t.Errorf("noon start must be afternoon, got %+v", day21)
	}

	if len(result.Weeks) == 0 {
		t.Fatal("grid is empty")
	}
	for _, week := range result.Weeks {
		if len(week) != calendar.DaysPerWeek {
			t.Errorf("week has %d slots, want 7", len(week))
		}
	}
}

// TestQueryMonthCalendar_MonthIsolation tests that adjacent months never
// leak in, including across a year boundary.
func TestQueryMonthCalendar_MonthIsolation(t *testing.T) {
	store := &mockMonthCourseStore{sessions: []course.Session{
		{ID: "dec", Date: "2025-12-31", StartTime: "10:00", EndTime: "11:00", Name: "Year End", Capacity: 5, Remaining: 5},
		{ID: "jan", Date: "2026-01-15", StartTime: "10:00", EndTime: "11:00", Name: "Mid Jan", Capacity: 5, Remaining: 5},
		{ID: "feb", Date: "2026-02-01", StartTime: "10:00", EndTime: "11:00", Name: "Feb", Capacity: 5, Remaining: 5},
	}}

	jan := calendar.Month{Year: 2026, Month: time.January}
	result, err := QueryMonthCalendar(context.Background(), jan, GetMonthCalendarDeps{CourseStore: store})
	if err != nil {
		t.Fatalf("QueryMonthCalendar() error = %v", err)
	}
	total := 0
	for day, list := range result.SessionsByDay {
		total += len(list)
		for _, s := range list {
			if s.ID != "jan" {
				t.Errorf("session %s leaked into January on day %d", s.ID, day)
			}
		}
	}
	if total != 1 {
		t.Errorf("January holds %d sessions, want 1", total)
	}

	dec := calendar.Month{Year: 2025, Month: time.December}
	result, err = QueryMonthCalendar(context.Background(), dec, GetMonthCalendarDeps{CourseStore: store})
	if err != nil {
		t.Fatalf("QueryMonthCalendar() error = %v", err)
	}
	if len(result.SessionsByDay[31]) != 1 || result.SessionsByDay[31][0].ID != "dec" {
		t.Error("December 31 session missing from its own month")
	}
}
