package projections

import (
	"context"
	"sort"

	"coursedesk/internal/domain/calendar"
	"coursedesk/internal/domain/course"
)

// MonthCalendarCourseStore defines the store interface needed by this projection.
type MonthCalendarCourseStore interface {
	ListByDateRange(ctx context.Context, from, to string) ([]course.Session, error)
}

// GetMonthCalendarDeps holds dependencies for the projection.
type GetMonthCalendarDeps struct {
	CourseStore MonthCalendarCourseStore
}

// DaySession is a course session decorated for calendar rendering.
type DaySession struct {
	course.Session
	Slot string // morning or afternoon, derived from the start hour
}

// MonthCalendarResult is the day-indexed, time-sorted view of one month.
type MonthCalendarResult struct {
	Month         calendar.Month
	Weeks         [][]int // Monday-first grid; 0 marks an out-of-month slot
	SessionsByDay map[int][]DaySession
}

// QueryMonthCalendar builds the calendar page data for one month.
// Sessions are fetched with a closed date-range filter bounded by the
// month's actual first and last day, grouped by day-of-month, and sorted
// ascending by start time within each day.
// PRE: m is a valid month
// POST: Every returned session falls within m; read-only against storage
func QueryMonthCalendar(ctx context.Context, m calendar.Month, deps GetMonthCalendarDeps) (MonthCalendarResult, error) {
	sessions, err := deps.CourseStore.ListByDateRange(ctx, m.FirstDay(), m.LastDay())
	if err != nil {
		return MonthCalendarResult{}, err
	}

	byDay := make(map[int][]DaySession)
	for _, s := range sessions {
		day := s.Day()
		if day == 0 {
			continue
		}
		byDay[day] = append(byDay[day], DaySession{Session: s, Slot: s.Slot()})
	}
	for day := range byDay {
		list := byDay[day]
		// HH:MM strings are zero-padded, so string order is time order.
		sort.Slice(list, func(i, j int) bool { return list[i].StartTime < list[j].StartTime })
	}

	return MonthCalendarResult{
		Month:         m,
		Weeks:         m.Grid(),
		SessionsByDay: byDay,
	}, nil
}
