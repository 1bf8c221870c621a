package dispatch

import (
	"testing"
	"time"
)

func TestWindow_DayContainsOnlyCursorDate(t *testing.T) {
	t.Parallel()

	cursor := date(t, "2026-03-15")
	window := Window(cursor, ViewModeDay)

	if len(window) != 1 || !window[0].Equal(cursor) {
		t.Fatalf("day window = %v, want exactly [%v]", window, cursor)
	}
}

func TestWindow_WeekStartsMondayAndHasSevenDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cursor string
		monday string
	}{
		{cursor: "2026-03-15", monday: "2026-03-09"}, // a Sunday
		{cursor: "2026-03-09", monday: "2026-03-09"}, // a Monday
		{cursor: "2026-03-11", monday: "2026-03-09"}, // mid-week
		{cursor: "2026-01-01", monday: "2025-12-29"}, // year boundary
	}

	for _, tc := range tests {
		t.Run(tc.cursor, func(t *testing.T) {
			t.Parallel()

			window := Window(date(t, tc.cursor), ViewModeWeek)
			if len(window) != 7 {
				t.Fatalf("week window has %d days, want 7", len(window))
			}
			if !window[0].Equal(date(t, tc.monday)) {
				t.Errorf("week starts %v, want %v", window[0], date(t, tc.monday))
			}
			if window[0].Weekday() != time.Monday {
				t.Errorf("week starts on %v, want Monday", window[0].Weekday())
			}
			for i := 1; i < len(window); i++ {
				if !window[i].Equal(window[i-1].AddDate(0, 0, 1)) {
					t.Fatalf("week dates are not consecutive at index %d", i)
				}
			}
		})
	}
}

func TestWindow_MonthIsPaddedToWholeWeeks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cursor    string
		gridStart string
		gridEnd   string // last cell, a Sunday
	}{
		// March 2026: the 1st is a Sunday, the 31st a Tuesday.
		{cursor: "2026-03-15", gridStart: "2026-02-23", gridEnd: "2026-04-05"},
		// June 2026: the 1st is a Monday.
		{cursor: "2026-06-10", gridStart: "2026-06-01", gridEnd: "2026-07-05"},
		// February 2027 spans exactly four Monday-start weeks.
		{cursor: "2027-02-14", gridStart: "2027-02-01", gridEnd: "2027-02-28"},
	}

	for _, tc := range tests {
		t.Run(tc.cursor, func(t *testing.T) {
			t.Parallel()

			window := Window(date(t, tc.cursor), ViewModeMonth)
			if len(window)%7 != 0 {
				t.Fatalf("month window has %d cells, want a multiple of 7", len(window))
			}
			if !window[0].Equal(date(t, tc.gridStart)) {
				t.Errorf("grid starts %v, want %v", window[0], date(t, tc.gridStart))
			}
			last := window[len(window)-1]
			if !last.Equal(date(t, tc.gridEnd)) {
				t.Errorf("grid ends %v, want %v", last, date(t, tc.gridEnd))
			}
			if window[0].Weekday() != time.Monday {
				t.Errorf("grid starts on %v, want Monday", window[0].Weekday())
			}
			if last.Weekday() != time.Sunday {
				t.Errorf("grid ends on %v, want Sunday", last.Weekday())
			}
		})
	}
}

func TestCursor_StepGranularityFollowsMode(t *testing.T) {
	t.Parallel()

	start := date(t, "2026-03-15")

	tests := []struct {
		mode ViewMode
		next string
		prev string
	}{
		{mode: ViewModeDay, next: "2026-03-16", prev: "2026-03-14"},
		{mode: ViewModeWeek, next: "2026-03-22", prev: "2026-03-08"},
		{mode: ViewModeMonth, next: "2026-04-15", prev: "2026-02-15"},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			t.Parallel()

			cursor := NewCursor(start, tc.mode)
			if got := cursor.Next().Date; !got.Equal(date(t, tc.next)) {
				t.Errorf("Next = %v, want %v", got, date(t, tc.next))
			}
			if got := cursor.Previous().Date; !got.Equal(date(t, tc.prev)) {
				t.Errorf("Previous = %v, want %v", got, date(t, tc.prev))
			}
		})
	}
}

func TestCursor_MonthStepFromMonthEndStaysAdjacent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		start string
		next  string
		prev  string
	}{
		{start: "2026-01-31", next: "2026-02-28", prev: "2025-12-31"},
		{start: "2026-03-31", next: "2026-04-30", prev: "2026-02-28"},
		{start: "2026-05-31", next: "2026-06-30", prev: "2026-04-30"},
		{start: "2024-01-31", next: "2024-02-29", prev: "2023-12-31"},
	}

	for _, tc := range tests {
		t.Run(tc.start, func(t *testing.T) {
			t.Parallel()

			cursor := NewCursor(date(t, tc.start), ViewModeMonth)
			if got := cursor.Next().Date; !got.Equal(date(t, tc.next)) {
				t.Errorf("Next = %v, want %v", got, date(t, tc.next))
			}
			if got := cursor.Previous().Date; !got.Equal(date(t, tc.prev)) {
				t.Errorf("Previous = %v, want %v", got, date(t, tc.prev))
			}
		})
	}
}

func TestCursor_Transitions(t *testing.T) {
	t.Parallel()

	cursor := NewCursor(date(t, "2026-03-15"), ViewModeMonth)

	today := cursor.Today(time.Date(2026, 8, 30, 13, 45, 0, 0, time.UTC))
	if !today.Date.Equal(date(t, "2026-08-30")) || today.Mode != ViewModeMonth {
		t.Errorf("Today = %+v, want date reset with mode preserved", today)
	}

	switched := cursor.WithMode(ViewModeWeek)
	if switched.Mode != ViewModeWeek || !switched.Date.Equal(cursor.Date) {
		t.Errorf("WithMode = %+v, want mode changed around unchanged date", switched)
	}

	if invalid := cursor.WithMode(ViewMode("quarter")); invalid.Mode != ViewModeMonth {
		t.Errorf("WithMode with invalid mode = %v, want mode unchanged", invalid.Mode)
	}

	expanded := cursor.ExpandDay(date(t, "2026-03-04"))
	if expanded.Mode != ViewModeDay || !expanded.Date.Equal(date(t, "2026-03-04")) {
		t.Errorf("ExpandDay = %+v, want day view on the drilled date", expanded)
	}
	if window := expanded.Window(); len(window) != 1 {
		t.Errorf("expanded window has %d cells, want 1", len(window))
	}
}

func TestParseViewMode(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"day", "week", "month"} {
		mode, ok := ParseViewMode(name)
		if !ok || string(mode) != name {
			t.Errorf("ParseViewMode(%q) = %v, %v", name, mode, ok)
		}
	}
	if _, ok := ParseViewMode("year"); ok {
		t.Error("ParseViewMode accepted an unknown mode")
	}
}
