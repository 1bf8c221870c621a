package dispatch

import "time"

// ViewMode selects the calendar window granularity.
type ViewMode string

const (
	// ViewModeDay renders a single date.
	ViewModeDay ViewMode = "day"
	// ViewModeWeek renders the Monday-start week containing the cursor.
	ViewModeWeek ViewMode = "week"
	// ViewModeMonth renders the month grid padded to whole weeks.
	ViewModeMonth ViewMode = "month"
)

// Valid reports whether the mode is one of the three defined views.
func (m ViewMode) Valid() bool {
	return m == ViewModeDay || m == ViewModeWeek || m == ViewModeMonth
}

// ParseViewMode maps a wire name to a view mode.
func ParseViewMode(name string) (ViewMode, bool) {
	switch ViewMode(name) {
	case ViewModeDay:
		return ViewModeDay, true
	case ViewModeWeek:
		return ViewModeWeek, true
	case ViewModeMonth:
		return ViewModeMonth, true
	default:
		return "", false
	}
}

// Window computes the ordered dates rendered for a cursor under a view mode.
//
// Day yields exactly the cursor's date. Week yields the 7 consecutive dates of
// the Monday-start week containing the cursor. Month yields the full calendar
// month padded backwards to the Monday of the week containing the 1st and
// forwards to the Sunday of the week containing the last day, so the result is
// always a multiple of 7 cells.
func Window(cursor time.Time, mode ViewMode) []time.Time {
	day := DateOf(cursor)
	switch mode {
	case ViewModeWeek:
		return consecutiveDays(startOfWeek(day), 7)
	case ViewModeMonth:
		first := startOfMonth(day)
		gridStart := startOfWeek(first)
		lastDay := first.AddDate(0, 1, -1)
		gridEnd := startOfWeek(lastDay).AddDate(0, 0, 7)
		count := int(gridEnd.Sub(gridStart).Hours() / 24)
		return consecutiveDays(gridStart, count)
	default:
		return []time.Time{day}
	}
}

// Cursor is the calendar projector's state: a focus date plus a view mode.
// Transitions return a new cursor; the zero value is not usable, construct one
// with NewCursor.
type Cursor struct {
	Date time.Time
	Mode ViewMode
}

// NewCursor builds a cursor focused on the given date.
func NewCursor(date time.Time, mode ViewMode) Cursor {
	if !mode.Valid() {
		mode = ViewModeWeek
	}
	return Cursor{Date: DateOf(date), Mode: mode}
}

// Next advances the cursor by one unit of the current view granularity.
func (c Cursor) Next() Cursor {
	return c.step(1)
}

// Previous moves the cursor back by one unit of the current view granularity.
func (c Cursor) Previous() Cursor {
	return c.step(-1)
}

// Today resets the cursor date to the provided current time, keeping the mode.
func (c Cursor) Today(now time.Time) Cursor {
	c.Date = DateOf(now)
	return c
}

// WithMode switches the view mode around the unchanged cursor date.
func (c Cursor) WithMode(mode ViewMode) Cursor {
	if mode.Valid() {
		c.Mode = mode
	}
	return c
}

// ExpandDay drills into a specific date, switching to the day view.
func (c Cursor) ExpandDay(date time.Time) Cursor {
	c.Date = DateOf(date)
	c.Mode = ViewModeDay
	return c
}

// Window derives the dates currently rendered for the cursor.
func (c Cursor) Window() []time.Time {
	return Window(c.Date, c.Mode)
}

func (c Cursor) step(direction int) Cursor {
	switch c.Mode {
	case ViewModeWeek:
		c.Date = c.Date.AddDate(0, 0, 7*direction)
	case ViewModeMonth:
		// Step from the month's first day and clamp the day-of-month:
		// AddDate on day 29-31 would normalize into the wrong month
		// (Jan 31 + 1 month = Mar 3).
		first := startOfMonth(c.Date).AddDate(0, direction, 0)
		day := c.Date.Day()
		if last := first.AddDate(0, 1, -1).Day(); day > last {
			day = last
		}
		c.Date = first.AddDate(0, 0, day-1)
	default:
		c.Date = c.Date.AddDate(0, 0, direction)
	}
	return c
}

func startOfWeek(day time.Time) time.Time {
	// Monday starts the week. In Go, Monday == 1 and Sunday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func consecutiveDays(start time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
