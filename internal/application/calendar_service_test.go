package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

func newCalendarFixture(t *testing.T) (*DispatchService, *CalendarService) {
	t.Helper()
	store := seededStore()
	dispatchSvc := NewDispatchService(store, sequentialIDs())
	calendarSvc := NewCalendarService(store, NewCatalogService(store, testNoEquipmentID))
	return dispatchSvc, calendarSvc
}

func TestCalendarService_WindowCarriesAssignmentsAndAvailability(t *testing.T) {
	t.Parallel()

	dispatchSvc, calendarSvc := newCalendarFixture(t)
	date := day(t, "2026-03-04")

	if _, err := dispatchSvc.AssignToDay(context.Background(), AssignInput{
		Date:      date,
		ProjectID: "p-1",
		Selection: SelectionIDs{EmployeeIDs: []string{"e-1"}, EquipmentIDs: []string{"eq-1"}},
	}); err != nil {
		t.Fatalf("AssignToDay: %v", err)
	}

	cells, err := calendarSvc.Window(context.Background(), dispatch.NewCursor(date, dispatch.ViewModeDay))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("day window has %d cells, want 1", len(cells))
	}

	cell := cells[0]
	if !cell.Date.Equal(date) {
		t.Fatalf("cell date = %v, want %v", cell.Date, date)
	}
	if len(cell.Assignments) != 1 || cell.Assignments[0].ProjectID != "p-1" {
		t.Fatalf("assignments = %+v", cell.Assignments)
	}

	ids := make([]string, 0, len(cell.Available.Employees))
	for _, e := range cell.Available.Employees {
		ids = append(ids, e.ID)
	}
	equalIDs(t, ids, []string{"e-2"}, "available employees")
	if len(cell.Available.Equipment) != 1 || cell.Available.Equipment[0].ID != "eq-2" {
		t.Fatalf("available equipment = %+v, want only eq-2", cell.Available.Equipment)
	}
}

func TestCalendarService_EmptyDayOffersWholeEligibleCatalog(t *testing.T) {
	t.Parallel()

	_, calendarSvc := newCalendarFixture(t)
	cells, err := calendarSvc.Window(context.Background(),
		dispatch.NewCursor(day(t, "2026-03-04"), dispatch.ViewModeDay))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	available := cells[0].Available
	if len(available.Employees) != 2 || len(available.Equipment) != 2 ||
		len(available.Attachments) != 1 || len(available.Tools) != 1 {
		t.Fatalf("availability sizes = %d/%d/%d/%d", len(available.Employees),
			len(available.Equipment), len(available.Attachments), len(available.Tools))
	}
}

func TestCalendarService_WeekWindowHasSevenCells(t *testing.T) {
	t.Parallel()

	_, calendarSvc := newCalendarFixture(t)
	cells, err := calendarSvc.Window(context.Background(),
		dispatch.NewCursor(day(t, "2026-03-04"), dispatch.ViewModeWeek))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(cells) != 7 {
		t.Fatalf("week window has %d cells, want 7", len(cells))
	}
	if got := dispatch.DateKey(cells[0].Date); got != "2026-03-02" {
		t.Fatalf("week starts %s, want 2026-03-02", got)
	}
}

func TestCalendarService_StoreFailurePropagates(t *testing.T) {
	t.Parallel()

	store := seededStore()
	calendarSvc := NewCalendarService(&failingStore{err: errStoreDown},
		NewCatalogService(store, testNoEquipmentID))
	_, err := calendarSvc.Window(context.Background(),
		dispatch.NewCursor(day(t, "2026-03-04"), dispatch.ViewModeDay))
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestCalendarView_Navigation(t *testing.T) {
	t.Parallel()

	_, calendarSvc := newCalendarFixture(t)
	now := func() time.Time { return day(t, "2026-03-15") }
	view := NewCalendarView(calendarSvc, now)

	if cursor := view.Cursor(); cursor.Mode != dispatch.ViewModeMonth {
		t.Fatalf("initial mode = %q, want month", cursor.Mode)
	}

	cells, err := view.SetViewMode(context.Background(), dispatch.ViewModeWeek)
	if err != nil {
		t.Fatalf("SetViewMode: %v", err)
	}
	if len(cells) != 7 {
		t.Fatalf("week window has %d cells, want 7", len(cells))
	}

	if _, err := view.GoNext(context.Background()); err != nil {
		t.Fatalf("GoNext: %v", err)
	}
	if got := dispatch.DateKey(view.Cursor().Date); got != "2026-03-22" {
		t.Fatalf("cursor after next week = %s, want 2026-03-22", got)
	}

	if _, err := view.GoPrevious(context.Background()); err != nil {
		t.Fatalf("GoPrevious: %v", err)
	}
	if got := dispatch.DateKey(view.Cursor().Date); got != "2026-03-15" {
		t.Fatalf("cursor after previous week = %s, want 2026-03-15", got)
	}

	if _, err := view.GoToday(context.Background()); err != nil {
		t.Fatalf("GoToday: %v", err)
	}
	if got := dispatch.DateKey(view.Cursor().Date); got != "2026-03-15" {
		t.Fatalf("cursor after today = %s, want 2026-03-15", got)
	}

	cells, err = view.ExpandDay(context.Background(), day(t, "2026-03-18"))
	if err != nil {
		t.Fatalf("ExpandDay: %v", err)
	}
	if len(cells) != 1 || dispatch.DateKey(cells[0].Date) != "2026-03-18" {
		t.Fatalf("expanded day window = %+v", cells)
	}
	if view.Cursor().Mode != dispatch.ViewModeDay {
		t.Fatalf("mode after expand = %q, want day", view.Cursor().Mode)
	}
}

func TestCalendarView_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	_, calendarSvc := newCalendarFixture(t)
	view := NewCalendarView(calendarSvc, func() time.Time { return day(t, "2026-03-15") })
	if _, err := view.SetViewMode(context.Background(), dispatch.ViewMode("quarter")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
