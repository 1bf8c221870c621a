package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

// CalendarService projects the assignment store onto calendar windows. Each
// window cell bundles the date's records with the resources still available.
type CalendarService struct {
	store   AssignmentStore
	catalog *CatalogService
	logger  *slog.Logger
}

// NewCalendarService wires the projector with its store and catalog reader.
func NewCalendarService(store AssignmentStore, catalog *CatalogService) *CalendarService {
	return NewCalendarServiceWithLogger(store, catalog, nil)
}

// NewCalendarServiceWithLogger is NewCalendarService with an explicit logger.
func NewCalendarServiceWithLogger(store AssignmentStore, catalog *CatalogService, logger *slog.Logger) *CalendarService {
	return &CalendarService{
		store:   store,
		catalog: catalog,
		logger:  defaultLogger(logger),
	}
}

// Window materializes the calendar window anchored at cursor: one DayCell per
// date, with availability derived from the eligible catalog. The catalog is
// read once per call so every cell sees the same snapshot.
func (s *CalendarService) Window(ctx context.Context, cursor dispatch.Cursor) ([]DayCell, error) {
	logger := serviceLogger(ctx, s.logger, "calendar", "window",
		"mode", string(cursor.Mode), "cursor", dispatch.DateKey(cursor.Date))

	catalog, err := s.catalog.EligibleCatalog(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "catalog read failed", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}

	days := cursor.Window()
	cells := make([]DayCell, 0, len(days))
	for _, day := range days {
		assignments, err := s.store.QueryAssignmentsByDate(ctx, day)
		if err != nil {
			mapped := mapStoreError(err)
			logger.ErrorContext(ctx, "day query failed",
				"date", dispatch.DateKey(day), "error", err, "error_kind", ErrorKind(mapped))
			return nil, mapped
		}
		cells = append(cells, DayCell{
			Date:        day,
			Assignments: assignments,
			Available:   dispatch.AvailableResources(assignments, catalog),
		})
	}

	logger.DebugContext(ctx, "window materialized", "days", len(cells))
	return cells, nil
}

// CalendarView holds a navigable cursor over the calendar service. The cursor
// is guarded so concurrent handlers see a consistent position.
type CalendarView struct {
	service *CalendarService
	now     func() time.Time

	mu     sync.Mutex
	cursor dispatch.Cursor
}

// NewCalendarView starts a view in month mode at the current date.
func NewCalendarView(service *CalendarService, now func() time.Time) *CalendarView {
	if now == nil {
		now = time.Now
	}
	return &CalendarView{
		service: service,
		now:     now,
		cursor:  dispatch.NewCursor(now(), dispatch.ViewModeMonth),
	}
}

// Cursor returns the current position and mode.
func (v *CalendarView) Cursor() dispatch.Cursor {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// Current materializes the window at the current cursor without moving it.
func (v *CalendarView) Current(ctx context.Context) ([]DayCell, error) {
	return v.service.Window(ctx, v.Cursor())
}

// SetViewMode switches the view granularity, keeping the cursor date.
func (v *CalendarView) SetViewMode(ctx context.Context, mode dispatch.ViewMode) ([]DayCell, error) {
	if !mode.Valid() {
		return nil, ErrInvalidInput
	}
	return v.move(ctx, func(c dispatch.Cursor) dispatch.Cursor { return c.WithMode(mode) })
}

// GoNext advances one step at the current granularity.
func (v *CalendarView) GoNext(ctx context.Context) ([]DayCell, error) {
	return v.move(ctx, dispatch.Cursor.Next)
}

// GoPrevious steps back one step at the current granularity.
func (v *CalendarView) GoPrevious(ctx context.Context) ([]DayCell, error) {
	return v.move(ctx, dispatch.Cursor.Previous)
}

// GoToday jumps the cursor to the current date, keeping the mode.
func (v *CalendarView) GoToday(ctx context.Context) ([]DayCell, error) {
	now := v.now()
	return v.move(ctx, func(c dispatch.Cursor) dispatch.Cursor { return c.Today(now) })
}

// ExpandDay zooms into a single date in day mode.
func (v *CalendarView) ExpandDay(ctx context.Context, date time.Time) ([]DayCell, error) {
	if date.IsZero() {
		return nil, ErrInvalidInput
	}
	return v.move(ctx, func(c dispatch.Cursor) dispatch.Cursor { return c.ExpandDay(date) })
}

func (v *CalendarView) move(ctx context.Context, transition func(dispatch.Cursor) dispatch.Cursor) ([]DayCell, error) {
	v.mu.Lock()
	v.cursor = transition(v.cursor)
	cursor := v.cursor
	v.mu.Unlock()

	return v.service.Window(ctx, cursor)
}
