package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/dispatch-scheduler/internal/application"
	"github.com/example/dispatch-scheduler/internal/dispatch"
)

type calendarView interface {
	Cursor() dispatch.Cursor
	Current(ctx context.Context) ([]application.DayCell, error)
	SetViewMode(ctx context.Context, mode dispatch.ViewMode) ([]application.DayCell, error)
	GoNext(ctx context.Context) ([]application.DayCell, error)
	GoPrevious(ctx context.Context) ([]application.DayCell, error)
	GoToday(ctx context.Context) ([]application.DayCell, error)
	ExpandDay(ctx context.Context, date time.Time) ([]application.DayCell, error)
}

type calendarProjector interface {
	Window(ctx context.Context, cursor dispatch.Cursor) ([]application.DayCell, error)
}

type CalendarHandler struct {
	view      calendarView
	projector calendarProjector
	responder responder
	logger    *slog.Logger
}

func NewCalendarHandler(view calendarView, projector calendarProjector, logger *slog.Logger) *CalendarHandler {
	base := defaultLogger(logger)
	return &CalendarHandler{view: view, projector: projector, responder: newResponder(base), logger: base}
}

func (h *CalendarHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "CalendarHandler", operation, attrs...)
}

// Current renders the window at the view's current cursor. When cursor/view
// query parameters are present the window is derived statelessly from them
// instead, leaving the shared cursor untouched.
func (h *CalendarHandler) Current(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.view == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	if query.Get("cursor") != "" || query.Get("view") != "" {
		h.stateless(w, r, query.Get("cursor"), query.Get("view"))
		return
	}

	h.render(w, r, "Current", func(ctx context.Context) ([]application.DayCell, error) {
		return h.view.Current(ctx)
	})
}

func (h *CalendarHandler) stateless(w http.ResponseWriter, r *http.Request, cursorValue, viewValue string) {
	// An absent parameter falls back to the shared view's position, so
	// read-only clients may pass either one alone.
	shared := h.view.Cursor()

	date := shared.Date
	if trimmed := strings.TrimSpace(cursorValue); trimmed != "" {
		parsed, err := dispatch.ParseDateKey(trimmed)
		if err != nil {
			h.log(r.Context(), "Current", "error_kind", "bad_request").ErrorContext(r.Context(), "unparseable cursor", "cursor", cursorValue, "error", err)
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDate)
			return
		}
		date = parsed
	}

	mode := shared.Mode
	if trimmed := strings.TrimSpace(viewValue); trimmed != "" {
		parsed, ok := dispatch.ParseViewMode(trimmed)
		if !ok {
			h.log(r.Context(), "Current", "error_kind", "bad_request").ErrorContext(r.Context(), "unknown view mode", "view", viewValue)
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidViewMode)
			return
		}
		mode = parsed
	}

	cursor := dispatch.NewCursor(date, mode)
	logger := h.log(r.Context(), "Current", "cursor", dispatch.DateKey(cursor.Date), "mode", string(mode))
	cells, err := h.projector.Window(r.Context(), cursor)
	if err != nil {
		logger.ErrorContext(r.Context(), "calendar render failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("days", len(cells)).InfoContext(r.Context(), "calendar rendered")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, calendarResponse{
		Mode:   string(mode),
		Cursor: dispatch.DateKey(cursor.Date),
		Days:   toDayCellDTOs(cells),
	})
}

// SetView switches the view granularity. Body: {"mode":"day|week|month"}.
func (h *CalendarHandler) SetView(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.view == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req viewModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "SetView", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode view request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	mode, ok := dispatch.ParseViewMode(strings.TrimSpace(req.Mode))
	if !ok {
		h.log(r.Context(), "SetView", "error_kind", "bad_request").ErrorContext(r.Context(), "unknown view mode", "mode", req.Mode)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidViewMode)
		return
	}

	h.render(w, r, "SetView", func(ctx context.Context) ([]application.DayCell, error) {
		return h.view.SetViewMode(ctx, mode)
	})
}

// Next advances the view one step at its granularity.
func (h *CalendarHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Next", func(ctx context.Context) ([]application.DayCell, error) {
		return h.view.GoNext(ctx)
	})
}

// Previous steps the view back one step at its granularity.
func (h *CalendarHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Previous", func(ctx context.Context) ([]application.DayCell, error) {
		return h.view.GoPrevious(ctx)
	})
}

// Today jumps the view to the current date.
func (h *CalendarHandler) Today(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Today", func(ctx context.Context) ([]application.DayCell, error) {
		return h.view.GoToday(ctx)
	})
}

// Expand zooms into one date in day mode. Body: {"date":"YYYY-MM-DD"}.
func (h *CalendarHandler) Expand(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.view == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req expandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Expand", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode expand request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	date, err := dispatch.ParseDateKey(strings.TrimSpace(req.Date))
	if err != nil {
		h.log(r.Context(), "Expand", "error_kind", "bad_request").ErrorContext(r.Context(), "unparseable date", "date", req.Date, "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDate)
		return
	}

	h.render(w, r, "Expand", func(ctx context.Context) ([]application.DayCell, error) {
		return h.view.ExpandDay(ctx, date)
	})
}

// Availability renders the single-day cell for ?date=YYYY-MM-DD without moving
// the shared view cursor.
func (h *CalendarHandler) Availability(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.projector == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, err := dispatch.ParseDateKey(strings.TrimSpace(r.URL.Query().Get("date")))
	if err != nil {
		h.log(r.Context(), "Availability", "error_kind", "bad_request").ErrorContext(r.Context(), "unparseable date", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDate)
		return
	}

	logger := h.log(r.Context(), "Availability", "date", dispatch.DateKey(date))
	cells, err := h.projector.Window(r.Context(), dispatch.NewCursor(date, dispatch.ViewModeDay))
	if err != nil {
		logger.ErrorContext(r.Context(), "availability read failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	if len(cells) != 1 {
		logger.ErrorContext(r.Context(), "unexpected window size", "cells", len(cells))
		h.responder.writeError(r.Context(), w, http.StatusInternalServerError, nil)
		return
	}

	logger.InfoContext(r.Context(), "availability rendered")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toDayCellDTO(cells[0]))
}

func (h *CalendarHandler) render(w http.ResponseWriter, r *http.Request, operation string, load func(context.Context) ([]application.DayCell, error)) {
	if h == nil || h.view == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), operation)
	cells, err := load(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "calendar render failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	cursor := h.view.Cursor()
	logger.With("mode", string(cursor.Mode), "days", len(cells)).InfoContext(r.Context(), "calendar rendered")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, calendarResponse{
		Mode:   string(cursor.Mode),
		Cursor: dispatch.DateKey(cursor.Date),
		Days:   toDayCellDTOs(cells),
	})
}

type viewModeRequest struct {
	Mode string `json:"mode"`
}

type expandRequest struct {
	Date string `json:"date"`
}

type calendarResponse struct {
	Mode   string       `json:"mode"`
	Cursor string       `json:"cursor"`
	Days   []dayCellDTO `json:"days"`
}

type dayCellDTO struct {
	Date        string          `json:"date"`
	Assignments []assignmentDTO `json:"assignments,omitempty"`
	Available   availabilityDTO `json:"available"`
}

type availabilityDTO struct {
	Employees   []employeeDTO   `json:"employees,omitempty"`
	Equipment   []equipmentDTO  `json:"equipment,omitempty"`
	Attachments []attachmentDTO `json:"attachments,omitempty"`
	Tools       []toolDTO       `json:"tools,omitempty"`
}

func toDayCellDTO(cell application.DayCell) dayCellDTO {
	dto := dayCellDTO{
		Date: dispatch.DateKey(cell.Date),
		Available: availabilityDTO{
			Employees:   toEmployeeDTOs(cell.Available.Employees),
			Equipment:   toEquipmentDTOs(cell.Available.Equipment),
			Attachments: toAttachmentDTOs(cell.Available.Attachments),
			Tools:       toToolDTOs(cell.Available.Tools),
		},
	}
	for _, assignment := range cell.Assignments {
		dto.Assignments = append(dto.Assignments, toAssignmentDTO(assignment))
	}
	return dto
}

func toDayCellDTOs(cells []application.DayCell) []dayCellDTO {
	if len(cells) == 0 {
		return nil
	}
	out := make([]dayCellDTO, 0, len(cells))
	for _, cell := range cells {
		out = append(out, toDayCellDTO(cell))
	}
	return out
}
