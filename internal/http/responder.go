package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/dispatch-scheduler/internal/application"
	"github.com/example/dispatch-scheduler/internal/logging"
)

var (
	errBadRequestBody     = errors.New("request body is not valid JSON")
	errInvalidDate        = errors.New("date must use the YYYY-MM-DD format")
	errInvalidViewMode    = errors.New("view mode must be one of day, week, month")
	errInvalidKindSegment = errors.New("resource kind must be one of employee, equipment, attachment, tool")
	errMissingAssignment  = errors.New("assignment id is required")
	errMissingResourceID  = errors.New("resource id is required")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := statusMessage(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	switch {
	case errors.Is(err, application.ErrNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "the requested record was not found"})
	case errors.Is(err, application.ErrInvalidInput), errors.Is(err, application.ErrInvalidKind):
		r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{Message: trimSentinelPrefix(err)})
	case errors.Is(err, application.ErrStoreUnavailable):
		r.writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{
			ErrorCode: "STORE_UNAVAILABLE",
			Message:   "the assignment store is temporarily unavailable",
		})
	default:
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "an internal error occurred"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "the request is malformed"
	case http.StatusNotFound:
		return "the requested record was not found"
	case http.StatusUnprocessableEntity:
		return "the request content is invalid"
	case http.StatusServiceUnavailable:
		return "the service is temporarily unavailable"
	default:
		return "an internal error occurred"
	}
}

// trimSentinelPrefix strips the "application: ..." sentinel wrapping so wire
// messages read as plain validation feedback.
func trimSentinelPrefix(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 && idx+2 < len(msg) {
		return msg[idx+2:]
	}
	return msg
}

type errorResponse struct {
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message"`
}
