package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/dispatch-scheduler/internal/application"
	"github.com/example/dispatch-scheduler/internal/dispatch"
)

type dispatchService interface {
	AssignToDay(ctx context.Context, input application.AssignInput) (application.AssignResult, error)
	RemoveResource(ctx context.Context, assignmentID string, kind dispatch.ResourceKind, resourceID string) (application.RemoveResult, error)
}

type AssignmentHandler struct {
	service   dispatchService
	responder responder
	logger    *slog.Logger
}

func NewAssignmentHandler(service dispatchService, logger *slog.Logger) *AssignmentHandler {
	base := defaultLogger(logger)
	return &AssignmentHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AssignmentHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AssignmentHandler", operation, attrs...)
}

// Assign commits a selection of resources to a project and day.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Assign", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode assign request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	date, err := dispatch.ParseDateKey(strings.TrimSpace(req.Date))
	if err != nil {
		h.log(r.Context(), "Assign", "error_kind", "bad_request").ErrorContext(r.Context(), "unparseable date", "date", req.Date, "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDate)
		return
	}

	logger := h.log(r.Context(), "Assign", "date", req.Date, "project_id", req.ProjectID)

	result, err := h.service.AssignToDay(r.Context(), application.AssignInput{
		Date:      date,
		ProjectID: strings.TrimSpace(req.ProjectID),
		Selection: application.SelectionIDs{
			EmployeeIDs:   req.EmployeeIDs,
			EquipmentIDs:  req.EquipmentIDs,
			AttachmentIDs: req.AttachmentIDs,
			ToolIDs:       req.ToolIDs,
		},
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "assignment failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("assignment_id", result.Assignment.ID, "no_op", result.NoOp).InfoContext(r.Context(), "assignment processed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toAssignResponse(result))
}

// RemoveResource takes one resource off an assignment record. The router
// supplies the three path segments.
func (h *AssignmentHandler) RemoveResource(w http.ResponseWriter, r *http.Request, assignmentID, kindName, resourceID string) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if strings.TrimSpace(assignmentID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingAssignment)
		return
	}
	if strings.TrimSpace(resourceID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingResourceID)
		return
	}
	kind, ok := dispatch.ParseKind(kindName)
	if !ok {
		h.log(r.Context(), "RemoveResource", "error_kind", "bad_request").ErrorContext(r.Context(), "unknown resource kind", "kind", kindName)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidKindSegment)
		return
	}

	logger := h.log(r.Context(), "RemoveResource",
		"assignment_id", assignmentID, "kind", kind.String(), "resource_id", resourceID)

	result, err := h.service.RemoveResource(r.Context(), assignmentID, kind, resourceID)
	if err != nil {
		logger.ErrorContext(r.Context(), "removal failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("removed", result.Removed, "pruned", result.Pruned).InfoContext(r.Context(), "removal processed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toRemoveResponse(result))
}

type assignRequest struct {
	Date          string   `json:"date"`
	ProjectID     string   `json:"project_id"`
	EmployeeIDs   []string `json:"employee_ids"`
	EquipmentIDs  []string `json:"equipment_ids"`
	AttachmentIDs []string `json:"attachment_ids"`
	ToolIDs       []string `json:"tool_ids"`
}

type assignResponse struct {
	Assignment *assignmentDTO `json:"assignment,omitempty"`
	Dropped    *selectionDTO  `json:"dropped,omitempty"`
	NoOp       bool           `json:"no_op"`
}

type removeResponse struct {
	Assignment *assignmentDTO `json:"assignment,omitempty"`
	Removed    bool           `json:"removed"`
	Pruned     bool           `json:"pruned"`
}

type assignmentDTO struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	ProjectID     string   `json:"project_id"`
	EmployeeIDs   []string `json:"employee_ids,omitempty"`
	EquipmentIDs  []string `json:"equipment_ids,omitempty"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
	ToolIDs       []string `json:"tool_ids,omitempty"`
}

type selectionDTO struct {
	EmployeeIDs   []string `json:"employee_ids,omitempty"`
	EquipmentIDs  []string `json:"equipment_ids,omitempty"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
	ToolIDs       []string `json:"tool_ids,omitempty"`
}

func toAssignmentDTO(a dispatch.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:            a.ID,
		Date:          dispatch.DateKey(a.Date),
		ProjectID:     a.ProjectID,
		EmployeeIDs:   a.EmployeeIDs,
		EquipmentIDs:  a.EquipmentIDs,
		AttachmentIDs: a.AttachmentIDs,
		ToolIDs:       a.ToolIDs,
	}
}

func toAssignResponse(result application.AssignResult) assignResponse {
	resp := assignResponse{NoOp: result.NoOp}
	if result.Assignment.ID != "" {
		dto := toAssignmentDTO(result.Assignment)
		resp.Assignment = &dto
	}
	if !result.Dropped.Empty() {
		resp.Dropped = &selectionDTO{
			EmployeeIDs:   result.Dropped.EmployeeIDs,
			EquipmentIDs:  result.Dropped.EquipmentIDs,
			AttachmentIDs: result.Dropped.AttachmentIDs,
			ToolIDs:       result.Dropped.ToolIDs,
		}
	}
	return resp
}

func toRemoveResponse(result application.RemoveResult) removeResponse {
	resp := removeResponse{Removed: result.Removed, Pruned: result.Pruned}
	if result.Assignment.ID != "" && !result.Pruned {
		dto := toAssignmentDTO(result.Assignment)
		resp.Assignment = &dto
	}
	return resp
}
