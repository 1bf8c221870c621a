package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/example/dispatch-scheduler/internal/application"
	"github.com/example/dispatch-scheduler/internal/dispatch"
)

type catalogService interface {
	EligibleEmployees(ctx context.Context) ([]dispatch.Employee, error)
	EligibleEquipment(ctx context.Context) ([]dispatch.Equipment, error)
	EligibleAttachments(ctx context.Context) ([]dispatch.Attachment, error)
	EligibleTools(ctx context.Context) ([]dispatch.Tool, error)
	Projects(ctx context.Context) ([]dispatch.Project, error)
}

type CatalogHandler struct {
	service   catalogService
	responder responder
	logger    *slog.Logger
}

func NewCatalogHandler(service catalogService, logger *slog.Logger) *CatalogHandler {
	base := defaultLogger(logger)
	return &CatalogHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *CatalogHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "CatalogHandler", operation, attrs...)
}

func (h *CatalogHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListEmployees")
	employees, err := h.service.EligibleEmployees(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "employee list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(employees)).InfoContext(r.Context(), "employees listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listEmployeesResponse{Employees: toEmployeeDTOs(employees)})
}

func (h *CatalogHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListEquipment")
	equipment, err := h.service.EligibleEquipment(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "equipment list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(equipment)).InfoContext(r.Context(), "equipment listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listEquipmentResponse{Equipment: toEquipmentDTOs(equipment)})
}

func (h *CatalogHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListAttachments")
	attachments, err := h.service.EligibleAttachments(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "attachment list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(attachments)).InfoContext(r.Context(), "attachments listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listAttachmentsResponse{Attachments: toAttachmentDTOs(attachments)})
}

func (h *CatalogHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListTools")
	tools, err := h.service.EligibleTools(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "tool list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(tools)).InfoContext(r.Context(), "tools listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listToolsResponse{Tools: toToolDTOs(tools)})
}

func (h *CatalogHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListProjects")
	projects, err := h.service.Projects(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "project list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(projects)).InfoContext(r.Context(), "projects listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listProjectsResponse{Projects: toProjectDTOs(projects)})
}

type listEmployeesResponse struct {
	Employees []employeeDTO `json:"employees"`
}

type listEquipmentResponse struct {
	Equipment []equipmentDTO `json:"equipment"`
}

type listAttachmentsResponse struct {
	Attachments []attachmentDTO `json:"attachments"`
}

type listToolsResponse struct {
	Tools []toolDTO `json:"tools"`
}

type listProjectsResponse struct {
	Projects []projectDTO `json:"projects"`
}

type employeeDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status"`
}

type equipmentDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`
}

type attachmentDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	Status string `json:"status"`
}

type toolDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`
}

type projectDTO struct {
	ID     string `json:"id"`
	Number string `json:"number,omitempty"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func toEmployeeDTOs(employees []dispatch.Employee) []employeeDTO {
	if len(employees) == 0 {
		return nil
	}
	out := make([]employeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, employeeDTO{ID: e.ID, Name: e.Name, Role: e.Role, Status: e.Status})
	}
	return out
}

func toEquipmentDTOs(equipment []dispatch.Equipment) []equipmentDTO {
	if len(equipment) == 0 {
		return nil
	}
	out := make([]equipmentDTO, 0, len(equipment))
	for _, e := range equipment {
		out = append(out, equipmentDTO{ID: e.ID, Name: e.Name, Number: e.Number, Category: e.Category, Status: e.Status})
	}
	return out
}

func toAttachmentDTOs(attachments []dispatch.Attachment) []attachmentDTO {
	if len(attachments) == 0 {
		return nil
	}
	out := make([]attachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, attachmentDTO{ID: a.ID, Name: a.Name, Number: a.Number, Status: a.Status})
	}
	return out
}

func toToolDTOs(tools []dispatch.Tool) []toolDTO {
	if len(tools) == 0 {
		return nil
	}
	out := make([]toolDTO, 0, len(tools))
	for _, t := range tools {
		out = append(out, toolDTO{ID: t.ID, Name: t.Name, Number: t.Number, Category: t.Category, Status: t.Status})
	}
	return out
}

func toProjectDTOs(projects []dispatch.Project) []projectDTO {
	if len(projects) == 0 {
		return nil
	}
	out := make([]projectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectDTO{ID: p.ID, Number: p.Number, Name: p.Name, Status: p.Status})
	}
	return out
}
