package application

import (
	"context"
	"log/slog"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

// ResourceCatalog exposes the read-only resource and project listings consumed
// from the catalog collaborator.
type ResourceCatalog interface {
	ListEmployees(ctx context.Context) ([]dispatch.Employee, error)
	ListEquipment(ctx context.Context) ([]dispatch.Equipment, error)
	ListAttachments(ctx context.Context) ([]dispatch.Attachment, error)
	ListTools(ctx context.Context) ([]dispatch.Tool, error)
	ListProjects(ctx context.Context) ([]dispatch.Project, error)
}

// CatalogService filters the raw catalog down to resources eligible for
// dispatch. Pure reads; upstream failures propagate as ErrStoreUnavailable.
type CatalogService struct {
	catalog       ResourceCatalog
	noEquipmentID string
	logger        *slog.Logger
}

// NewCatalogService wires dependencies for catalog reads. noEquipmentID names
// the sentinel placeholder row that is never dispatchable.
func NewCatalogService(catalog ResourceCatalog, noEquipmentID string) *CatalogService {
	return NewCatalogServiceWithLogger(catalog, noEquipmentID, nil)
}

// NewCatalogServiceWithLogger is NewCatalogService with an explicit logger.
func NewCatalogServiceWithLogger(catalog ResourceCatalog, noEquipmentID string, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalog:       catalog,
		noEquipmentID: noEquipmentID,
		logger:        defaultLogger(logger),
	}
}

// EligibleEmployees lists active employees in catalog order.
func (s *CatalogService) EligibleEmployees(ctx context.Context) ([]dispatch.Employee, error) {
	all, err := s.catalog.ListEmployees(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	eligible := make([]dispatch.Employee, 0, len(all))
	for _, employee := range all {
		if dispatch.EmployeeEligible(employee) {
			eligible = append(eligible, employee)
		}
	}
	return eligible, nil
}

// EligibleEquipment lists dispatchable equipment in catalog order.
func (s *CatalogService) EligibleEquipment(ctx context.Context) ([]dispatch.Equipment, error) {
	all, err := s.catalog.ListEquipment(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	eligible := make([]dispatch.Equipment, 0, len(all))
	for _, equipment := range all {
		if dispatch.EquipmentEligible(equipment, s.noEquipmentID) {
			eligible = append(eligible, equipment)
		}
	}
	return eligible, nil
}

// EligibleAttachments lists dispatchable attachments in catalog order.
func (s *CatalogService) EligibleAttachments(ctx context.Context) ([]dispatch.Attachment, error) {
	all, err := s.catalog.ListAttachments(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	eligible := make([]dispatch.Attachment, 0, len(all))
	for _, attachment := range all {
		if dispatch.AttachmentEligible(attachment) {
			eligible = append(eligible, attachment)
		}
	}
	return eligible, nil
}

// EligibleTools lists dispatchable tools in catalog order.
func (s *CatalogService) EligibleTools(ctx context.Context) ([]dispatch.Tool, error) {
	all, err := s.catalog.ListTools(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	eligible := make([]dispatch.Tool, 0, len(all))
	for _, tool := range all {
		if dispatch.ToolEligible(tool) {
			eligible = append(eligible, tool)
		}
	}
	return eligible, nil
}

// Projects lists every project in catalog order.
func (s *CatalogService) Projects(ctx context.Context) ([]dispatch.Project, error) {
	projects, err := s.catalog.ListProjects(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return projects, nil
}

// EligibleCatalog bundles the four eligible lists for availability derivation.
func (s *CatalogService) EligibleCatalog(ctx context.Context) (dispatch.Catalog, error) {
	employees, err := s.EligibleEmployees(ctx)
	if err != nil {
		return dispatch.Catalog{}, err
	}
	equipment, err := s.EligibleEquipment(ctx)
	if err != nil {
		return dispatch.Catalog{}, err
	}
	attachments, err := s.EligibleAttachments(ctx)
	if err != nil {
		return dispatch.Catalog{}, err
	}
	tools, err := s.EligibleTools(ctx)
	if err != nil {
		return dispatch.Catalog{}, err
	}

	return dispatch.Catalog{
		Employees:   employees,
		Equipment:   equipment,
		Attachments: attachments,
		Tools:       tools,
	}, nil
}
