package application

import (
	"context"
	"errors"
	"testing"
)

func TestCatalogService_FiltersIneligibleResources(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(seededStore(), testNoEquipmentID)
	ctx := context.Background()

	employees, err := service.EligibleEmployees(ctx)
	if err != nil {
		t.Fatalf("EligibleEmployees: %v", err)
	}
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	equalIDs(t, ids, []string{"e-1", "e-2"}, "employees")

	equipment, err := service.EligibleEquipment(ctx)
	if err != nil {
		t.Fatalf("EligibleEquipment: %v", err)
	}
	ids = ids[:0]
	for _, e := range equipment {
		ids = append(ids, e.ID)
	}
	// eq-2 is in repair and still dispatchable; eq-3 is retired and the
	// sentinel row never appears.
	equalIDs(t, ids, []string{"eq-1", "eq-2"}, "equipment")

	attachments, err := service.EligibleAttachments(ctx)
	if err != nil {
		t.Fatalf("EligibleAttachments: %v", err)
	}
	if len(attachments) != 1 || attachments[0].ID != "at-1" {
		t.Fatalf("attachments = %+v, want only at-1", attachments)
	}

	tools, err := service.EligibleTools(ctx)
	if err != nil {
		t.Fatalf("EligibleTools: %v", err)
	}
	if len(tools) != 1 || tools[0].ID != "t-1" {
		t.Fatalf("tools = %+v, want only t-1", tools)
	}
}

func TestCatalogService_ProjectsAreUnfiltered(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(seededStore(), testNoEquipmentID)
	projects, err := service.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
}

func TestCatalogService_EligibleCatalogBundlesAllKinds(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(seededStore(), testNoEquipmentID)
	catalog, err := service.EligibleCatalog(context.Background())
	if err != nil {
		t.Fatalf("EligibleCatalog: %v", err)
	}
	if len(catalog.Employees) != 2 || len(catalog.Equipment) != 2 ||
		len(catalog.Attachments) != 1 || len(catalog.Tools) != 1 {
		t.Fatalf("catalog sizes = %d/%d/%d/%d", len(catalog.Employees),
			len(catalog.Equipment), len(catalog.Attachments), len(catalog.Tools))
	}
}

func TestCatalogService_StoreFailurePropagates(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(&failingCatalog{err: errStoreDown}, testNoEquipmentID)
	if _, err := service.EligibleCatalog(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}
