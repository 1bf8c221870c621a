package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
	"github.com/example/dispatch-scheduler/internal/persistence/memory"
)

const testNoEquipmentID = "no-equipment"

func day(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := dispatch.ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey(%q): %v", key, err)
	}
	return parsed
}

// sequentialIDs returns an id generator yielding asg-1, asg-2, ...
func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("asg-%d", n)
	}
}

func seededStore() *memory.Store {
	store := memory.Open()
	store.SeedEmployees(
		dispatch.Employee{ID: "e-1", Name: "Sato", Role: "operator", Status: dispatch.StatusActive},
		dispatch.Employee{ID: "e-2", Name: "Suzuki", Role: "foreman", Status: dispatch.StatusActive},
		dispatch.Employee{ID: "e-3", Name: "Tanaka", Role: "operator", Status: dispatch.StatusInactive},
	)
	store.SeedEquipment(
		dispatch.Equipment{ID: "eq-1", Name: "Excavator 01", Status: dispatch.StatusActive},
		dispatch.Equipment{ID: "eq-2", Name: "Dump truck 02", Status: dispatch.StatusInRepair},
		dispatch.Equipment{ID: "eq-3", Name: "Crane 03", Status: dispatch.StatusRetired},
		dispatch.Equipment{ID: testNoEquipmentID, Name: "No equipment", Status: dispatch.StatusActive},
	)
	store.SeedAttachments(
		dispatch.Attachment{ID: "at-1", Name: "Bucket", Status: dispatch.StatusActive},
		dispatch.Attachment{ID: "at-2", Name: "Breaker", Status: dispatch.StatusLost},
	)
	store.SeedTools(
		dispatch.Tool{ID: "t-1", Name: "Plate compactor", Status: dispatch.StatusActive},
		dispatch.Tool{ID: "t-2", Name: "Generator", Status: dispatch.StatusRetired},
	)
	store.SeedProjects(
		dispatch.Project{ID: "p-1", Name: "Riverside levee", Status: dispatch.StatusActive},
		dispatch.Project{ID: "p-2", Name: "Bypass road", Status: dispatch.StatusActive},
	)
	return store
}

// failingStore returns the configured error from every method.
type failingStore struct {
	err error
}

func (f *failingStore) QueryAssignmentsByDate(context.Context, time.Time) ([]dispatch.Assignment, error) {
	return nil, f.err
}

func (f *failingStore) GetAssignment(context.Context, string) (dispatch.Assignment, error) {
	return dispatch.Assignment{}, f.err
}

func (f *failingStore) UpsertAssignment(context.Context, dispatch.Assignment) (dispatch.Assignment, error) {
	return dispatch.Assignment{}, f.err
}

func (f *failingStore) ReplaceAssignment(context.Context, dispatch.Assignment) (dispatch.Assignment, error) {
	return dispatch.Assignment{}, f.err
}

func (f *failingStore) DeleteAssignment(context.Context, string) error {
	return f.err
}

// failingCatalog returns the configured error from every listing.
type failingCatalog struct {
	err error
}

func (f *failingCatalog) ListEmployees(context.Context) ([]dispatch.Employee, error) {
	return nil, f.err
}

func (f *failingCatalog) ListEquipment(context.Context) ([]dispatch.Equipment, error) {
	return nil, f.err
}

func (f *failingCatalog) ListAttachments(context.Context) ([]dispatch.Attachment, error) {
	return nil, f.err
}

func (f *failingCatalog) ListTools(context.Context) ([]dispatch.Tool, error) {
	return nil, f.err
}

func (f *failingCatalog) ListProjects(context.Context) ([]dispatch.Project, error) {
	return nil, f.err
}

var errStoreDown = errors.New("store down")

func equalIDs(t *testing.T, got, want []string, label string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", label, got, want)
		}
	}
}
