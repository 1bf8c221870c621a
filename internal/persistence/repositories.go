package persistence

import (
	"context"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

// AssignmentRepository is the durable, date-indexed store of assignment records.
//
// Implementations serialize writes per (date, projectID) natural key:
// UpsertAssignment's merge-or-create decision must be atomic with respect to
// concurrent upserts for the same key.
type AssignmentRepository interface {
	// QueryAssignmentsByDate returns every assignment on the given date across
	// all projects, ordered by project id.
	QueryAssignmentsByDate(ctx context.Context, date time.Time) ([]dispatch.Assignment, error)

	// GetAssignment returns the assignment with the given id or ErrNotFound.
	GetAssignment(ctx context.Context, id string) (dispatch.Assignment, error)

	// UpsertAssignment writes the assignment under its (date, projectID)
	// natural key. When a record already exists under that key, the incoming
	// resource sets are unioned into it and the existing record (with its
	// original id) is returned; otherwise the assignment is created as given.
	UpsertAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error)

	// ReplaceAssignment overwrites the resource sets of an existing record,
	// identified by id. Returns ErrNotFound when the record does not exist.
	ReplaceAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error)

	// DeleteAssignment removes the record with the given id. Returns
	// ErrNotFound when the record does not exist.
	DeleteAssignment(ctx context.Context, id string) error
}

// CatalogRepository supplies the read-only resource and project catalogs. The
// dispatch subsystem never mutates catalog records.
type CatalogRepository interface {
	ListEmployees(ctx context.Context) ([]dispatch.Employee, error)
	ListEquipment(ctx context.Context) ([]dispatch.Equipment, error)
	ListAttachments(ctx context.Context) ([]dispatch.Attachment, error)
	ListTools(ctx context.Context) ([]dispatch.Tool, error)
	ListProjects(ctx context.Context) ([]dispatch.Project, error)
}
