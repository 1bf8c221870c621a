package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

// AssignmentStore is the persistence surface DispatchService depends on.
// Satisfied by the sqlite and in-memory assignment repositories.
type AssignmentStore interface {
	QueryAssignmentsByDate(ctx context.Context, date time.Time) ([]dispatch.Assignment, error)
	GetAssignment(ctx context.Context, id string) (dispatch.Assignment, error)
	UpsertAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error)
	ReplaceAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// DispatchService runs the assignment planner: committing pending selections
// to a project and day, and removing individual resources again.
type DispatchService struct {
	store       AssignmentStore
	idGenerator func() string
	logger      *slog.Logger
}

// NewDispatchService wires the planner with its store and id source.
func NewDispatchService(store AssignmentStore, idGenerator func() string) *DispatchService {
	return NewDispatchServiceWithLogger(store, idGenerator, nil)
}

// NewDispatchServiceWithLogger is NewDispatchService with an explicit logger.
func NewDispatchServiceWithLogger(store AssignmentStore, idGenerator func() string, logger *slog.Logger) *DispatchService {
	return &DispatchService{
		store:       store,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

// AssignToDay commits the selection to the given project and day.
//
// Resources already assigned to another project on that day are silently
// excluded and reported in the result's Dropped sets. When a record for the
// (date, project) pair already exists, the surviving ids are merged into it;
// otherwise a new record is created. An empty or fully-excluded selection, or
// one whose ids the record already carries, writes nothing and reports NoOp.
func (s *DispatchService) AssignToDay(ctx context.Context, input AssignInput) (AssignResult, error) {
	if input.ProjectID == "" {
		return AssignResult{}, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return AssignResult{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := dispatch.DateOf(input.Date)
	logger := serviceLogger(ctx, s.logger, "dispatch", "assign_to_day",
		"date", dispatch.DateKey(date), "project_id", input.ProjectID)

	if input.Selection.Empty() {
		logger.DebugContext(ctx, "empty selection, nothing to commit")
		return AssignResult{NoOp: true}, nil
	}

	dayAssignments, err := s.store.QueryAssignmentsByDate(ctx, date)
	if err != nil {
		mapped := mapStoreError(err)
		logger.ErrorContext(ctx, "day query failed", "error", err, "error_kind", ErrorKind(mapped))
		return AssignResult{}, mapped
	}

	var existing *dispatch.Assignment
	for i := range dayAssignments {
		if dayAssignments[i].ProjectID == input.ProjectID {
			existing = &dayAssignments[i]
			break
		}
	}

	var kept, dropped SelectionIDs
	for _, kind := range dispatch.Kinds() {
		candidates := dispatch.NormalizeIDs(input.Selection.IDs(kind))
		keptIDs, droppedIDs := dispatch.ExcludeUsed(dayAssignments, kind, input.ProjectID, candidates)
		kept.SetIDs(kind, keptIDs)
		dropped.SetIDs(kind, droppedIDs)
	}

	if kept.Empty() {
		result := AssignResult{Dropped: dropped, NoOp: true}
		if existing != nil {
			result.Assignment = existing.Clone()
		}
		logger.InfoContext(ctx, "selection fully excluded by conflicts")
		return result, nil
	}

	if existing != nil && containsAll(*existing, kept) {
		logger.DebugContext(ctx, "record already carries selection", "assignment_id", existing.ID)
		return AssignResult{Assignment: existing.Clone(), Dropped: dropped, NoOp: true}, nil
	}

	incoming := dispatch.NewAssignment(s.idGenerator(), date, input.ProjectID)
	if existing != nil {
		incoming.ID = existing.ID
	}
	for _, kind := range dispatch.Kinds() {
		incoming.SetIDs(kind, kept.IDs(kind))
	}

	stored, err := s.store.UpsertAssignment(ctx, incoming)
	if err != nil {
		mapped := mapStoreError(err)
		logger.ErrorContext(ctx, "upsert failed", "error", err, "error_kind", ErrorKind(mapped))
		return AssignResult{}, mapped
	}

	logger.InfoContext(ctx, "selection committed",
		"assignment_id", stored.ID, "created", existing == nil)
	return AssignResult{Assignment: stored, Dropped: dropped}, nil
}

// RemoveResource takes one resource id off an assignment record. The call is
// idempotent: a missing record or an id the record does not carry is a no-op.
// A removal that empties the record deletes it and reports Pruned.
func (s *DispatchService) RemoveResource(ctx context.Context, assignmentID string, kind dispatch.ResourceKind, resourceID string) (RemoveResult, error) {
	if !kind.Valid() {
		return RemoveResult{}, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	if assignmentID == "" || resourceID == "" {
		return RemoveResult{}, fmt.Errorf("%w: assignment id and resource id are required", ErrInvalidInput)
	}

	logger := serviceLogger(ctx, s.logger, "dispatch", "remove_resource",
		"assignment_id", assignmentID, "kind", kind.String(), "resource_id", resourceID)

	record, err := s.store.GetAssignment(ctx, assignmentID)
	if err != nil {
		mapped := mapStoreError(err)
		if errors.Is(mapped, ErrNotFound) {
			logger.DebugContext(ctx, "record already gone")
			return RemoveResult{}, nil
		}
		logger.ErrorContext(ctx, "lookup failed", "error", err, "error_kind", ErrorKind(mapped))
		return RemoveResult{}, mapped
	}

	if !record.Contains(kind, resourceID) {
		logger.DebugContext(ctx, "resource not on record")
		return RemoveResult{Assignment: record}, nil
	}

	updated := record.Clone()
	updated.SetIDs(kind, without(record.IDs(kind), resourceID))

	if updated.Empty() {
		if err := s.store.DeleteAssignment(ctx, assignmentID); err != nil {
			mapped := mapStoreError(err)
			if !errors.Is(mapped, ErrNotFound) {
				logger.ErrorContext(ctx, "prune failed", "error", err, "error_kind", ErrorKind(mapped))
				return RemoveResult{}, mapped
			}
		}
		logger.InfoContext(ctx, "record emptied and pruned")
		return RemoveResult{Assignment: updated, Removed: true, Pruned: true}, nil
	}

	stored, err := s.store.ReplaceAssignment(ctx, updated)
	if err != nil {
		mapped := mapStoreError(err)
		logger.ErrorContext(ctx, "replace failed", "error", err, "error_kind", ErrorKind(mapped))
		return RemoveResult{}, mapped
	}

	logger.InfoContext(ctx, "resource removed")
	return RemoveResult{Assignment: stored, Removed: true}, nil
}

// DayAssignments returns every record on the given date, ordered by project.
func (s *DispatchService) DayAssignments(ctx context.Context, date time.Time) ([]dispatch.Assignment, error) {
	assignments, err := s.store.QueryAssignmentsByDate(ctx, dispatch.DateOf(date))
	if err != nil {
		return nil, mapStoreError(err)
	}
	return assignments, nil
}

func containsAll(record dispatch.Assignment, selection SelectionIDs) bool {
	for _, kind := range dispatch.Kinds() {
		for _, id := range selection.IDs(kind) {
			if !record.Contains(kind, id) {
				return false
			}
		}
	}
	return true
}

func without(ids []string, exclude string) []string {
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != exclude {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
