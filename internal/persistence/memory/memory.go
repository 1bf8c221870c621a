// Package memory provides an in-memory implementation of the persistence
// repositories, used by tests and DSN-less development runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
	"github.com/example/dispatch-scheduler/internal/persistence"
)

// Store keeps assignments and catalog records in process memory. The single
// mutex is held across every upsert, which serializes the merge-or-create
// decision per (date, project) key as the repository contract requires.
type Store struct {
	mu          sync.RWMutex
	assignments map[string]dispatch.Assignment
	employees   []dispatch.Employee
	equipment   []dispatch.Equipment
	attachments []dispatch.Attachment
	tools       []dispatch.Tool
	projects    []dispatch.Project
}

var (
	_ persistence.AssignmentRepository = (*Store)(nil)
	_ persistence.CatalogRepository    = (*Store)(nil)
)

// Open returns an empty store.
func Open() *Store {
	return &Store{assignments: make(map[string]dispatch.Assignment)}
}

// Close releases resources held by the store. No-op for the in-memory implementation.
func (s *Store) Close() error {
	return nil
}

// Migrate initialises the storage. No-op for the in-memory implementation.
func (s *Store) Migrate(context.Context) error {
	return nil
}

// --- AssignmentRepository implementation ---

// QueryAssignmentsByDate returns the date's assignments ordered by project id.
func (s *Store) QueryAssignmentsByDate(ctx context.Context, date time.Time) ([]dispatch.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := dispatch.DateOf(date)
	result := make([]dispatch.Assignment, 0)
	for _, assignment := range s.assignments {
		if assignment.Date.Equal(day) {
			result = append(result, assignment.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ProjectID == result[j].ProjectID {
			return result[i].ID < result[j].ID
		}
		return result[i].ProjectID < result[j].ProjectID
	})

	return result, nil
}

// GetAssignment retrieves an assignment by id.
func (s *Store) GetAssignment(ctx context.Context, id string) (dispatch.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignment, ok := s.assignments[id]
	if !ok {
		return dispatch.Assignment{}, persistence.ErrNotFound
	}
	return assignment.Clone(), nil
}

// UpsertAssignment merges the assignment into any existing record with the
// same (date, projectID) key, or creates it.
func (s *Store) UpsertAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error) {
	if assignment.ID == "" || assignment.ProjectID == "" {
		return dispatch.Assignment{}, persistence.ErrConstraintViolation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignment.Date = dispatch.DateOf(assignment.Date)
	for id, existing := range s.assignments {
		if id == assignment.ID {
			continue
		}
		if existing.Date.Equal(assignment.Date) && existing.ProjectID == assignment.ProjectID {
			merged := existing.Merge(assignment)
			s.assignments[id] = merged
			return merged.Clone(), nil
		}
	}

	if existing, ok := s.assignments[assignment.ID]; ok {
		merged := existing.Merge(assignment)
		s.assignments[assignment.ID] = merged
		return merged.Clone(), nil
	}

	stored := assignment.Clone()
	s.assignments[assignment.ID] = stored
	return stored.Clone(), nil
}

// ReplaceAssignment overwrites an existing record's resource sets.
func (s *Store) ReplaceAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.assignments[assignment.ID]
	if !ok {
		return dispatch.Assignment{}, persistence.ErrNotFound
	}

	replaced := assignment.Clone()
	replaced.Date = existing.Date
	replaced.ProjectID = existing.ProjectID
	s.assignments[assignment.ID] = replaced
	return replaced.Clone(), nil
}

// DeleteAssignment removes a record by id.
func (s *Store) DeleteAssignment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(s.assignments, id)
	return nil
}

// --- CatalogRepository implementation ---

// ListEmployees returns the seeded employees in seed order.
func (s *Store) ListEmployees(ctx context.Context) ([]dispatch.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dispatch.Employee(nil), s.employees...), nil
}

// ListEquipment returns the seeded equipment in seed order.
func (s *Store) ListEquipment(ctx context.Context) ([]dispatch.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dispatch.Equipment(nil), s.equipment...), nil
}

// ListAttachments returns the seeded attachments in seed order.
func (s *Store) ListAttachments(ctx context.Context) ([]dispatch.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dispatch.Attachment(nil), s.attachments...), nil
}

// ListTools returns the seeded tools in seed order.
func (s *Store) ListTools(ctx context.Context) ([]dispatch.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dispatch.Tool(nil), s.tools...), nil
}

// ListProjects returns the seeded projects in seed order.
func (s *Store) ListProjects(ctx context.Context) ([]dispatch.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dispatch.Project(nil), s.projects...), nil
}

// --- Catalog seeding ---

// SeedEmployees replaces the employee catalog.
func (s *Store) SeedEmployees(employees ...dispatch.Employee) {
	s.mu.Lock()
	s.employees = append([]dispatch.Employee(nil), employees...)
	s.mu.Unlock()
}

// SeedEquipment replaces the equipment catalog.
func (s *Store) SeedEquipment(equipment ...dispatch.Equipment) {
	s.mu.Lock()
	s.equipment = append([]dispatch.Equipment(nil), equipment...)
	s.mu.Unlock()
}

// SeedAttachments replaces the attachment catalog.
func (s *Store) SeedAttachments(attachments ...dispatch.Attachment) {
	s.mu.Lock()
	s.attachments = append([]dispatch.Attachment(nil), attachments...)
	s.mu.Unlock()
}

// SeedTools replaces the tool catalog.
func (s *Store) SeedTools(tools ...dispatch.Tool) {
	s.mu.Lock()
	s.tools = append([]dispatch.Tool(nil), tools...)
	s.mu.Unlock()
}

// SeedProjects replaces the project catalog.
func (s *Store) SeedProjects(projects ...dispatch.Project) {
	s.mu.Lock()
	s.projects = append([]dispatch.Project(nil), projects...)
	s.mu.Unlock()
}
