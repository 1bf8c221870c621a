package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
	"github.com/example/dispatch-scheduler/internal/persistence"
)

// AssignmentRepository implements persistence.AssignmentRepository using SQLite.
//
// Write serialization per (date, project_id) key comes from running every write
// inside a single transaction on a single-connection pool: the merge-or-create
// decision in UpsertAssignment cannot interleave with a concurrent upsert for
// the same key.
type AssignmentRepository struct {
	pool   *ConnectionPool
	mapper *ErrorMapper
	retry  *RetryHelper
}

var _ persistence.AssignmentRepository = (*AssignmentRepository)(nil)

// NewAssignmentRepository creates a new SQLite assignment repository.
func NewAssignmentRepository(pool *ConnectionPool) *AssignmentRepository {
	return &AssignmentRepository{
		pool:   pool,
		mapper: NewErrorMapper(),
		retry:  NewRetryHelper(DefaultRetryConfig()),
	}
}

// QueryAssignmentsByDate returns the date's assignments ordered by project id.
func (r *AssignmentRepository) QueryAssignmentsByDate(ctx context.Context, date time.Time) ([]dispatch.Assignment, error) {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT id, date, project_id FROM assignments WHERE date = ? ORDER BY project_id ASC, id ASC",
		dispatch.DateKey(date),
	)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var assignments []dispatch.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	for i := range assignments {
		if err := r.loadResources(ctx, &assignments[i]); err != nil {
			return nil, err
		}
	}

	return assignments, nil
}

// GetAssignment retrieves an assignment by id.
func (r *AssignmentRepository) GetAssignment(ctx context.Context, id string) (dispatch.Assignment, error) {
	if id == "" {
		return dispatch.Assignment{}, persistence.ErrNotFound
	}

	row := r.pool.DB().QueryRowContext(ctx,
		"SELECT id, date, project_id FROM assignments WHERE id = ?", id)

	assignment, err := scanAssignment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return dispatch.Assignment{}, persistence.ErrNotFound
		}
		return dispatch.Assignment{}, err
	}

	if err := r.loadResources(ctx, &assignment); err != nil {
		return dispatch.Assignment{}, err
	}
	return assignment, nil
}

// UpsertAssignment merges the assignment into any existing record with the
// same (date, project_id) key, or creates it with the given id.
func (r *AssignmentRepository) UpsertAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error) {
	if assignment.ID == "" || assignment.ProjectID == "" {
		return dispatch.Assignment{}, persistence.ErrConstraintViolation
	}

	dateKey := dispatch.DateKey(assignment.Date)
	now := time.Now().UTC().Format(time.RFC3339)

	var persistedID string
	err := r.retry.WithRetry(ctx, func() error {
		return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			var existingID string
			err := tx.QueryRow(
				"SELECT id FROM assignments WHERE date = ? AND project_id = ?",
				dateKey, assignment.ProjectID,
			).Scan(&existingID)

			switch {
			case err == sql.ErrNoRows:
				if _, err := tx.Exec(
					"INSERT INTO assignments (id, date, project_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
					assignment.ID, dateKey, assignment.ProjectID, now, now,
				); err != nil {
					return r.mapWriteError(err)
				}
				persistedID = assignment.ID
			case err != nil:
				return r.mapper.MapError(err)
			default:
				if _, err := tx.Exec(
					"UPDATE assignments SET updated_at = ? WHERE id = ?", now, existingID,
				); err != nil {
					return r.mapper.MapError(err)
				}
				persistedID = existingID
			}

			// INSERT OR IGNORE unions the incoming sets into whatever rows the
			// record already holds.
			for _, kind := range dispatch.Kinds() {
				for _, resourceID := range assignment.IDs(kind) {
					if _, err := tx.Exec(
						"INSERT OR IGNORE INTO assignment_resources (assignment_id, kind, resource_id) VALUES (?, ?, ?)",
						persistedID, kind.String(), resourceID,
					); err != nil {
						return r.mapWriteError(err)
					}
				}
			}

			return nil
		})
	})
	if err != nil {
		return dispatch.Assignment{}, err
	}

	return r.GetAssignment(ctx, persistedID)
}

// ReplaceAssignment overwrites an existing record's resource sets.
func (r *AssignmentRepository) ReplaceAssignment(ctx context.Context, assignment dispatch.Assignment) (dispatch.Assignment, error) {
	if assignment.ID == "" {
		return dispatch.Assignment{}, persistence.ErrNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)

	err := r.retry.WithRetry(ctx, func() error {
		return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			result, err := tx.Exec("UPDATE assignments SET updated_at = ? WHERE id = ?", now, assignment.ID)
			if err != nil {
				return r.mapper.MapError(err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			if affected == 0 {
				return persistence.ErrNotFound
			}

			if _, err := tx.Exec("DELETE FROM assignment_resources WHERE assignment_id = ?", assignment.ID); err != nil {
				return r.mapper.MapError(err)
			}
			for _, kind := range dispatch.Kinds() {
				for _, resourceID := range assignment.IDs(kind) {
					if _, err := tx.Exec(
						"INSERT INTO assignment_resources (assignment_id, kind, resource_id) VALUES (?, ?, ?)",
						assignment.ID, kind.String(), resourceID,
					); err != nil {
						return r.mapWriteError(err)
					}
				}
			}

			return nil
		})
	})
	if err != nil {
		return dispatch.Assignment{}, err
	}

	return r.GetAssignment(ctx, assignment.ID)
}

// DeleteAssignment removes a record and its resource rows by id.
func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}

	return r.retry.WithRetry(ctx, func() error {
		return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.Exec("DELETE FROM assignment_resources WHERE assignment_id = ?", id); err != nil {
				return r.mapper.MapError(err)
			}

			result, err := tx.Exec("DELETE FROM assignments WHERE id = ?", id)
			if err != nil {
				return r.mapper.MapError(err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			if affected == 0 {
				return persistence.ErrNotFound
			}

			return nil
		})
	})
}

func (r *AssignmentRepository) loadResources(ctx context.Context, assignment *dispatch.Assignment) error {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT kind, resource_id FROM assignment_resources WHERE assignment_id = ? ORDER BY resource_id ASC",
		assignment.ID,
	)
	if err != nil {
		return r.mapper.MapError(err)
	}
	defer rows.Close()

	sets := make(map[dispatch.ResourceKind][]string, 4)
	for rows.Next() {
		var kindName, resourceID string
		if err := rows.Scan(&kindName, &resourceID); err != nil {
			return r.mapper.MapError(err)
		}
		kind, ok := dispatch.ParseKind(kindName)
		if !ok {
			return fmt.Errorf("unknown resource kind %q on assignment %s", kindName, assignment.ID)
		}
		sets[kind] = append(sets[kind], resourceID)
	}
	if err := rows.Err(); err != nil {
		return r.mapper.MapError(err)
	}

	for kind, ids := range sets {
		assignment.SetIDs(kind, ids)
	}
	return nil
}

// mapWriteError maps SQLite write errors to persistence sentinels.
func (r *AssignmentRepository) mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if containsAny(errStr, "UNIQUE constraint failed") {
		return persistence.ErrDuplicate
	}
	if containsAny(errStr, "FOREIGN KEY constraint failed") {
		return persistence.ErrForeignKeyViolation
	}
	if containsAny(errStr, "CHECK constraint failed") {
		return persistence.ErrConstraintViolation
	}
	return r.mapper.MapError(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (dispatch.Assignment, error) {
	var assignment dispatch.Assignment
	var dateKey string

	if err := row.Scan(&assignment.ID, &dateKey, &assignment.ProjectID); err != nil {
		return dispatch.Assignment{}, err
	}

	date, err := dispatch.ParseDateKey(dateKey)
	if err != nil {
		return dispatch.Assignment{}, fmt.Errorf("failed to parse assignment date: %w", err)
	}
	assignment.Date = date

	return assignment, nil
}
