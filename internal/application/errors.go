package application

import (
	"errors"
	"fmt"

	"github.com/example/dispatch-scheduler/internal/persistence"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrStoreUnavailable is returned when the persistence collaborator failed
	// to read or write. The underlying cause is wrapped; no retry happens at
	// this layer.
	ErrStoreUnavailable = errors.New("application: store unavailable")
	// ErrInvalidKind is returned when an operation names an unknown resource kind.
	ErrInvalidKind = errors.New("application: invalid resource kind")
	// ErrInvalidInput is returned when required fields are missing or malformed.
	ErrInvalidInput = errors.New("application: invalid input")
)

// mapStoreError translates persistence failures into application sentinels.
// Not-found keeps its identity; everything else is a store availability issue.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
