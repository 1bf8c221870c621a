package application

import (
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

// SelectionIDs carries one id set per resource kind. It is used both for the
// caller's pending selection and for reporting conflict-excluded ids.
type SelectionIDs struct {
	EmployeeIDs   []string
	EquipmentIDs  []string
	AttachmentIDs []string
	ToolIDs       []string
}

// IDs returns the set for the given kind. Unknown kinds yield nil.
func (s SelectionIDs) IDs(kind dispatch.ResourceKind) []string {
	switch kind {
	case dispatch.KindEmployee:
		return s.EmployeeIDs
	case dispatch.KindEquipment:
		return s.EquipmentIDs
	case dispatch.KindAttachment:
		return s.AttachmentIDs
	case dispatch.KindTool:
		return s.ToolIDs
	default:
		return nil
	}
}

// SetIDs replaces the set for the given kind. Unknown kinds are ignored.
func (s *SelectionIDs) SetIDs(kind dispatch.ResourceKind, ids []string) {
	switch kind {
	case dispatch.KindEmployee:
		s.EmployeeIDs = ids
	case dispatch.KindEquipment:
		s.EquipmentIDs = ids
	case dispatch.KindAttachment:
		s.AttachmentIDs = ids
	case dispatch.KindTool:
		s.ToolIDs = ids
	}
}

// Empty reports whether all four sets are empty.
func (s SelectionIDs) Empty() bool {
	return len(s.EmployeeIDs) == 0 && len(s.EquipmentIDs) == 0 &&
		len(s.AttachmentIDs) == 0 && len(s.ToolIDs) == 0
}

// AssignInput captures a pending selection committed to one project and day.
type AssignInput struct {
	Date      time.Time
	ProjectID string
	Selection SelectionIDs
}

// AssignResult reports the outcome of AssignToDay. When NoOp is true nothing
// was written; Assignment then holds the pre-existing record, if any. Dropped
// lists the ids excluded because another project's assignment already uses
// them on that day.
type AssignResult struct {
	Assignment dispatch.Assignment
	Dropped    SelectionIDs
	NoOp       bool
}

// RemoveResult reports the outcome of RemoveResource. Removed is false when
// the assignment or the resource id did not exist; Pruned is true when the
// removal emptied the assignment and it was deleted.
type RemoveResult struct {
	Assignment dispatch.Assignment
	Removed    bool
	Pruned     bool
}

// DayCell is one calendar window entry: a date, its assignment records, and
// the eligible resources still unassigned on that date.
type DayCell struct {
	Date        time.Time
	Assignments []dispatch.Assignment
	Available   dispatch.Availability
}
