package dispatch

import (
	"sort"
	"time"
)

// DateKeyLayout is the day-granularity format used wherever a calendar date is
// serialized. Assignments are partitioned by this key.
const DateKeyLayout = "2006-01-02"

// Assignment binds a set of resources to one project on one calendar date.
//
// The four id slices are duplicate-free and sorted whenever the assignment was
// produced through NewAssignment, SetIDs, or the stores. Date carries no time
// component; it is always midnight UTC.
type Assignment struct {
	ID            string
	Date          time.Time
	ProjectID     string
	EmployeeIDs   []string
	EquipmentIDs  []string
	AttachmentIDs []string
	ToolIDs       []string
}

// NewAssignment constructs a normalized assignment for the given day and project.
func NewAssignment(id string, date time.Time, projectID string) Assignment {
	return Assignment{
		ID:        id,
		Date:      DateOf(date),
		ProjectID: projectID,
	}
}

// IDs returns the id set for the given kind. Unknown kinds yield nil.
func (a Assignment) IDs(kind ResourceKind) []string {
	switch kind {
	case KindEmployee:
		return a.EmployeeIDs
	case KindEquipment:
		return a.EquipmentIDs
	case KindAttachment:
		return a.AttachmentIDs
	case KindTool:
		return a.ToolIDs
	default:
		return nil
	}
}

// SetIDs replaces the id set for the given kind with a normalized copy.
// Unknown kinds are ignored.
func (a *Assignment) SetIDs(kind ResourceKind, ids []string) {
	normalized := NormalizeIDs(ids)
	switch kind {
	case KindEmployee:
		a.EmployeeIDs = normalized
	case KindEquipment:
		a.EquipmentIDs = normalized
	case KindAttachment:
		a.AttachmentIDs = normalized
	case KindTool:
		a.ToolIDs = normalized
	}
}

// Contains reports whether the assignment references the resource id under the
// given kind.
func (a Assignment) Contains(kind ResourceKind, resourceID string) bool {
	for _, id := range a.IDs(kind) {
		if id == resourceID {
			return true
		}
	}
	return false
}

// Empty reports whether all four resource sets are empty. Empty assignments are
// invalid and must be pruned rather than persisted.
func (a Assignment) Empty() bool {
	return len(a.EmployeeIDs) == 0 && len(a.EquipmentIDs) == 0 &&
		len(a.AttachmentIDs) == 0 && len(a.ToolIDs) == 0
}

// Clone returns a deep copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := a
	out.EmployeeIDs = copyIDs(a.EmployeeIDs)
	out.EquipmentIDs = copyIDs(a.EquipmentIDs)
	out.AttachmentIDs = copyIDs(a.AttachmentIDs)
	out.ToolIDs = copyIDs(a.ToolIDs)
	return out
}

// Merge unions the other assignment's resource sets into the receiver's copy
// and returns the result. ID, Date, and ProjectID are taken from the receiver.
func (a Assignment) Merge(other Assignment) Assignment {
	merged := a.Clone()
	for _, kind := range Kinds() {
		merged.SetIDs(kind, append(copyIDs(merged.IDs(kind)), other.IDs(kind)...))
	}
	return merged
}

// DateOf truncates a time to its calendar day at midnight UTC.
func DateOf(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey renders a date as its day-granularity partition key.
func DateKey(t time.Time) string {
	return DateOf(t).Format(DateKeyLayout)
}

// ParseDateKey parses a day-granularity key back into a midnight-UTC date.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// NormalizeIDs removes empty strings and duplicates, returning a sorted copy.
func NormalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	if len(result) == 0 {
		return nil
	}
	sort.Strings(result)
	return result
}

func copyIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
