package dispatch

// Resource status values as recorded in the catalog. The catalog itself is
// owned by a neighbouring subsystem; this package only reads statuses to decide
// dispatch eligibility.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusRetired   = "retired"
	StatusLost      = "lost"
	StatusInRepair  = "in_repair"
	StatusCompleted = "completed"
)

// Employee is a personnel catalog entry.
type Employee struct {
	ID     string
	Name   string
	Role   string
	Status string
}

// Equipment is a heavy-equipment catalog entry.
type Equipment struct {
	ID       string
	Name     string
	Number   string
	Category string
	Status   string
}

// Attachment is an equipment-attachment catalog entry.
type Attachment struct {
	ID     string
	Name   string
	Number string
	Status string
}

// Tool is a small-tool catalog entry.
type Tool struct {
	ID       string
	Name     string
	Number   string
	Category string
	Status   string
}

// Project is a project catalog entry referenced by assignments.
type Project struct {
	ID     string
	Number string
	Name   string
	Status string
}

// EmployeeEligible reports whether an employee may be dispatched.
func EmployeeEligible(e Employee) bool {
	return e.Status == StatusActive
}

// EquipmentEligible reports whether a piece of equipment may be dispatched.
// The sentinel id marks the "no equipment" placeholder row and is never
// dispatchable regardless of status.
func EquipmentEligible(e Equipment, sentinelID string) bool {
	if sentinelID != "" && e.ID == sentinelID {
		return false
	}
	return assetStatusEligible(e.Status)
}

// AttachmentEligible reports whether an attachment may be dispatched.
func AttachmentEligible(a Attachment) bool {
	return assetStatusEligible(a.Status)
}

// ToolEligible reports whether a tool may be dispatched.
func ToolEligible(t Tool) bool {
	return assetStatusEligible(t.Status)
}

func assetStatusEligible(status string) bool {
	return status != StatusRetired && status != StatusLost
}
