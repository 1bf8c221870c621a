package dispatch

// Catalog carries the eligible resource lists availability is computed against.
type Catalog struct {
	Employees   []Employee
	Equipment   []Equipment
	Attachments []Attachment
	Tools       []Tool
}

// Availability lists the eligible resources not referenced by any assignment on
// a given day. It is a pure derived view and is recomputed on every read.
type Availability struct {
	Employees   []Employee
	Equipment   []Equipment
	Attachments []Attachment
	Tools       []Tool
}

// AvailableResources computes the per-kind complement of the day's assignments
// over the eligible catalog, preserving catalog order.
func AvailableResources(assignments []Assignment, catalog Catalog) Availability {
	var out Availability

	used := UsedIDs(assignments, KindEmployee, "")
	for _, employee := range catalog.Employees {
		if _, ok := used[employee.ID]; !ok {
			out.Employees = append(out.Employees, employee)
		}
	}

	used = UsedIDs(assignments, KindEquipment, "")
	for _, equipment := range catalog.Equipment {
		if _, ok := used[equipment.ID]; !ok {
			out.Equipment = append(out.Equipment, equipment)
		}
	}

	used = UsedIDs(assignments, KindAttachment, "")
	for _, attachment := range catalog.Attachments {
		if _, ok := used[attachment.ID]; !ok {
			out.Attachments = append(out.Attachments, attachment)
		}
	}

	used = UsedIDs(assignments, KindTool, "")
	for _, tool := range catalog.Tools {
		if _, ok := used[tool.ID]; !ok {
			out.Tools = append(out.Tools, tool)
		}
	}

	return out
}
