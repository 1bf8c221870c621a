package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/dispatch-scheduler/internal/dispatch"
)

var (
	employeeCounter   uint64
	equipmentCounter  uint64
	attachmentCounter uint64
	toolCounter       uint64
	projectCounter    uint64
	assignmentCounter uint64
)

var referenceTime = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline date used by fixtures. It is a
// Monday, so week windows anchored on it start at the reference itself.
func ReferenceTime() time.Time {
	return referenceTime
}

// --------------------------- Employee fixtures ---------------------------

// EmployeeOption configures the generated employee fixture.
type EmployeeOption func(*dispatch.Employee)

// NewEmployeeFixture returns a deterministic active employee with overrides.
func NewEmployeeFixture(opts ...EmployeeOption) dispatch.Employee {
	idx := atomic.AddUint64(&employeeCounter, 1)
	fixture := dispatch.Employee{
		ID:     fmt.Sprintf("employee-%03d", idx),
		Name:   fmt.Sprintf("Employee %03d", idx),
		Role:   "operator",
		Status: dispatch.StatusActive,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithEmployeeStatus overrides the employee status.
func WithEmployeeStatus(status string) EmployeeOption {
	return func(e *dispatch.Employee) {
		e.Status = status
	}
}

// WithEmployeeID overrides the generated employee id.
func WithEmployeeID(id string) EmployeeOption {
	return func(e *dispatch.Employee) {
		e.ID = id
	}
}

// --------------------------- Equipment fixtures --------------------------

// EquipmentOption configures the generated equipment fixture.
type EquipmentOption func(*dispatch.Equipment)

// NewEquipmentFixture returns a deterministic active equipment row.
func NewEquipmentFixture(opts ...EquipmentOption) dispatch.Equipment {
	idx := atomic.AddUint64(&equipmentCounter, 1)
	fixture := dispatch.Equipment{
		ID:       fmt.Sprintf("equipment-%03d", idx),
		Name:     fmt.Sprintf("Equipment %03d", idx),
		Number:   fmt.Sprintf("EQ-%03d", idx),
		Category: "excavator",
		Status:   dispatch.StatusActive,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithEquipmentStatus overrides the equipment status.
func WithEquipmentStatus(status string) EquipmentOption {
	return func(e *dispatch.Equipment) {
		e.Status = status
	}
}

// WithEquipmentID overrides the generated equipment id.
func WithEquipmentID(id string) EquipmentOption {
	return func(e *dispatch.Equipment) {
		e.ID = id
	}
}

// -------------------------- Attachment fixtures --------------------------

// AttachmentOption configures the generated attachment fixture.
type AttachmentOption func(*dispatch.Attachment)

// NewAttachmentFixture returns a deterministic active attachment row.
func NewAttachmentFixture(opts ...AttachmentOption) dispatch.Attachment {
	idx := atomic.AddUint64(&attachmentCounter, 1)
	fixture := dispatch.Attachment{
		ID:     fmt.Sprintf("attachment-%03d", idx),
		Name:   fmt.Sprintf("Attachment %03d", idx),
		Number: fmt.Sprintf("AT-%03d", idx),
		Status: dispatch.StatusActive,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithAttachmentStatus overrides the attachment status.
func WithAttachmentStatus(status string) AttachmentOption {
	return func(a *dispatch.Attachment) {
		a.Status = status
	}
}

// ----------------------------- Tool fixtures -----------------------------

// ToolOption configures the generated tool fixture.
type ToolOption func(*dispatch.Tool)

// NewToolFixture returns a deterministic active tool row.
func NewToolFixture(opts ...ToolOption) dispatch.Tool {
	idx := atomic.AddUint64(&toolCounter, 1)
	fixture := dispatch.Tool{
		ID:       fmt.Sprintf("tool-%03d", idx),
		Name:     fmt.Sprintf("Tool %03d", idx),
		Number:   fmt.Sprintf("TL-%03d", idx),
		Category: "compaction",
		Status:   dispatch.StatusActive,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithToolStatus overrides the tool status.
func WithToolStatus(status string) ToolOption {
	return func(tool *dispatch.Tool) {
		tool.Status = status
	}
}

// ---------------------------- Project fixtures ---------------------------

// ProjectOption configures the generated project fixture.
type ProjectOption func(*dispatch.Project)

// NewProjectFixture returns a deterministic active project.
func NewProjectFixture(opts ...ProjectOption) dispatch.Project {
	idx := atomic.AddUint64(&projectCounter, 1)
	fixture := dispatch.Project{
		ID:     fmt.Sprintf("project-%03d", idx),
		Number: fmt.Sprintf("PJ-%03d", idx),
		Name:   fmt.Sprintf("Project %03d", idx),
		Status: dispatch.StatusActive,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithProjectID overrides the generated project id.
func WithProjectID(id string) ProjectOption {
	return func(p *dispatch.Project) {
		p.ID = id
	}
}

// --------------------------- Assignment fixtures -------------------------

// AssignmentOption configures the generated assignment fixture.
type AssignmentOption func(*dispatch.Assignment)

// NewAssignmentFixture returns a deterministic assignment record dated at the
// reference time.
func NewAssignmentFixture(opts ...AssignmentOption) dispatch.Assignment {
	idx := atomic.AddUint64(&assignmentCounter, 1)
	fixture := dispatch.NewAssignment(
		fmt.Sprintf("assignment-%03d", idx),
		referenceTime,
		fmt.Sprintf("project-%03d", idx),
	)
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// OnDate places the assignment fixture on the given date.
func OnDate(date time.Time) AssignmentOption {
	return func(a *dispatch.Assignment) {
		a.Date = dispatch.DateOf(date)
	}
}

// ForProject pins the assignment fixture to the given project.
func ForProject(projectID string) AssignmentOption {
	return func(a *dispatch.Assignment) {
		a.ProjectID = projectID
	}
}

// WithResources sets one resource kind's id set on the fixture.
func WithResources(kind dispatch.ResourceKind, ids ...string) AssignmentOption {
	return func(a *dispatch.Assignment) {
		a.SetIDs(kind, ids)
	}
}
