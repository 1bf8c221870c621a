package sqlite

import (
	"context"

	"github.com/example/dispatch-scheduler/internal/dispatch"
	"github.com/example/dispatch-scheduler/internal/persistence"
)

// CatalogRepository reads the resource and project catalogs from SQLite. The
// catalog tables are owned by the surrounding application; this subsystem only
// lists them, plus seed helpers for development databases.
type CatalogRepository struct {
	pool   *ConnectionPool
	mapper *ErrorMapper
}

var _ persistence.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new SQLite catalog repository.
func NewCatalogRepository(pool *ConnectionPool) *CatalogRepository {
	return &CatalogRepository{pool: pool, mapper: NewErrorMapper()}
}

// ListEmployees returns every employee ordered by name.
func (r *CatalogRepository) ListEmployees(ctx context.Context) ([]dispatch.Employee, error) {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT id, name, role, status FROM employees ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var employees []dispatch.Employee
	for rows.Next() {
		var employee dispatch.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Role, &employee.Status); err != nil {
			return nil, r.mapper.MapError(err)
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

// ListEquipment returns every equipment row ordered by number.
func (r *CatalogRepository) ListEquipment(ctx context.Context) ([]dispatch.Equipment, error) {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT id, name, number, category, status FROM equipment ORDER BY number ASC, id ASC")
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var equipment []dispatch.Equipment
	for rows.Next() {
		var item dispatch.Equipment
		if err := rows.Scan(&item.ID, &item.Name, &item.Number, &item.Category, &item.Status); err != nil {
			return nil, r.mapper.MapError(err)
		}
		equipment = append(equipment, item)
	}
	return equipment, rows.Err()
}

// ListAttachments returns every attachment ordered by number.
func (r *CatalogRepository) ListAttachments(ctx context.Context) ([]dispatch.Attachment, error) {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT id, name, number, status FROM attachments ORDER BY number ASC, id ASC")
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var attachments []dispatch.Attachment
	for rows.Next() {
		var attachment dispatch.Attachment
		if err := rows.Scan(&attachment.ID, &attachment.Name, &attachment.Number, &attachment.Status); err != nil {
			return nil, r.mapper.MapError(err)
		}
		attachments = append(attachments, attachment)
	}
	return attachments, rows.Err()
}

// ListTools returns every tool ordered by number.
func (r *CatalogRepository) ListTools(ctx context.Context) ([]dispatch.Tool, error) {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT id, name, number, category, status FROM tools ORDER BY number ASC, id ASC")
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var tools []dispatch.Tool
	for rows.Next() {
		var tool dispatch.Tool
		if err := rows.Scan(&tool.ID, &tool.Name, &tool.Number, &tool.Category, &tool.Status); err != nil {
			return nil, r.mapper.MapError(err)
		}
		tools = append(tools, tool)
	}
	return tools, rows.Err()
}

// ListProjects returns every project ordered by number.
func (r *CatalogRepository) ListProjects(ctx context.Context) ([]dispatch.Project, error) {
	rows, err := r.pool.DB().QueryContext(ctx,
		"SELECT id, number, name, status FROM projects ORDER BY number ASC, id ASC")
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var projects []dispatch.Project
	for rows.Next() {
		var project dispatch.Project
		if err := rows.Scan(&project.ID, &project.Number, &project.Name, &project.Status); err != nil {
			return nil, r.mapper.MapError(err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// SeedEmployee inserts or replaces an employee row.
func (r *CatalogRepository) SeedEmployee(ctx context.Context, employee dispatch.Employee) error {
	_, err := r.pool.DB().ExecContext(ctx,
		"INSERT OR REPLACE INTO employees (id, name, role, status) VALUES (?, ?, ?, ?)",
		employee.ID, employee.Name, employee.Role, employee.Status)
	return r.mapper.MapError(err)
}

// SeedEquipment inserts or replaces an equipment row.
func (r *CatalogRepository) SeedEquipment(ctx context.Context, equipment dispatch.Equipment) error {
	_, err := r.pool.DB().ExecContext(ctx,
		"INSERT OR REPLACE INTO equipment (id, name, number, category, status) VALUES (?, ?, ?, ?, ?)",
		equipment.ID, equipment.Name, equipment.Number, equipment.Category, equipment.Status)
	return r.mapper.MapError(err)
}

// SeedAttachment inserts or replaces an attachment row.
func (r *CatalogRepository) SeedAttachment(ctx context.Context, attachment dispatch.Attachment) error {
	_, err := r.pool.DB().ExecContext(ctx,
		"INSERT OR REPLACE INTO attachments (id, name, number, status) VALUES (?, ?, ?, ?)",
		attachment.ID, attachment.Name, attachment.Number, attachment.Status)
	return r.mapper.MapError(err)
}

// SeedTool inserts or replaces a tool row.
func (r *CatalogRepository) SeedTool(ctx context.Context, tool dispatch.Tool) error {
	_, err := r.pool.DB().ExecContext(ctx,
		"INSERT OR REPLACE INTO tools (id, name, number, category, status) VALUES (?, ?, ?, ?, ?)",
		tool.ID, tool.Name, tool.Number, tool.Category, tool.Status)
	return r.mapper.MapError(err)
}

// SeedProject inserts or replaces a project row.
func (r *CatalogRepository) SeedProject(ctx context.Context, project dispatch.Project) error {
	_, err := r.pool.DB().ExecContext(ctx,
		"INSERT OR REPLACE INTO projects (id, number, name, status) VALUES (?, ?, ?, ?)",
		project.ID, project.Number, project.Name, project.Status)
	return r.mapper.MapError(err)
}
