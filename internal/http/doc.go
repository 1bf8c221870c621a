// Package http provides HTTP handlers and middleware for the dispatch API.
//
// The router exposes the following endpoints:
//   - POST /assignments: commits a resource selection to a project and day.
//     Body: {"date","project_id","employee_ids","equipment_ids",
//     "attachment_ids","tool_ids"}. The response carries the resulting record,
//     any ids excluded because another project already uses them that day, and
//     a no_op flag when nothing was written.
//   - DELETE /assignments/{id}/resources/{kind}/{resourceID}: removes one
//     resource from a record. Kind is one of employee, equipment, attachment,
//     tool. Emptied records are pruned; the response reports removed/pruned.
//   - GET /calendar: renders the window at the shared view cursor. With
//     ?cursor=YYYY-MM-DD and/or ?view=day|week|month the window is derived
//     from the query instead, an absent parameter defaulting to the shared
//     position, and the shared cursor is left untouched.
//   - POST /calendar/view, /calendar/next, /calendar/previous, /calendar/today,
//     /calendar/expand: navigate the shared view and render the new window.
//   - GET /availability?date=YYYY-MM-DD: renders a single day cell without
//     moving the view cursor.
//   - GET /catalog/employees, /catalog/equipment, /catalog/attachments,
//     /catalog/tools: dispatch-eligible catalog listings.
//   - GET /catalog/projects: all projects.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
