package dispatch

// UsedIDs returns the union of the given assignments' id sets for one kind.
// When excludeProjectID is non-empty, assignments belonging to that project are
// skipped, yielding the ids used elsewhere on the same day.
func UsedIDs(assignments []Assignment, kind ResourceKind, excludeProjectID string) map[string]struct{} {
	used := make(map[string]struct{})
	for _, assignment := range assignments {
		if excludeProjectID != "" && assignment.ProjectID == excludeProjectID {
			continue
		}
		for _, id := range assignment.IDs(kind) {
			used[id] = struct{}{}
		}
	}
	return used
}

// ExcludeUsed splits candidate ids into those free to assign and those dropped
// because another assignment on the same day already uses them. Dropping is a
// normal outcome of concurrent dispatching, not an error.
func ExcludeUsed(assignments []Assignment, kind ResourceKind, excludeProjectID string, candidates []string) (kept, dropped []string) {
	used := UsedIDs(assignments, kind, excludeProjectID)
	for _, id := range NormalizeIDs(candidates) {
		if _, ok := used[id]; ok {
			dropped = append(dropped, id)
			continue
		}
		kept = append(kept, id)
	}
	return kept, dropped
}
