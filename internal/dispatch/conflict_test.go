package dispatch

import (
	"reflect"
	"testing"
)

func dayAssignments(t *testing.T) []Assignment {
	t.Helper()

	first := NewAssignment("a-1", date(t, "2026-03-02"), "p-1")
	first.SetIDs(KindEmployee, []string{"e-1", "e-2"})
	first.SetIDs(KindEquipment, []string{"eq-1"})

	second := NewAssignment("a-2", date(t, "2026-03-02"), "p-2")
	second.SetIDs(KindEmployee, []string{"e-3"})
	second.SetIDs(KindTool, []string{"t-1"})

	return []Assignment{first, second}
}

func TestUsedIDs_UnionsAcrossProjects(t *testing.T) {
	t.Parallel()

	used := UsedIDs(dayAssignments(t), KindEmployee, "")
	for _, id := range []string{"e-1", "e-2", "e-3"} {
		if _, ok := used[id]; !ok {
			t.Errorf("UsedIDs missing %s", id)
		}
	}
	if len(used) != 3 {
		t.Fatalf("UsedIDs has %d entries, want 3", len(used))
	}
}

func TestUsedIDs_ExcludesOneProject(t *testing.T) {
	t.Parallel()

	used := UsedIDs(dayAssignments(t), KindEmployee, "p-1")
	if _, ok := used["e-1"]; ok {
		t.Error("UsedIDs included an id from the excluded project")
	}
	if _, ok := used["e-3"]; !ok {
		t.Error("UsedIDs dropped an id from another project")
	}
}

func TestExcludeUsed_SplitsKeptAndDropped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		kind        ResourceKind
		exclude     string
		candidates  []string
		wantKept    []string
		wantDropped []string
	}{
		{
			name:        "conflicting ids are dropped",
			kind:        KindEmployee,
			candidates:  []string{"e-1", "e-4"},
			wantKept:    []string{"e-4"},
			wantDropped: []string{"e-1"},
		},
		{
			name:       "no conflicts keeps everything",
			kind:       KindAttachment,
			candidates: []string{"at-1", "at-2"},
			wantKept:   []string{"at-1", "at-2"},
		},
		{
			name:        "fully conflicting selection keeps nothing",
			kind:        KindTool,
			candidates:  []string{"t-1"},
			wantDropped: []string{"t-1"},
		},
		{
			name:       "own project ids do not conflict when excluded",
			kind:       KindEmployee,
			exclude:    "p-1",
			candidates: []string{"e-1", "e-2"},
			wantKept:   []string{"e-1", "e-2"},
		},
		{
			name:       "duplicates collapse before the split",
			kind:       KindEquipment,
			candidates: []string{"eq-2", "eq-2"},
			wantKept:   []string{"eq-2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			kept, dropped := ExcludeUsed(dayAssignments(t), tc.kind, tc.exclude, tc.candidates)
			if !reflect.DeepEqual(kept, tc.wantKept) {
				t.Errorf("kept = %v, want %v", kept, tc.wantKept)
			}
			if !reflect.DeepEqual(dropped, tc.wantDropped) {
				t.Errorf("dropped = %v, want %v", dropped, tc.wantDropped)
			}
		})
	}
}
