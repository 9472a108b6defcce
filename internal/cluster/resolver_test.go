package cluster

import "testing"

func poolOf(t *testing.T, grades map[string]string) []subjectRecord {
	t.Helper()
	return NewGradeSet(grades).pool()
}

func TestPickSpecificHonorsCandidateOrder(t *testing.T) {
	// Kiswahili outscores english, but the authored order prefers english.
	pool := poolOf(t, map[string]string{"english": "B", "kiswahili": "A"})
	sel := pickSpecific([]string{"english", "kiswahili"}, 1, 0, pool, map[string]bool{})
	if len(sel) != 1 || sel[0].Subject != "english" {
		t.Fatalf("selected %+v, want english", sel)
	}
	if sel[0].Points != 9 {
		t.Fatalf("english worth %d points, want 9", sel[0].Points)
	}
}

func TestPickSpecificSkipsUsedSubjects(t *testing.T) {
	pool := poolOf(t, map[string]string{"english": "B", "kiswahili": "A"})
	used := map[string]bool{"english": true}
	sel := pickSpecific([]string{"english", "kiswahili"}, 1, 2, pool, used)
	if len(sel) != 1 || sel[0].Subject != "kiswahili" {
		t.Fatalf("selected %+v, want kiswahili", sel)
	}
	if sel[0].Requirement != 3 {
		t.Fatalf("requirement index recorded as %d, want 3", sel[0].Requirement)
	}
}

func TestPickByGroupRefsOrdinals(t *testing.T) {
	pool := poolOf(t, map[string]string{
		"biology":   "A-", // 11
		"physics":   "B+", // 10
		"chemistry": "B",  // 9
	})
	cases := []struct {
		ordinal int
		want    string
	}{
		{1, "biology"},
		{2, "physics"},
		{3, "chemistry"},
	}
	for _, tc := range cases {
		sel := pickByGroupRefs([]GroupRef{{Ordinal: tc.ordinal, Group: GroupII}}, 1, 0, pool, map[string]bool{})
		if len(sel) != 1 || sel[0].Subject != tc.want {
			t.Errorf("ordinal %d selected %+v, want %s", tc.ordinal, sel, tc.want)
		}
	}
}

func TestPickByGroupRefsOrdinalFallback(t *testing.T) {
	// A 2nd-best pick with only one graded group member takes that member.
	pool := poolOf(t, map[string]string{"history": "B"})
	sel := pickByGroupRefs([]GroupRef{{Ordinal: 2, Group: GroupIII}}, 1, 0, pool, map[string]bool{})
	if len(sel) != 1 || sel[0].Subject != "history" {
		t.Fatalf("selected %+v, want history via fallback", sel)
	}
}

func TestPickByGroupRefsMovesToNextToken(t *testing.T) {
	// No Group II subjects graded; the second token supplies the pick.
	pool := poolOf(t, map[string]string{"geography": "B-"})
	refs := []GroupRef{{Ordinal: 1, Group: GroupII}, {Ordinal: 1, Group: GroupIII}}
	sel := pickByGroupRefs(refs, 1, 0, pool, map[string]bool{})
	if len(sel) != 1 || sel[0].Subject != "geography" {
		t.Fatalf("selected %+v, want geography from second token", sel)
	}
}

func TestGroupTieBreakIsAlphabetical(t *testing.T) {
	pool := poolOf(t, map[string]string{"history": "B", "geography": "B", "cre": "B"})
	sel := pickByGroupRefs([]GroupRef{{Ordinal: 1, Group: GroupIII}}, 1, 0, pool, map[string]bool{})
	if len(sel) != 1 || sel[0].Subject != "cre" {
		t.Fatalf("selected %+v, want cre (alphabetical tie-break)", sel)
	}
}

func TestSpecificOrGroupFallsBackToGroups(t *testing.T) {
	pool := poolOf(t, map[string]string{"biology": "B+", "english": "B"})
	req := SpecificOrGroup{
		Subjects: []string{"mathematics"},
		Refs:     []GroupRef{{Ordinal: 1, Group: GroupII}},
		N:        1,
	}
	sel, satisfied, fatal := resolve(req, 1, pool, map[string]bool{})
	if fatal || !satisfied {
		t.Fatalf("satisfied=%v fatal=%v, want satisfied", satisfied, fatal)
	}
	if len(sel) != 1 || sel[0].Subject != "biology" {
		t.Fatalf("selected %+v, want biology from the group fallback", sel)
	}
}

func TestSpecialRequiresMinimumGrade(t *testing.T) {
	req := Special{Group: GroupIII, MinGrade: "C+"}

	pool := poolOf(t, map[string]string{"history": "C", "geography": "C-"})
	if _, satisfied, fatal := resolve(req, 0, pool, map[string]bool{}); satisfied || !fatal {
		t.Fatalf("best humanities grade C should fail fatally, got satisfied=%v fatal=%v", satisfied, fatal)
	}

	pool = poolOf(t, map[string]string{"history": "C", "geography": "B"})
	sel, satisfied, fatal := resolve(req, 0, pool, map[string]bool{})
	if fatal || !satisfied {
		t.Fatalf("geography B should satisfy, got satisfied=%v fatal=%v", satisfied, fatal)
	}
	if sel[0].Subject != "geography" || sel[0].Points != 9 {
		t.Fatalf("selected %+v, want geography at 9 points", sel)
	}
}
