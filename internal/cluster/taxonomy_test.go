package cluster_test

import (
	"testing"

	"github.com/kcse-tools/clusterpoints/internal/cluster"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Mathematics":           "mathematics",
		"mathematics_a":         "mathematics",
		"MATHEMATICS_B":         "mathematics",
		"home_science":          "homescience",
		"Home Science":          "homescience",
		"art":                   "arts",
		"art_and_design":        "arts",
		"building_construction": "building",
		"electricity":           "electronics",
		"geography":             "geography",
		"underwater basketry":   "underwater_basketry", // unknown names pass through
	}
	for in, want := range cases {
		if got := cluster.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGroupOf(t *testing.T) {
	cases := map[string]cluster.Group{
		"english":     cluster.GroupI,
		"mathematics": cluster.GroupI,
		"physics":     cluster.GroupII,
		"geography":   cluster.GroupIII,
		"cre":         cluster.GroupIII,
		"computer":    cluster.GroupIV,
		"homescience": cluster.GroupIV,
		"music":       cluster.GroupV,
		"business":    cluster.GroupV,
		"klingon":     cluster.GroupNone,
	}
	for subject, want := range cases {
		if got := cluster.GroupOf(subject); got != want {
			t.Errorf("GroupOf(%q) = %v, want %v", subject, got, want)
		}
	}
}

func TestPointsOf(t *testing.T) {
	if got := cluster.PointsOf("A"); got != 12 {
		t.Errorf("PointsOf(A) = %d, want 12", got)
	}
	if got := cluster.PointsOf("a-"); got != 11 {
		t.Errorf("PointsOf(a-) = %d, want 11 (case-insensitive)", got)
	}
	if got := cluster.PointsOf("E"); got != 1 {
		t.Errorf("PointsOf(E) = %d, want 1", got)
	}
	// Soft failure: unknown letters are worth nothing, not an error.
	for _, bad := range []string{"", "F", "A+", "zz"} {
		if got := cluster.PointsOf(bad); got != 0 {
			t.Errorf("PointsOf(%q) = %d, want 0", bad, got)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	cases := []struct {
		grade, min string
		want       bool
	}{
		{"B", "C+", true},
		{"C+", "C+", true},
		{"C", "C+", false},
		{"A", "", true},
		{"", "C", false},
	}
	for _, tc := range cases {
		if got := cluster.MeetsMinimum(tc.grade, tc.min); got != tc.want {
			t.Errorf("MeetsMinimum(%q, %q) = %v, want %v", tc.grade, tc.min, got, tc.want)
		}
	}
}
