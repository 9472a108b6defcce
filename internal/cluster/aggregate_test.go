package cluster_test

import (
	"testing"

	"github.com/kcse-tools/clusterpoints/internal/cluster"
)

func TestAggregatePointsBestSeven(t *testing.T) {
	gs := cluster.NewGradeSet(map[string]string{
		"mathematics": "A",
		"english":     "B+",
		"kiswahili":   "B",
		"physics":     "A-",
		"chemistry":   "B+",
		"biology":     "B",
		"history":     "C+",
		"computer":    "A",
	})
	agp, top7 := cluster.AggregatePoints(gs)
	if agp != 73 {
		t.Fatalf("aggregate = %d, want 73", agp)
	}
	if len(top7) != 7 {
		t.Fatalf("top7 has %d entries, want 7", len(top7))
	}
	// History (7 points) is the eighth subject and must be the one dropped.
	for _, sp := range top7 {
		if sp.Subject == "history" {
			t.Fatalf("history should not contribute to the best 7")
		}
	}
	for i := 1; i < len(top7); i++ {
		if top7[i].Points > top7[i-1].Points {
			t.Fatalf("top7 not sorted descending: %+v", top7)
		}
	}
}

func TestAggregatePointsFewerThanSeven(t *testing.T) {
	gs := cluster.NewGradeSet(map[string]string{
		"mathematics": "A",
		"english":     "B",
		"chemistry":   "C",
	})
	agp, top := cluster.AggregatePoints(gs)
	if agp != 12+9+6 {
		t.Fatalf("aggregate = %d, want %d", agp, 12+9+6)
	}
	if len(top) != 3 {
		t.Fatalf("contributors = %d, want 3", len(top))
	}
}

func TestAggregatePointsIgnoresBlankGrades(t *testing.T) {
	gs := cluster.NewGradeSet(map[string]string{
		"mathematics": "A",
		"english":     "",
		"physics":     "  ",
	})
	agp, top := cluster.AggregatePoints(gs)
	if agp != 12 || len(top) != 1 {
		t.Fatalf("aggregate = %d with %d contributors, want 12 with 1", agp, len(top))
	}
}
