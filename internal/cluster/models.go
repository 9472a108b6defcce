package cluster

import (
	"sort"
	"strconv"
	"strings"
)

// GradeSet maps canonical subject names to uppercase grade letters. Absent
// subjects were not sat. Build one per request; never mutate during scoring.
type GradeSet map[string]string

// NewGradeSet normalizes free-form subject names and grade letters into a
// GradeSet. Blank grades are dropped.
func NewGradeSet(raw map[string]string) GradeSet {
	gs := make(GradeSet, len(raw))
	for subject, grade := range raw {
		g := strings.ToUpper(strings.TrimSpace(grade))
		if g == "" {
			continue
		}
		gs[Normalize(subject)] = g
	}
	return gs
}

// subjectRecord is the transient evaluation view of one graded subject.
type subjectRecord struct {
	Subject string
	Grade   string
	Points  int
	Group   Group
}

// pool builds the evaluation records, ordered by points descending with
// alphabetical tie-break. The explicit tie-break keeps group ordinal picks
// independent of map iteration order.
func (gs GradeSet) pool() []subjectRecord {
	recs := make([]subjectRecord, 0, len(gs))
	for subject, grade := range gs {
		recs = append(recs, subjectRecord{
			Subject: subject,
			Grade:   grade,
			Points:  PointsOf(grade),
			Group:   GroupOf(subject),
		})
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Points != recs[j].Points {
			return recs[i].Points > recs[j].Points
		}
		return recs[i].Subject < recs[j].Subject
	})
	return recs
}

// SelectionRecord is one subject chosen toward a cluster's four slots.
type SelectionRecord struct {
	Subject     string `json:"subject"`
	Grade       string `json:"grade"`
	Points      int    `json:"points"`
	Requirement int    `json:"requirement"` // 1-based requirement index
	Label       string `json:"label"`
}

// SubjectPoints is one contributor to the aggregate (best-7) sum.
type SubjectPoints struct {
	Subject string `json:"subject"`
	Points  int    `json:"points"`
}

// ClusterResult is the outcome for a single cluster. Ineligibility is a
// normal outcome: score 0 plus the reasons, never an error.
type ClusterResult struct {
	ClusterID   int               `json:"cluster"`
	Description string            `json:"description"`
	Score       float64           `json:"points"`
	ScoreText   string            `json:"points_display"` // always 3 decimal places
	Selections  []SelectionRecord `json:"subjects,omitempty"`
	Reasons     []string          `json:"reasons,omitempty"`
	Eligible    bool              `json:"eligible"`
}

// ScoreDisplay formats the score to exactly three decimal places.
func (r ClusterResult) ScoreDisplay() string {
	return strconv.FormatFloat(r.Score, 'f', 3, 64)
}

// EvaluationResult collates the aggregate computation and all cluster
// outcomes for one grade set.
type EvaluationResult struct {
	AggregatePoints int             `json:"aggregate_points"`
	Top7            []SubjectPoints `json:"top7"`
	Clusters        []ClusterResult `json:"clusters"`
}
