package cluster

// AggregatePoints computes y: the sum of the student's best 7 graded
// subjects (fewer if fewer were sat), independent of any cluster selection.
// The contributing subjects come back in descending point order.
func AggregatePoints(gs GradeSet) (int, []SubjectPoints) {
	pool := gs.pool()
	if len(pool) > maxAggregateCount {
		pool = pool[:maxAggregateCount]
	}
	total := 0
	top := make([]SubjectPoints, len(pool))
	for i, rec := range pool {
		total += rec.Points
		top[i] = SubjectPoints{Subject: rec.Subject, Points: rec.Points}
	}
	return total, top
}
