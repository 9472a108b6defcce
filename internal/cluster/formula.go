package cluster

import "math"

const (
	maxClusterSubjects = 4
	maxAggregateCount  = 7
	maxSubjectPoints   = 12
	maxClusterPoints   = maxClusterSubjects * maxSubjectPoints // 48
	maxAggregatePoints = maxAggregateCount * maxSubjectPoints  // 84
	reportingDeviation = 3.0
)

// ClusterScore applies the placement formula to a cluster point sum x and
// aggregate point sum y:
//
//	raw = min(sqrt((x/48) * (y/84)) * 48, 48)
//	score = max(0, round3(raw) - 3), rounded to 3 decimals
//
// Rounding raw before the deviation is subtracted matters for matching the
// published tables digit for digit. Non-positive x or y scores 0.
func ClusterScore(x, y int) float64 {
	if x <= 0 || y <= 0 {
		return 0
	}
	raw := math.Sqrt((float64(x) / maxClusterPoints) * (float64(y) / maxAggregatePoints)) * maxClusterPoints
	if raw > maxClusterPoints {
		raw = maxClusterPoints
	}
	adjusted := round3(raw) - reportingDeviation
	if adjusted < 0 {
		adjusted = 0
	}
	return round3(adjusted)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
