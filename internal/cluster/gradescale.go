package cluster

import "strings"

// gradePoints is the KCSE letter-to-points table. Immutable after init.
var gradePoints = map[string]int{
	"A": 12, "A-": 11, "B+": 10, "B": 9, "B-": 8,
	"C+": 7, "C": 6, "C-": 5, "D+": 4, "D": 3,
	"D-": 2, "E": 1,
}

// PointsOf converts a grade letter to points. Unknown or blank letters are
// worth 0 points; malformed grades are the caller's problem, not an error.
func PointsOf(letter string) int {
	return gradePoints[strings.ToUpper(strings.TrimSpace(letter))]
}

// MeetsMinimum reports whether grade is at least min. An empty minimum is
// always met; an empty grade never meets a non-empty minimum.
func MeetsMinimum(grade, min string) bool {
	if min == "" {
		return true
	}
	if grade == "" {
		return false
	}
	return PointsOf(grade) >= PointsOf(min)
}
