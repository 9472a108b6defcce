package cluster

import "strings"

// Group is one of the five KCSE subject groups used by cluster requirements.
type Group int

const (
	GroupNone Group = iota
	GroupI
	GroupII
	GroupIII
	GroupIV
	GroupV
)

func (g Group) String() string {
	switch g {
	case GroupI:
		return "Group I"
	case GroupII:
		return "Group II"
	case GroupIII:
		return "Group III"
	case GroupIV:
		return "Group IV"
	case GroupV:
		return "Group V"
	default:
		return "Ungrouped"
	}
}

// subjectGroups assigns every canonical subject to its group. This is the
// corrected partition: Group II carries the sciences and Group III the
// humanities.
var subjectGroups = map[string]Group{
	// Group I - languages and mathematics
	"english": GroupI, "kiswahili": GroupI, "mathematics": GroupI,
	// Group II - sciences
	"biology": GroupII, "physics": GroupII, "chemistry": GroupII,
	"general_science": GroupII,
	// Group III - humanities
	"history": GroupIII, "geography": GroupIII,
	"cre": GroupIII, "ire": GroupIII, "hre": GroupIII,
	// Group IV - technical and applied
	"agriculture": GroupIV, "computer": GroupIV, "arts": GroupIV,
	"woodwork": GroupIV, "metalwork": GroupIV, "building": GroupIV,
	"electronics": GroupIV, "homescience": GroupIV, "aviation": GroupIV,
	"drawing_design": GroupIV, "power_mechanics": GroupIV,
	// Group V - foreign languages, music, business
	"french": GroupV, "german": GroupV, "arabic": GroupV,
	"kenya_sign_language": GroupV, "music": GroupV, "business": GroupV,
}

// subjectAliases maps common variant spellings to canonical subject names.
var subjectAliases = map[string]string{
	"mathematics_a":           "mathematics",
	"mathematics_b":           "mathematics",
	"home_science":            "homescience",
	"art":                     "arts",
	"art_and_design":          "arts",
	"building_construction":   "building",
	"electricity":             "electronics",
	"electricity_electronics": "electronics",
}

// Normalize lowercases a free-form subject name and resolves known aliases
// to a canonical identifier. Unknown names pass through unchanged; input
// validation belongs to the caller.
func Normalize(raw string) string {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
	if canon, ok := subjectAliases[s]; ok {
		return canon
	}
	return s
}

// GroupOf returns the group of a canonical subject, or GroupNone if the
// subject is not recognized.
func GroupOf(subject string) Group {
	return subjectGroups[Normalize(subject)]
}

// KnownSubject reports whether subject (after normalization) is one of the
// canonical examinable subjects.
func KnownSubject(subject string) bool {
	_, ok := subjectGroups[Normalize(subject)]
	return ok
}
