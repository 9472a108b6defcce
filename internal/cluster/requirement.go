package cluster

import (
	"fmt"
	"strings"
)

// GroupRef is the structured form of tokens like "any_group_iii" or
// "2nd_group_ii": pick the Ordinal-th best unused subject from Group.
type GroupRef struct {
	Ordinal int // 1, 2 or 3
	Group   Group
}

func (r GroupRef) Token() string {
	ord := "any"
	switch r.Ordinal {
	case 2:
		ord = "2nd"
	case 3:
		ord = "3rd"
	}
	return ord + "_group_" + strings.ToLower(romanOf(r.Group))
}

func (r GroupRef) Label() string {
	switch r.Ordinal {
	case 2:
		return "2nd " + r.Group.String()
	case 3:
		return "3rd " + r.Group.String()
	default:
		return r.Group.String()
	}
}

func romanOf(g Group) string {
	switch g {
	case GroupI:
		return "I"
	case GroupII:
		return "II"
	case GroupIII:
		return "III"
	case GroupIV:
		return "IV"
	case GroupV:
		return "V"
	}
	return "?"
}

var groupByRoman = map[string]Group{
	"i": GroupI, "ii": GroupII, "iii": GroupIII, "iv": GroupIV, "v": GroupV,
}

// ParseGroupRef parses a group token ("any_group_iii", "2nd_group_ii",
// "3rd_group_v"). Malformed tokens are rejected here, at catalog load, so
// evaluation never sees one.
func ParseGroupRef(token string) (GroupRef, error) {
	rest, ok := strings.CutPrefix(token, "any_group_")
	ordinal := 1
	if !ok {
		if rest, ok = strings.CutPrefix(token, "2nd_group_"); ok {
			ordinal = 2
		} else if rest, ok = strings.CutPrefix(token, "3rd_group_"); ok {
			ordinal = 3
		} else {
			return GroupRef{}, fmt.Errorf("malformed group token %q", token)
		}
	}
	g, ok := groupByRoman[rest]
	if !ok {
		return GroupRef{}, fmt.Errorf("unknown group %q in token %q", rest, token)
	}
	return GroupRef{Ordinal: ordinal, Group: g}, nil
}

// IsGroupToken reports whether a candidate string is a group token rather
// than a plain subject name.
func IsGroupToken(s string) bool {
	return strings.HasPrefix(s, "any_group_") ||
		strings.HasPrefix(s, "2nd_group_") ||
		strings.HasPrefix(s, "3rd_group_")
}

// Requirement is one of a cluster's ordered subject-selection rules.
// Exactly one concrete kind exists per selection algorithm.
type Requirement interface {
	// Count is how many subjects the requirement must select.
	Count() int
	// Candidates returns the authored candidate tokens, for display and
	// failure messages.
	Candidates() []string
}

// Specific selects the first Count graded, unused subjects scanning the
// candidate list in authored order. List order is the tie-break.
type Specific struct {
	Subjects []string
	N        int
}

func (r Specific) Count() int           { return r.N }
func (r Specific) Candidates() []string { return r.Subjects }

// GroupPick walks group references in authored order, taking the subject at
// each reference's ordinal rank (by points, descending) among the unused
// members of that group.
type GroupPick struct {
	Refs []GroupRef
	N    int
}

func (r GroupPick) Count() int { return r.N }
func (r GroupPick) Candidates() []string {
	out := make([]string, len(r.Refs))
	for i, ref := range r.Refs {
		out[i] = ref.Token()
	}
	return out
}

// SpecificOrGroup tries the plain subject names first, then falls back to
// the group references if still short of Count.
type SpecificOrGroup struct {
	Subjects []string
	Refs     []GroupRef
	N        int
}

func (r SpecificOrGroup) Count() int { return r.N }
func (r SpecificOrGroup) Candidates() []string {
	out := append([]string{}, r.Subjects...)
	for _, ref := range r.Refs {
		out = append(out, ref.Token())
	}
	return out
}

// Special selects the single best subject in Group and demands it meet
// MinGrade. Failing it abandons the whole cluster. Used by cluster 14.
type Special struct {
	Group    Group
	MinGrade string
}

func (r Special) Count() int { return 1 }
func (r Special) Candidates() []string {
	return []string{"best_" + strings.ToLower(strings.ReplaceAll(r.Group.String(), " ", "_"))}
}
