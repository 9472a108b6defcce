package cluster

// resolve evaluates one requirement against the pool, honoring the set of
// subjects already claimed earlier in the same cluster. It returns the
// selections (possibly fewer than the requirement demands) and whether the
// requirement was satisfied. Special requirements that miss their minimum
// grade report fatal=true: the whole cluster is abandoned, not just the slot.
func resolve(req Requirement, reqIndex int, pool []subjectRecord, used map[string]bool) (sel []SelectionRecord, satisfied, fatal bool) {
	switch r := req.(type) {
	case Specific:
		sel = pickSpecific(r.Subjects, r.N, reqIndex, pool, used)
	case GroupPick:
		sel = pickByGroupRefs(r.Refs, r.N, reqIndex, pool, used)
	case SpecificOrGroup:
		sel = pickSpecific(r.Subjects, r.N, reqIndex, pool, used)
		if len(sel) < r.N {
			sel = append(sel, pickByGroupRefs(r.Refs, r.N-len(sel), reqIndex, pool, used)...)
		}
	case Special:
		return pickSpecial(r, reqIndex, pool, used)
	}
	return sel, len(sel) >= req.Count(), false
}

// pickSpecific scans candidates in authored order and takes graded, unused
// subjects until n are found. Authored order is the tie-break: it is never
// re-sorted by points.
func pickSpecific(candidates []string, n, reqIndex int, pool []subjectRecord, used map[string]bool) []SelectionRecord {
	var sel []SelectionRecord
	for _, want := range candidates {
		if used[want] {
			continue
		}
		rec, ok := lookup(pool, want)
		if !ok {
			continue
		}
		sel = append(sel, claim(rec, reqIndex, "Specific: "+want, used))
		if len(sel) >= n {
			break
		}
	}
	return sel
}

// pickByGroupRefs walks group references in authored order. Each reference
// takes the subject at its ordinal rank among the unused members of its
// group; a reference whose group has fewer members than the ordinal falls
// back to the lowest ordinal actually present.
func pickByGroupRefs(refs []GroupRef, n, reqIndex int, pool []subjectRecord, used map[string]bool) []SelectionRecord {
	var sel []SelectionRecord
	for _, ref := range refs {
		members := groupMembers(pool, ref.Group, used)
		if len(members) == 0 {
			continue
		}
		idx := ref.Ordinal - 1
		if idx >= len(members) {
			idx = len(members) - 1
		}
		sel = append(sel, claim(members[idx], reqIndex, ref.Label(), used))
		if len(sel) >= n {
			break
		}
	}
	return sel
}

// pickSpecial handles cluster 14's opening requirement: the best subject in
// the group must meet the minimum grade or the cluster fails outright.
func pickSpecial(r Special, reqIndex int, pool []subjectRecord, used map[string]bool) ([]SelectionRecord, bool, bool) {
	members := groupMembers(pool, r.Group, used)
	if len(members) == 0 || members[0].Points < PointsOf(r.MinGrade) {
		return nil, false, true
	}
	label := "HAG " + r.MinGrade + " (" + r.Group.String() + ")"
	return []SelectionRecord{claim(members[0], reqIndex, label, used)}, true, false
}

// groupMembers returns the unused graded subjects of a group. The pool is
// already sorted by points descending with alphabetical tie-break, so the
// slice comes back in ordinal order.
func groupMembers(pool []subjectRecord, g Group, used map[string]bool) []subjectRecord {
	var out []subjectRecord
	for _, rec := range pool {
		if rec.Group == g && !used[rec.Subject] {
			out = append(out, rec)
		}
	}
	return out
}

func lookup(pool []subjectRecord, subject string) (subjectRecord, bool) {
	for _, rec := range pool {
		if rec.Subject == subject {
			return rec, true
		}
	}
	return subjectRecord{}, false
}

func claim(rec subjectRecord, reqIndex int, label string, used map[string]bool) SelectionRecord {
	used[rec.Subject] = true
	return SelectionRecord{
		Subject:     rec.Subject,
		Grade:       rec.Grade,
		Points:      rec.Points,
		Requirement: reqIndex + 1,
		Label:       label,
	}
}
