package cluster

import (
	"fmt"
	"strings"
)

// scoreCluster runs a cluster's requirements in catalog order against the
// pool, enforcing subject uniqueness across all requirements. It returns
// the selections and their point sum (x) on success, or the failure reasons
// on ineligibility. The error path is reserved for catalog bugs: a
// selection count that disagrees with the compiled definition.
func scoreCluster(cl *Cluster, pool []subjectRecord) (sel []SelectionRecord, x int, reasons []string, err error) {
	used := make(map[string]bool, cl.needed)

	for i, req := range cl.Requirements {
		picked, satisfied, fatal := resolve(req, i, pool, used)
		if fatal {
			sp := req.(Special)
			return nil, 0, []string{fmt.Sprintf(
				"Requirement %d: No %s subject with %s or better",
				i+1, sp.Group, sp.MinGrade)}, nil
		}
		if !satisfied {
			return nil, 0, []string{fmt.Sprintf(
				"Requirement %d: Could not satisfy [%s]",
				i+1, strings.Join(req.Candidates(), ", "))}, nil
		}
		sel = append(sel, picked...)
		for _, s := range picked {
			x += s.Points
		}
	}

	if len(sel) != cl.needed {
		return nil, 0, nil, fmt.Errorf(
			"cluster %d: selected %d subjects, definition demands %d",
			cl.ID, len(sel), cl.needed)
	}
	return sel, x, nil, nil
}
