package cluster

import (
	"errors"
	"fmt"
	"strings"
)

func normalizeRoman(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// RequirementSpec is the declarative, serializable form of one requirement
// as it appears in the published cluster tables. Compile turns it into a
// typed Requirement and rejects malformed entries.
type RequirementSpec struct {
	Kind     string   `json:"type"` // specific | group | specific_or_group | special
	Subjects []string `json:"subjects,omitempty"`
	Group    string   `json:"group,omitempty"`     // special only, roman numeral
	MinGrade string   `json:"min_grade,omitempty"` // special only
	Count    int      `json:"count"`
}

// ClusterSpec is the declarative form of one admission cluster.
type ClusterSpec struct {
	ID           int               `json:"id"`
	Description  string            `json:"description"`
	Requirements []RequirementSpec `json:"requirements"`
}

// Cluster is a compiled, immutable cluster definition.
type Cluster struct {
	ID           int
	Description  string
	Requirements []Requirement
	needed       int // total selections a successful evaluation must produce
}

// Catalog holds the compiled cluster definitions, ordered by id. It is
// built once at startup and shared read-only by every evaluation.
type Catalog struct {
	clusters []Cluster
	byID     map[int]*Cluster
}

// ErrUnknownCluster is returned when an evaluation names a cluster id the
// catalog does not define.
var ErrUnknownCluster = errors.New("unknown cluster id")

// CompileCatalog validates and compiles cluster specs. Group tokens are
// parsed here so evaluation never deals with raw strings.
func CompileCatalog(specs []ClusterSpec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, errors.New("catalog has no clusters")
	}
	cat := &Catalog{byID: make(map[int]*Cluster, len(specs))}
	seen := make(map[int]bool, len(specs))
	for _, cs := range specs {
		if cs.ID <= 0 {
			return nil, fmt.Errorf("cluster %q: id must be positive", cs.Description)
		}
		if seen[cs.ID] {
			return nil, fmt.Errorf("duplicate cluster id %d", cs.ID)
		}
		seen[cs.ID] = true
		if len(cs.Requirements) == 0 {
			return nil, fmt.Errorf("cluster %d: no requirements", cs.ID)
		}
		c := Cluster{ID: cs.ID, Description: cs.Description}
		for i, rs := range cs.Requirements {
			req, err := compileRequirement(rs)
			if err != nil {
				return nil, fmt.Errorf("cluster %d requirement %d: %w", cs.ID, i+1, err)
			}
			c.Requirements = append(c.Requirements, req)
			c.needed += req.Count()
		}
		cat.clusters = append(cat.clusters, c)
	}
	for i := range cat.clusters {
		cat.byID[cat.clusters[i].ID] = &cat.clusters[i]
	}
	return cat, nil
}

func compileRequirement(rs RequirementSpec) (Requirement, error) {
	count := rs.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, fmt.Errorf("negative count %d", count)
	}

	var subjects []string
	var refs []GroupRef
	for _, cand := range rs.Subjects {
		if IsGroupToken(cand) {
			ref, err := ParseGroupRef(cand)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
			continue
		}
		canon := Normalize(cand)
		if !KnownSubject(canon) {
			return nil, fmt.Errorf("unknown subject %q", cand)
		}
		subjects = append(subjects, canon)
	}

	switch rs.Kind {
	case "specific":
		if len(refs) > 0 {
			return nil, errors.New("specific requirement cannot carry group tokens")
		}
		if len(subjects) == 0 {
			return nil, errors.New("specific requirement has no subjects")
		}
		return Specific{Subjects: subjects, N: count}, nil
	case "group":
		if len(subjects) > 0 {
			return nil, errors.New("group requirement cannot carry plain subjects")
		}
		if len(refs) == 0 {
			return nil, errors.New("group requirement has no group tokens")
		}
		return GroupPick{Refs: refs, N: count}, nil
	case "specific_or_group":
		if len(subjects) == 0 || len(refs) == 0 {
			return nil, errors.New("specific_or_group needs both subjects and group tokens")
		}
		return SpecificOrGroup{Subjects: subjects, Refs: refs, N: count}, nil
	case "special":
		g, ok := groupByRoman[normalizeRoman(rs.Group)]
		if !ok {
			return nil, fmt.Errorf("special requirement has unknown group %q", rs.Group)
		}
		if PointsOf(rs.MinGrade) == 0 {
			return nil, fmt.Errorf("special requirement has unusable min grade %q", rs.MinGrade)
		}
		return Special{Group: g, MinGrade: rs.MinGrade}, nil
	default:
		return nil, fmt.Errorf("unknown requirement kind %q", rs.Kind)
	}
}

// Cluster returns the compiled definition for id, or ErrUnknownCluster.
func (c *Catalog) Cluster(id int) (*Cluster, error) {
	cl, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCluster, id)
	}
	return cl, nil
}

// Clusters returns the definitions in catalog order.
func (c *Catalog) Clusters() []Cluster { return c.clusters }

// Len returns the number of clusters in the catalog.
func (c *Catalog) Len() int { return len(c.clusters) }
