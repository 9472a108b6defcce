package cluster

// Engine evaluates grade sets against an immutable catalog. A single Engine
// is safe for concurrent use: evaluation reads shared state but never
// writes it.
type Engine struct {
	catalog *Catalog
}

// NewEngine wraps a compiled catalog. Pass DefaultCatalog() for the
// published cluster table, or a test catalog for alternate rule sets.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog exposes the engine's catalog for display purposes.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// EvaluateCluster scores a single cluster. Ineligibility comes back inside
// the result; the error is reserved for unknown ids and catalog bugs.
func (e *Engine) EvaluateCluster(id int, gs GradeSet) (ClusterResult, error) {
	cl, err := e.catalog.Cluster(id)
	if err != nil {
		return ClusterResult{}, err
	}
	y, _ := AggregatePoints(gs)
	return e.evaluateOne(cl, gs.pool(), y)
}

// Evaluate runs every cluster in the catalog against one grade set. The
// aggregate is computed once; each cluster evaluation is an independent
// pure function of the pool and the catalog.
func (e *Engine) Evaluate(gs GradeSet) (EvaluationResult, error) {
	y, top7 := AggregatePoints(gs)
	pool := gs.pool()

	out := EvaluationResult{
		AggregatePoints: y,
		Top7:            top7,
		Clusters:        make([]ClusterResult, 0, e.catalog.Len()),
	}
	for i := range e.catalog.clusters {
		res, err := e.evaluateOne(&e.catalog.clusters[i], pool, y)
		if err != nil {
			return EvaluationResult{}, err
		}
		out.Clusters = append(out.Clusters, res)
	}
	return out, nil
}

func (e *Engine) evaluateOne(cl *Cluster, pool []subjectRecord, y int) (ClusterResult, error) {
	res := ClusterResult{ClusterID: cl.ID, Description: cl.Description}

	sel, x, reasons, err := scoreCluster(cl, pool)
	if err != nil {
		return ClusterResult{}, err
	}
	if len(reasons) > 0 {
		res.Reasons = reasons
		res.ScoreText = res.ScoreDisplay()
		return res, nil
	}

	res.Selections = sel
	res.Eligible = true
	res.Score = ClusterScore(x, y)
	res.ScoreText = res.ScoreDisplay()
	return res, nil
}
