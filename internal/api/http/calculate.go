package http

import (
	"encoding/json"
	"net/http"

	"github.com/kcse-tools/clusterpoints/internal/cluster"
	"github.com/kcse-tools/clusterpoints/internal/results"
)

type calculateReq struct {
	KCSEIndex string            `json:"kcse_index"`
	Grades    map[string]string `json:"grades"`
}

// POST /api/calculate
// Runs the full 20-cluster evaluation for one grade set and persists the
// outcome under a fresh receipt code.
func CalculateHandler(eng *cluster.Engine, store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if !results.ValidKCSEIndex(req.KCSEIndex) {
			http.Error(w, "invalid kcse index, expected 12345678901/2024", http.StatusBadRequest)
			return
		}
		gs := cluster.NewGradeSet(req.Grades)
		if len(gs) == 0 {
			http.Error(w, "no grades supplied", http.StatusBadRequest)
			return
		}

		eval, err := eng.Evaluate(gs)
		if err != nil {
			// Catalog-level failure, not a property of the student's grades.
			http.Error(w, "evaluate: "+err.Error(), http.StatusInternalServerError)
			return
		}

		rec := results.NewRecord(req.KCSEIndex, gs, eval)
		if err := store.Save(r.Context(), rec); err != nil {
			http.Error(w, "save result: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	}
}
