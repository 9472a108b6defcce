package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kcse-tools/clusterpoints/internal/results"
)

// GET /api/results/{receipt}
// The retrieve-by-receipt flow: a student comes back later with the code
// from a previous calculation.
func GetResultHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt := strings.TrimSpace(chi.URLParam(r, "receipt"))
		if receipt == "" {
			http.Error(w, "receipt required", http.StatusBadRequest)
			return
		}
		rec, err := store.GetByReceipt(r.Context(), strings.ToUpper(receipt))
		if errors.Is(err, results.ErrNotFound) {
			http.Error(w, "no result for receipt", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "lookup: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /api/results?limit=N  (admin only)
func ListResultsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		recs, err := store.ListRecent(r.Context(), limit)
		if err != nil {
			http.Error(w, "list: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if recs == nil {
			recs = []results.Record{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recs)
	}
}
