package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/kcse-tools/clusterpoints/internal/api/http"
	auth "github.com/kcse-tools/clusterpoints/internal/auth/middleware"
	"github.com/kcse-tools/clusterpoints/internal/cluster"
	"github.com/kcse-tools/clusterpoints/internal/config"
	"github.com/kcse-tools/clusterpoints/internal/db"
	"github.com/kcse-tools/clusterpoints/internal/results"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := results.NewSQLStore(dbh)

	// --- Engine ---
	// The catalog is compiled once at startup and shared read-only by every
	// request; rule updates ship as catalog data changes.
	catalog := cluster.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = cluster.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("catalog load failed: %v", err)
		}
	}
	eng := cluster.NewEngine(catalog)

	// --- Auth (admin surfaces only) ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)
	admin := auth.Admin{User: cfg.AdminUser, PassHash: cfg.AdminPassHash}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, admin))

	// Public: calculate and retrieve-by-receipt.
	r.Post("/api/calculate", api.CalculateHandler(eng, store))
	r.Get("/api/results/{receipt}", api.GetResultHandler(store))

	// Admin: recent results listing.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Get("/api/results", api.ListResultsHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, clusters=%d)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, eng.Catalog().Len())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
