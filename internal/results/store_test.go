package results_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kcse-tools/clusterpoints/internal/cluster"
	"github.com/kcse-tools/clusterpoints/internal/db"
	"github.com/kcse-tools/clusterpoints/internal/results"
)

func openTestStore(t *testing.T) *results.SQLStore {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return results.NewSQLStore(dbh)
}

func sampleRecord(t *testing.T) results.Record {
	t.Helper()
	grades := map[string]string{"english": "A", "mathematics": "B+", "chemistry": "B"}
	eng := cluster.NewEngine(cluster.DefaultCatalog())
	eval, err := eng.Evaluate(cluster.NewGradeSet(grades))
	if err != nil {
		t.Fatal(err)
	}
	return results.NewRecord("12345678901/2024", grades, eval)
}

func TestSaveAndGetByReceipt(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := sampleRecord(t)
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.GetByReceipt(ctx, rec.Receipt)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != rec.ID || got.KCSEIndex != rec.KCSEIndex {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
	if got.AggregatePoints != rec.AggregatePoints {
		t.Fatalf("aggregate round-trip: %d != %d", got.AggregatePoints, rec.AggregatePoints)
	}
	if len(got.Evaluation.Clusters) != 20 {
		t.Fatalf("evaluation round-trip lost clusters: %d", len(got.Evaluation.Clusters))
	}
	if got.Grades["english"] != "A" {
		t.Fatalf("grades round-trip broken: %+v", got.Grades)
	}
}

func TestGetByReceiptNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetByReceipt(context.Background(), "CPKNOPE"); !errors.Is(err, results.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var receipts []string
	for i := 0; i < 3; i++ {
		rec := sampleRecord(t)
		rec.CreatedAt = int64(1000 + i)
		if err := store.Save(ctx, rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		receipts = append(receipts, rec.Receipt)
	}

	recs, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	// Newest first.
	if recs[0].Receipt != receipts[2] || recs[1].Receipt != receipts[1] {
		t.Fatalf("unexpected order: %s, %s", recs[0].Receipt, recs[1].Receipt)
	}
}

func TestNewRecordShape(t *testing.T) {
	rec := sampleRecord(t)
	if len(rec.Receipt) != 13 || rec.Receipt[:3] != "CPK" {
		t.Fatalf("receipt %q, want CPK + 10 characters", rec.Receipt)
	}
	if rec.ID == "" || rec.CreatedAt == 0 {
		t.Fatalf("record missing id or timestamp: %+v", rec)
	}
	other := sampleRecord(t)
	if other.Receipt == rec.Receipt {
		t.Fatal("two records share a receipt code")
	}
}

func TestValidKCSEIndex(t *testing.T) {
	valid := []string{"12345678901/2024", "00000000000/1999"}
	for _, idx := range valid {
		if !results.ValidKCSEIndex(idx) {
			t.Errorf("ValidKCSEIndex(%q) = false, want true", idx)
		}
	}
	invalid := []string{"", "1234/2024", "12345678901/24", "12345678901-2024", "12345678901/1950", "12345678901/3000"}
	for _, idx := range invalid {
		if results.ValidKCSEIndex(idx) {
			t.Errorf("ValidKCSEIndex(%q) = true, want false", idx)
		}
	}
}
