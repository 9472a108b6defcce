package results

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/kcse-tools/clusterpoints/internal/cluster"
)

// Record is one persisted evaluation: the grades that went in, the full
// result that came out, and the receipt code used to retrieve it later.
type Record struct {
	ID              string                   `json:"id"`
	Receipt         string                   `json:"receipt"`
	KCSEIndex       string                   `json:"kcse_index"`
	AggregatePoints int                      `json:"aggregate_points"`
	Grades          map[string]string        `json:"grades"`
	Evaluation      cluster.EvaluationResult `json:"evaluation"`
	CreatedAt       int64                    `json:"created_at"`
}

var ErrNotFound = errors.New("result not found")

type Store interface {
	Save(ctx context.Context, rec Record) error
	GetByReceipt(ctx context.Context, receipt string) (Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Save(ctx context.Context, rec Record) error {
	gj, err := json.Marshal(rec.Grades)
	if err != nil {
		return fmt.Errorf("marshal grades: %w", err)
	}
	ej, err := json.Marshal(rec.Evaluation)
	if err != nil {
		return fmt.Errorf("marshal evaluation: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO results
		(id, receipt, kcse_index, aggregate_points, grades_json, evaluation_json, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.Receipt, rec.KCSEIndex, rec.AggregatePoints, string(gj), string(ej), rec.CreatedAt)
	return err
}

func (s *SQLStore) GetByReceipt(ctx context.Context, receipt string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, receipt, kcse_index, aggregate_points,
		grades_json, evaluation_json, created_at FROM results WHERE receipt=$1`, receipt)
	return scanRecord(row)
}

func (s *SQLStore) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, receipt, kcse_index, aggregate_points,
		grades_json, evaluation_json, created_at FROM results
		ORDER BY created_at DESC LIMIT `+strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var gj, ej string
	err := row.Scan(&rec.ID, &rec.Receipt, &rec.KCSEIndex, &rec.AggregatePoints, &gj, &ej, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(gj), &rec.Grades); err != nil {
		return Record{}, fmt.Errorf("unmarshal grades: %w", err)
	}
	if err := json.Unmarshal([]byte(ej), &rec.Evaluation); err != nil {
		return Record{}, fmt.Errorf("unmarshal evaluation: %w", err)
	}
	return rec, nil
}

// NewRecord assembles a Record with a fresh id, receipt and timestamp.
func NewRecord(kcseIndex string, grades map[string]string, eval cluster.EvaluationResult) Record {
	return Record{
		ID:              time.Now().UTC().Format("20060102150405") + "-" + randomCode(4),
		Receipt:         "CPK" + randomCode(10),
		KCSEIndex:       kcseIndex,
		AggregatePoints: eval.AggregatePoints,
		Grades:          grades,
		Evaluation:      eval,
		CreatedAt:       time.Now().Unix(),
	}
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}

var kcseIndexRe = regexp.MustCompile(`^\d{11}/\d{4}$`)

// ValidKCSEIndex checks the 12345678901/2024 index format with a plausible
// examination year.
func ValidKCSEIndex(idx string) bool {
	if !kcseIndexRe.MatchString(idx) {
		return false
	}
	year, _ := strconv.Atoi(idx[len(idx)-4:])
	return year >= 1980 && year <= time.Now().Year()+1
}
