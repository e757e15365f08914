// Package store persists generated plans in SQLite. Records are append-only:
// plans are saved once and read back by their store-assigned id, never
// updated or deleted.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// Store manages the task_plans table.
type Store struct {
	DBPath string
	db     *sql.DB
}

// Record is a stored plan row. ID and CreatedAt are assigned by the store
// at insertion.
type Record struct {
	ID        int64     `json:"id"`
	Goal      string    `json:"goal"`
	Plan      plan.Plan `json:"plan"`
	LLMMethod string    `json:"llm_method"`
	CreatedAt time.Time `json:"created_at"`
}

// Open opens or creates the plan database at path.
func Open(path string) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure db dir: %w", err)
	}

	db, err := sql.Open("sqlite", absPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		DBPath: absPath,
		db:     db,
	}

	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS task_plans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	goal TEXT NOT NULL,
	plan TEXT NOT NULL,
	llm_method TEXT NOT NULL DEFAULT 'unknown',
	created_at TEXT NOT NULL
);
`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Save inserts a plan and returns its store-assigned id. IDs are strictly
// increasing across inserts.
func (s *Store) Save(ctx context.Context, goal string, p plan.Plan, method string) (int64, error) {
	planJSON, err := json.Marshal(p)
	if err != nil {
		return 0, fmt.Errorf("marshal plan: %w", err)
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO task_plans (goal, plan, llm_method, created_at)
		VALUES (?, ?, ?, ?)
	`, goal, string(planJSON), method, createdAt)
	if err != nil {
		return 0, fmt.Errorf("insert plan: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve plan id: %w", err)
	}
	return id, nil
}

// Get retrieves a stored plan by id.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	var planJSON, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, goal, plan, llm_method, created_at
		FROM task_plans
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Goal, &planJSON, &rec.LLMMethod, &createdAt)

	if err == sql.ErrNoRows {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	if err := json.Unmarshal([]byte(planJSON), &rec.Plan); err != nil {
		return nil, fmt.Errorf("parse stored plan %d: %w", id, err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	return &rec, nil
}

// List returns up to limit recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal, plan, llm_method, created_at
		FROM task_plans
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var planJSON, createdAt string
		if err := rows.Scan(&rec.ID, &rec.Goal, &planJSON, &rec.LLMMethod, &createdAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		if err := json.Unmarshal([]byte(planJSON), &rec.Plan); err != nil {
			return nil, fmt.Errorf("parse stored plan %d: %w", rec.ID, err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return records, nil
}
