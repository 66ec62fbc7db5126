package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"calculator-api/domain"
)

// SQLiteCalculationRepository persists calculation history in a SQLite database.
type SQLiteCalculationRepository struct {
	db *sql.DB
}

// NewSQLiteCalculationRepository opens or creates the database at path and
// creates the schema if it does not exist.
func NewSQLiteCalculationRepository(path string) (*SQLiteCalculationRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	r := &SQLiteCalculationRepository{db: db}
	if err := r.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return r, nil
}

func (r *SQLiteCalculationRepository) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS calculations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			tool TEXT NOT NULL,
			input TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calculations_tool ON calculations(tool)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (r *SQLiteCalculationRepository) Save(ctx context.Context, calc domain.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (id, tool, input, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		calc.ID, calc.Tool, string(calc.Input), string(calc.Result),
		calc.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting calculation %s: %w", calc.ID, err)
	}
	return nil
}

func (r *SQLiteCalculationRepository) List(ctx context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error) {
	query := `SELECT id, tool, input, result, created_at FROM calculations`
	args := []any{}
	if filter.Tool != "" {
		query += ` WHERE tool = ?`
		args = append(args, filter.Tool)
	}
	query += ` ORDER BY rowid DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying calculations: %w", err)
	}
	defer rows.Close()

	out := []domain.Calculation{}
	for rows.Next() {
		var (
			calc          domain.Calculation
			input, result string
			createdAt     string
		)
		if err := rows.Scan(&calc.ID, &calc.Tool, &input, &result, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning calculation: %w", err)
		}
		calc.Input = []byte(input)
		calc.Result = []byte(result)
		if calc.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for %s: %w", calc.ID, err)
		}
		out = append(out, calc)
	}
	return out, rows.Err()
}

// Close releases the database connection.
func (r *SQLiteCalculationRepository) Close() error {
	return r.db.Close()
}
