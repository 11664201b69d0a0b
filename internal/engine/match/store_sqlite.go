package match

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// sqliteRetry absorbs short SQLITE_BUSY windows from concurrent writers.
var sqliteRetry = engine.RetryConfig{
	MaxRetries:  3,
	InitialWait: 50 * time.Millisecond,
	MaxWait:     500 * time.Millisecond,
	Multiplier:  2.0,
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS resumes (
	id              TEXT PRIMARY KEY,
	filename        TEXT NOT NULL,
	summary         TEXT NOT NULL DEFAULT '',
	skills          TEXT NOT NULL DEFAULT '[]',
	experience      TEXT NOT NULL DEFAULT '0',
	education_level TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	uploaded_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resumes_uploaded_at ON resumes(uploaded_at);
`

// SQLiteStore is the default file-backed resume store.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the resume database at
// path. The modernc driver needs a single writer connection.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open resume db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init resume db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(ctx context.Context, rec engine.ResumeRecord) error {
	engine.IncrStoreOperations()
	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	_, err = engine.RetryDo(ctx, sqliteRetry, func() (sql.Result, error) {
		return s.db.ExecContext(ctx,
			`INSERT INTO resumes (id, filename, summary, skills, experience, education_level, category, uploaded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Filename, rec.Summary, string(skills), rec.Experience,
			rec.EducationLevel, rec.Category, rec.UploadedAt)
	})
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (engine.ResumeRecord, error) {
	engine.IncrStoreOperations()
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, summary, skills, experience, education_level, category, uploaded_at
		 FROM resumes WHERE id = ?`, id)
	rec, err := scanResume(row.Scan)
	if err == sql.ErrNoRows {
		return engine.ResumeRecord{}, ErrResumeNotFound
	}
	if err != nil {
		return engine.ResumeRecord{}, fmt.Errorf("get resume: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]engine.ResumeRecord, int, error) {
	engine.IncrStoreOperations()
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count resumes: %w", err)
	}

	q := `SELECT id, filename, summary, skills, experience, education_level, category, uploaded_at
	      FROM resumes ORDER BY uploaded_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var recs []engine.ResumeRecord
	for rows.Next() {
		rec, err := scanResume(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan resume: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, total, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	engine.IncrStoreOperations()
	res, err := engine.RetryDo(ctx, sqliteRetry, func() (sql.Result, error) {
		return s.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	})
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanResume decodes one row regardless of whether it came from QueryRow
// or Rows.
func scanResume(scan func(dest ...any) error) (engine.ResumeRecord, error) {
	var rec engine.ResumeRecord
	var skills string
	err := scan(&rec.ID, &rec.Filename, &rec.Summary, &skills, &rec.Experience,
		&rec.EducationLevel, &rec.Category, &rec.UploadedAt)
	if err != nil {
		return engine.ResumeRecord{}, err
	}
	if err := json.Unmarshal([]byte(skills), &rec.Skills); err != nil {
		rec.Skills = nil
	}
	return rec, nil
}
