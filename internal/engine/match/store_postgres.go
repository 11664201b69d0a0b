package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS resumes (
	id              TEXT PRIMARY KEY,
	filename        TEXT NOT NULL,
	summary         TEXT NOT NULL DEFAULT '',
	skills          JSONB NOT NULL DEFAULT '[]',
	experience      TEXT NOT NULL DEFAULT '0',
	education_level TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	uploaded_at     TEXT NOT NULL
)`

// PostgresStore backs the resume store with a shared Postgres database,
// used when DATABASE_URL is set.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgresStore connects to url and ensures the schema exists.
func ConnectPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect resume db: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init resume db: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Add(ctx context.Context, rec engine.ResumeRecord) error {
	engine.IncrStoreOperations()
	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, filename, summary, skills, experience, education_level, category, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Filename, rec.Summary, string(skills), rec.Experience,
		rec.EducationLevel, rec.Category, rec.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (engine.ResumeRecord, error) {
	engine.IncrStoreOperations()
	row := s.pool.QueryRow(ctx,
		`SELECT id, filename, summary, skills::text, experience, education_level, category, uploaded_at
		 FROM resumes WHERE id = $1`, id)
	rec, err := scanResume(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return engine.ResumeRecord{}, ErrResumeNotFound
	}
	if err != nil {
		return engine.ResumeRecord{}, fmt.Errorf("get resume: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]engine.ResumeRecord, int, error) {
	engine.IncrStoreOperations()
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count resumes: %w", err)
	}

	q := `SELECT id, filename, summary, skills::text, experience, education_level, category, uploaded_at
	      FROM resumes ORDER BY uploaded_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := s.pool.Query(ctx, q, args...)
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

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	engine.IncrStoreOperations()
	tag, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
