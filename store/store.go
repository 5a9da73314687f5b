package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/plmtools/plm-translator/models"
)

var (
	ErrNotFound = errors.New("test result not found")
	ErrBadPage  = errors.New("page and per_page must be at least 1")
)

var resultColumns = []string{
	"id", "outcome", "accuracy", "observation", "tested_by",
	"text_to_translate", "translated_text", "source_language",
	"target_language", "session_id", "created_at",
}

// Store persists TestResult records. It is the sole writer and the
// authority on id and created_at.
type Store struct {
	db      *sql.DB
	sq      sq.StatementBuilderType
	dialect string
}

// New wraps db with a dialect-aware query builder. dialect is "sqlite"
// or "postgres".
func New(db *sql.DB, dialect string) *Store {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == "postgres" {
		builder = builder.PlaceholderFormat(sq.Dollar)
	}
	return &Store{db: db, sq: builder, dialect: dialect}
}

// Save inserts rec as one transaction and fills in ID, SessionID and
// CreatedAt. A missing session id gets a freshly generated UUID.
func (s *Store) Save(ctx context.Context, rec *models.TestResult) error {
	if rec.SessionID == nil || *rec.SessionID == "" {
		sessionID := uuid.NewString()
		rec.SessionID = &sessionID
	}
	// Second precision keeps the stored RFC3339 strings fixed-width so
	// their lexicographic order is chronological; id breaks ties.
	rec.CreatedAt = time.Now().UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := s.sq.Insert("test_results").
		Columns(resultColumns[1:]...).
		Values(
			rec.Outcome, rec.Accuracy, rec.Observation, rec.TestedBy,
			rec.TextToTranslate, rec.TranslatedText, rec.SourceLanguage,
			rec.TargetLanguage, rec.SessionID,
			rec.CreatedAt.Format(time.RFC3339),
		)

	if s.dialect == "postgres" {
		sqlStr, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if err := tx.QueryRowContext(ctx, sqlStr, args...).Scan(&rec.ID); err != nil {
			return fmt.Errorf("failed to insert test result: %w", err)
		}
	} else {
		sqlStr, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		res, err := tx.ExecContext(ctx, sqlStr, args...)
		if err != nil {
			return fmt.Errorf("failed to insert test result: %w", err)
		}
		rec.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit test result: %w", err)
	}
	return nil
}

// List returns one page of results, most recent first, optionally
// filtered by exact outcome match.
func (s *Store) List(ctx context.Context, page, perPage int, outcome string) ([]models.TestResult, models.Pagination, error) {
	if page < 1 || perPage < 1 {
		return nil, models.Pagination{}, ErrBadPage
	}

	count := s.sq.Select("COUNT(*)").From("test_results")
	sel := s.sq.Select(resultColumns...).From("test_results")
	if outcome != "" {
		count = count.Where(sq.Eq{"outcome": outcome})
		sel = sel.Where(sq.Eq{"outcome": outcome})
	}

	sqlStr, args, err := count.ToSql()
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to build count: %w", err)
	}
	var total int64
	if err := s.db.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to count test results: %w", err)
	}

	sel = sel.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(perPage)).
		Offset(uint64(page-1) * uint64(perPage))
	sqlStr, args, err = sel.ToSql()
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to query test results: %w", err)
	}
	defer rows.Close()

	items, err := scanResults(rows)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	pagination := models.Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
	return items, pagination, nil
}

// Delete removes exactly one record. ErrNotFound is distinct from a
// storage failure.
func (s *Store) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := s.sq.Delete("test_results").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to delete test result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// All returns every record, most recent first. Feeds the export.
func (s *Store) All(ctx context.Context) ([]models.TestResult, error) {
	sqlStr, args, err := s.sq.Select(resultColumns...).
		From("test_results").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query test results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]models.TestResult, error) {
	items := []models.TestResult{}
	for rows.Next() {
		var rec models.TestResult
		var createdAt string
		if err := rows.Scan(
			&rec.ID, &rec.Outcome, &rec.Accuracy, &rec.Observation,
			&rec.TestedBy, &rec.TextToTranslate, &rec.TranslatedText,
			&rec.SourceLanguage, &rec.TargetLanguage, &rec.SessionID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test result: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
		}
		rec.CreatedAt = ts
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test results: %w", err)
	}
	return items, nil
}
