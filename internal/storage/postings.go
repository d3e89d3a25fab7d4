package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

// PostingRepository defines the contract for job-posting persistence.
type PostingRepository interface {
	Insert(ctx context.Context, p *models.JobPosting) error
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
	List(ctx context.Context, status string) ([]models.JobPosting, error)
	Update(ctx context.Context, p *models.JobPosting) error
	Delete(ctx context.Context, id string) error
	ListExpiring(ctx context.Context) ([]models.JobPosting, error)
	MarkExpired(ctx context.Context, id string) error
}

type postingRepository struct {
	db *sql.DB
}

func NewPostingRepository(db *sql.DB) PostingRepository {
	return &postingRepository{db: db}
}

const postingColumns = `id, title, department, description, requirements, status, expires_at, created_at, updated_at`

func scanPosting(row interface{ Scan(...interface{}) error }) (*models.JobPosting, error) {
	var p models.JobPosting
	var expires sql.NullTime
	if err := row.Scan(&p.ID, &p.Title, &p.Department, &p.Description,
		pq.Array(&p.Requirements), &p.Status, &expires, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if expires.Valid {
		p.ExpiresAt = &expires.Time
	}
	return &p, nil
}

func toNullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

// Insert persists a new posting. ID, CreatedAt and UpdatedAt must already be
// populated by the caller.
func (r *postingRepository) Insert(ctx context.Context, p *models.JobPosting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO postings (id, title, department, description, requirements, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Title, p.Department, p.Description, pq.Array(p.Requirements),
		p.Status, toNullTime(p.ExpiresAt), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert posting: %w", err)
	}
	return nil
}

// GetByID returns a posting or (nil, nil) when the id is unknown.
func (r *postingRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}
	return p, nil
}

// List returns postings newest first, optionally filtered by lifecycle status.
func (r *postingRepository) List(ctx context.Context, status string) ([]models.JobPosting, error) {
	query := `SELECT ` + postingColumns + ` FROM postings`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update rewrites the mutable posting fields and bumps updated_at.
func (r *postingRepository) Update(ctx context.Context, p *models.JobPosting) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE postings
		SET title = $1, department = $2, description = $3, requirements = $4,
		    status = $5, expires_at = $6, updated_at = NOW()
		WHERE id = $7`,
		p.Title, p.Department, p.Description, pq.Array(p.Requirements),
		p.Status, toNullTime(p.ExpiresAt), p.ID)
	if err != nil {
		return fmt.Errorf("update posting: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a posting. Only drafts are expected to be deleted; the
// service layer enforces that rule.
func (r *postingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete posting: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListExpiring returns open postings that carry a deadline, for the expiry
// sweep to evaluate.
func (r *postingRepository) ListExpiring(ctx context.Context) ([]models.JobPosting, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postingColumns+` FROM postings
		 WHERE status = $1 AND expires_at IS NOT NULL
		 ORDER BY expires_at ASC`, models.PostingAberta)
	if err != nil {
		return nil, fmt.Errorf("list expiring: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// MarkExpired flips an open posting to Vencida.
func (r *postingRepository) MarkExpired(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE postings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.PostingVencida, id, models.PostingAberta)
	if err != nil {
		return fmt.Errorf("mark expired: %w", err)
	}
	return nil
}
