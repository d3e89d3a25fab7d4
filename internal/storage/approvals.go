package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

// ErrAlreadyDecided is returned when a decision targets an approval request
// that is no longer pending.
var ErrAlreadyDecided = errors.New("approval request already decided")

// ApprovalRepository defines the contract for approval-workflow persistence.
type ApprovalRepository interface {
	Insert(ctx context.Context, a *models.ApprovalRequest) error
	GetByID(ctx context.Context, id string) (*models.ApprovalRequest, error)
	ListPending(ctx context.Context, role string) ([]models.ApprovalRequest, error)
	Decide(ctx context.Context, id, newStatus, decidedBy, comment string) (*models.ApprovalRequest, error)
}

type approvalRepository struct {
	db *sql.DB
}

func NewApprovalRepository(db *sql.DB) ApprovalRepository {
	return &approvalRepository{db: db}
}

const approvalColumns = `id, posting_id, kind, requested_by, required_role, status, comment, decided_by, decided_at, created_at`

func scanApproval(row interface{ Scan(...interface{}) error }) (*models.ApprovalRequest, error) {
	var a models.ApprovalRequest
	var decidedBy sql.NullString
	var decidedAt sql.NullTime
	if err := row.Scan(&a.ID, &a.PostingID, &a.Kind, &a.RequestedBy, &a.RequiredRole,
		&a.Status, &a.Comment, &decidedBy, &decidedAt, &a.CreatedAt); err != nil {
		return nil, err
	}
	if decidedBy.Valid {
		a.DecidedBy = decidedBy.String
	}
	if decidedAt.Valid {
		a.DecidedAt = &decidedAt.Time
	}
	return &a, nil
}

func (r *approvalRepository) Insert(ctx context.Context, a *models.ApprovalRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO approval_requests (id, posting_id, kind, requested_by, required_role, status, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.PostingID, a.Kind, a.RequestedBy, a.RequiredRole, a.Status, a.Comment, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert approval: %w", err)
	}
	return nil
}

// GetByID returns an approval request or (nil, nil) when the id is unknown.
func (r *approvalRepository) GetByID(ctx context.Context, id string) (*models.ApprovalRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+approvalColumns+` FROM approval_requests WHERE id = $1`, id)
	a, err := scanApproval(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get approval: %w", err)
	}
	return a, nil
}

// ListPending returns pending requests oldest first, optionally restricted to
// a required role so each inbox only sees its own queue.
func (r *approvalRepository) ListPending(ctx context.Context, role string) ([]models.ApprovalRequest, error) {
	query := `SELECT ` + approvalColumns + ` FROM approval_requests WHERE status = $1`
	args := []interface{}{models.ApprovalPendente}
	if role != "" {
		query += ` AND required_role = $2`
		args = append(args, role)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending approvals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.ApprovalRequest
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approval: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// Decide stamps a decision onto a pending request. The WHERE clause on the
// pending status makes concurrent double-decisions lose cleanly: the second
// writer affects zero rows and gets ErrAlreadyDecided.
func (r *approvalRepository) Decide(ctx context.Context, id, newStatus, decidedBy, comment string) (*models.ApprovalRequest, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE approval_requests
		SET status = $1, decided_by = $2, decided_at = $3, comment = $4
		WHERE id = $5 AND status = $6`,
		newStatus, decidedBy, now, comment, id, models.ApprovalPendente)
	if err != nil {
		return nil, fmt.Errorf("decide approval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, sql.ErrNoRows
		}
		return nil, ErrAlreadyDecided
	}
	return r.GetByID(ctx, id)
}
