package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

// CandidateRepository defines the contract for candidate persistence.
type CandidateRepository interface {
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	List(ctx context.Context, postingID string) ([]models.Candidate, error)
	HistoryByCandidate(ctx context.Context, candidateID string) ([]models.HistoryItem, error)
	ChangeStatus(ctx context.Context, candidateID, newStatus, note string) error
}

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, posting_id, name, email, status, status_entered_at, created_at`

func scanCandidate(row interface{ Scan(...interface{}) error }) (*models.Candidate, error) {
	var c models.Candidate
	var enteredAt sql.NullTime
	if err := row.Scan(&c.ID, &c.PostingID, &c.Name, &c.Email, &c.Status, &enteredAt, &c.CreatedAt); err != nil {
		return nil, err
	}
	if enteredAt.Valid {
		c.StatusEnteredAt = &enteredAt.Time
	}
	return &c, nil
}

// GetByID returns a candidate or (nil, nil) when the id is unknown.
func (r *candidateRepository) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// List returns candidates ordered by registration date, optionally filtered
// by posting.
func (r *candidateRepository) List(ctx context.Context, postingID string) ([]models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var args []interface{}
	if postingID != "" {
		query += ` WHERE posting_id = $1`
		args = append(args, postingID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// HistoryByCandidate returns every activity-log entry for a candidate in
// ascending chronological order.
func (r *candidateRepository) HistoryByCandidate(ctx context.Context, candidateID string) ([]models.HistoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, candidate_id, activity_type, content, created_at
		FROM candidate_history
		WHERE candidate_id = $1
		ORDER BY created_at ASC`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.HistoryItem
	for rows.Next() {
		var h models.HistoryItem
		if err := rows.Scan(&h.ID, &h.CandidateID, &h.ActivityType, &h.Content, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// ChangeStatus atomically advances a candidate's status and appends the
// matching "Mudança de Status" history entry. The generated note always
// embeds the new stage in the canonical quoted form so the timeline
// reconstructor can parse our own writes.
func (r *candidateRepository) ChangeStatus(ctx context.Context, candidateID, newStatus, note string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin change status: %w", err)
	}

	now := time.Now().UTC()

	res, err := tx.ExecContext(ctx,
		`UPDATE candidates SET status = $1, status_entered_at = $2 WHERE id = $3`,
		newStatus, now, candidateID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}

	content := fmt.Sprintf("Status alterado para '%s'", newStatus)
	if note != "" {
		content += ". " + note
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO candidate_history (id, candidate_id, activity_type, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), candidateID, models.ActivityStatusChange, content, now); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert history: %w", err)
	}

	return tx.Commit()
}
