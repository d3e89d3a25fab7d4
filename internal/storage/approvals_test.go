package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

func approvalRows(status string, decidedBy interface{}, decidedAt interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "posting_id", "kind", "requested_by", "required_role",
		"status", "comment", "decided_by", "decided_at", "created_at",
	}).AddRow("a1", "p1", models.ApprovalAbertura, "ana@example.com", models.RoleGestor,
		status, "", decidedBy, decidedAt, time.Now())
}

func TestApprovalRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	a := models.ApprovalRequest{
		ID:           "a1",
		PostingID:    "p1",
		Kind:         models.ApprovalAbertura,
		RequestedBy:  "ana@example.com",
		RequiredRole: models.RoleGestor,
		Status:       models.ApprovalPendente,
		CreatedAt:    time.Now().UTC(),
	}
	mock.ExpectExec(`INSERT INTO approval_requests`).
		WithArgs(a.ID, a.PostingID, a.Kind, a.RequestedBy, a.RequiredRole, a.Status, a.Comment, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewApprovalRepository(db)
	if err := repo.Insert(context.Background(), &a); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestApprovalRepository_ListPendingScopedToRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM approval_requests WHERE status = \$1 AND required_role = \$2`).
		WithArgs(models.ApprovalPendente, models.RoleGestor).
		WillReturnRows(approvalRows(models.ApprovalPendente, nil, nil))

	repo := NewApprovalRepository(db)
	got, err := repo.ListPending(context.Background(), models.RoleGestor)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected out=%v err=%v", got, err)
	}
	if got[0].DecidedBy != "" || got[0].DecidedAt != nil {
		t.Fatalf("pending request must not carry a decision: %+v", got[0])
	}
}

func TestApprovalRepository_Decide(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE approval_requests`).
		WithArgs(models.ApprovalAprovada, "carlos@example.com", sqlmock.AnyArg(), "ok", "a1", models.ApprovalPendente).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM approval_requests WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(approvalRows(models.ApprovalAprovada, "carlos@example.com", time.Now()))

	repo := NewApprovalRepository(db)
	got, err := repo.Decide(context.Background(), "a1", models.ApprovalAprovada, "carlos@example.com", "ok")
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if got.Status != models.ApprovalAprovada || got.DecidedBy != "carlos@example.com" {
		t.Fatalf("unexpected decided request %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestApprovalRepository_DecideTwice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	// The guarded UPDATE touches nothing; the follow-up read finds the row
	// already decided.
	mock.ExpectExec(`UPDATE approval_requests`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM approval_requests WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(approvalRows(models.ApprovalAprovada, "carlos@example.com", time.Now()))

	repo := NewApprovalRepository(db)
	_, err = repo.Decide(context.Background(), "a1", models.ApprovalRejeitada, "x@example.com", "")
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("want ErrAlreadyDecided got %v", err)
	}
}

func TestApprovalRepository_DecideMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE approval_requests`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM approval_requests WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewApprovalRepository(db)
	_, err = repo.Decide(context.Background(), "missing", models.ApprovalAprovada, "x@example.com", "")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows got %v", err)
	}
}
