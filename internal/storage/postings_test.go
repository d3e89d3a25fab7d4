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

func newPostingRows(t *testing.T, p models.JobPosting) *sqlmock.Rows {
	t.Helper()
	var expires interface{}
	if p.ExpiresAt != nil {
		expires = *p.ExpiresAt
	}
	return sqlmock.NewRows([]string{
		"id", "title", "department", "description", "requirements",
		"status", "expires_at", "created_at", "updated_at",
	}).AddRow(p.ID, p.Title, p.Department, p.Description, "{Go,SQL}",
		p.Status, expires, p.CreatedAt, p.UpdatedAt)
}

func TestPostingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	expires := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	want := models.JobPosting{
		ID:        "p1",
		Title:     "Engenheiro de Dados",
		Status:    models.PostingAberta,
		ExpiresAt: &expires,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	mock.ExpectQuery(`SELECT (.+) FROM postings WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(newPostingRows(t, want))

	repo := NewPostingRepository(db)
	got, err := repo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if got == nil || got.ID != "p1" || got.Title != want.Title {
		t.Fatalf("unexpected posting %+v", got)
	}
	if got.ExpiresAt == nil || !got.ExpiresAt.Equal(expires) {
		t.Fatalf("expires_at not scanned: %+v", got.ExpiresAt)
	}
	if len(got.Requirements) != 2 || got.Requirements[0] != "Go" {
		t.Fatalf("requirements not scanned: %+v", got.Requirements)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostingRepository_GetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT (.+) FROM postings WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewPostingRepository(db)
	got, err := repo.GetByID(context.Background(), "missing")
	if got != nil || err != nil {
		t.Fatalf("want nil,nil got %v,%v", got, err)
	}
}

func TestPostingRepository_ListFiltersByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	p := models.JobPosting{ID: "p1", Status: models.PostingAberta, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	mock.ExpectQuery(`SELECT (.+) FROM postings WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs(models.PostingAberta).
		WillReturnRows(newPostingRows(t, p))

	repo := NewPostingRepository(db)
	got, err := repo.List(context.Background(), models.PostingAberta)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected out=%v err=%v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostingRepository_UpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE postings`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostingRepository(db)
	err = repo.Update(context.Background(), &models.JobPosting{ID: "missing"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows got %v", err)
	}
}

func TestPostingRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM postings WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostingRepository(db)
	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostingRepository_MarkExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE postings SET status = \$1`).
		WithArgs(models.PostingVencida, "p1", models.PostingAberta).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostingRepository(db)
	if err := repo.MarkExpired(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
