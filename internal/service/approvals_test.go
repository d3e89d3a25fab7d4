package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/domain/models"
	"github.com/gmfurtado/rhpulse/internal/storage"
)

type stubApprovalRepo struct {
	approval *models.ApprovalRequest
	pending  []models.ApprovalRequest
	err      error

	inserted  *models.ApprovalRequest
	decidedTo string
}

func (s *stubApprovalRepo) Insert(_ context.Context, a *models.ApprovalRequest) error {
	s.inserted = a
	return s.err
}
func (s *stubApprovalRepo) GetByID(_ context.Context, _ string) (*models.ApprovalRequest, error) {
	return s.approval, s.err
}
func (s *stubApprovalRepo) ListPending(_ context.Context, _ string) ([]models.ApprovalRequest, error) {
	return s.pending, s.err
}
func (s *stubApprovalRepo) Decide(_ context.Context, _, status, decidedBy, comment string) (*models.ApprovalRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.decidedTo = status
	out := *s.approval
	out.Status = status
	out.DecidedBy = decidedBy
	out.Comment = comment
	now := time.Now().UTC()
	out.DecidedAt = &now
	return &out, nil
}

func TestApprovalService_RequestRouting(t *testing.T) {
	cases := []struct {
		kind     string
		wantRole string
		wantErr  error
	}{
		{kind: models.ApprovalAbertura, wantRole: models.RoleGestor},
		{kind: models.ApprovalEncerramento, wantRole: models.RoleRH},
		{kind: models.ApprovalProposta, wantRole: models.RoleDiretoria},
		{kind: "promoção", wantErr: ErrUnknownKind},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			approvals := &stubApprovalRepo{}
			postings := &stubPostingRepo{posting: &models.JobPosting{ID: "p1"}}
			svc := NewApprovalService(approvals, postings, &stubMailer{})

			got, err := svc.Request(context.Background(), dto.ApprovalCreateRequest{
				PostingID:   "p1",
				Kind:        tc.kind,
				RequestedBy: "ana@example.com",
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err %v", err)
			}
			if got.RequiredRole != tc.wantRole {
				t.Fatalf("kind %q routed to %q, want %q", tc.kind, got.RequiredRole, tc.wantRole)
			}
			if got.Status != models.ApprovalPendente || got.ID == "" {
				t.Fatalf("unexpected request %+v", got)
			}
		})
	}
}

func TestApprovalService_RequestUnknownPosting(t *testing.T) {
	svc := NewApprovalService(&stubApprovalRepo{}, &stubPostingRepo{}, &stubMailer{})
	_, err := svc.Request(context.Background(), dto.ApprovalCreateRequest{
		PostingID: "missing",
		Kind:      models.ApprovalAbertura,
	})
	if !errors.Is(err, ErrPostingNotFound) {
		t.Fatalf("want ErrPostingNotFound got %v", err)
	}
}

func TestApprovalService_DecideApproveOpensPosting(t *testing.T) {
	approvals := &stubApprovalRepo{approval: &models.ApprovalRequest{
		ID:           "a1",
		PostingID:    "p1",
		Kind:         models.ApprovalAbertura,
		RequestedBy:  "ana@example.com",
		RequiredRole: models.RoleGestor,
		Status:       models.ApprovalPendente,
	}}
	postings := &stubPostingRepo{posting: &models.JobPosting{ID: "p1", Status: models.PostingRascunho}}
	mailer := &stubMailer{}
	svc := NewApprovalService(approvals, postings, mailer)

	got, err := svc.Decide(context.Background(), "a1", models.RoleGestor, dto.ApprovalDecisionRequest{
		Approve:   true,
		DecidedBy: "carlos@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if got.Status != models.ApprovalAprovada {
		t.Fatalf("want aprovada, got %q", got.Status)
	}
	if postings.updated == nil || postings.updated.Status != models.PostingAberta {
		t.Fatalf("approved abertura must open the posting: %+v", postings.updated)
	}
	if len(mailer.to) != 1 || mailer.to[0] != "ana@example.com" {
		t.Fatalf("requester not notified: %+v", mailer.to)
	}
}

func TestApprovalService_DecideRejectLeavesPosting(t *testing.T) {
	approvals := &stubApprovalRepo{approval: &models.ApprovalRequest{
		ID:           "a1",
		PostingID:    "p1",
		Kind:         models.ApprovalEncerramento,
		RequestedBy:  "ana@example.com",
		RequiredRole: models.RoleRH,
		Status:       models.ApprovalPendente,
	}}
	postings := &stubPostingRepo{posting: &models.JobPosting{ID: "p1", Status: models.PostingAberta}}
	svc := NewApprovalService(approvals, postings, &stubMailer{})

	got, err := svc.Decide(context.Background(), "a1", models.RoleRH, dto.ApprovalDecisionRequest{Approve: false, DecidedBy: "rh@example.com"})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if got.Status != models.ApprovalRejeitada {
		t.Fatalf("want rejeitada, got %q", got.Status)
	}
	if postings.updated != nil {
		t.Fatalf("rejected request must not touch the posting: %+v", postings.updated)
	}
}

func TestApprovalService_DecideWrongRole(t *testing.T) {
	approvals := &stubApprovalRepo{approval: &models.ApprovalRequest{
		ID:           "a1",
		RequiredRole: models.RoleDiretoria,
		Status:       models.ApprovalPendente,
	}}
	svc := NewApprovalService(approvals, &stubPostingRepo{}, &stubMailer{})

	_, err := svc.Decide(context.Background(), "a1", models.RoleGestor, dto.ApprovalDecisionRequest{Approve: true})
	if !errors.Is(err, ErrWrongRole) {
		t.Fatalf("want ErrWrongRole got %v", err)
	}
	if approvals.decidedTo != "" {
		t.Fatal("decision must not be written under the wrong role")
	}
}

func TestApprovalService_DecideNotFound(t *testing.T) {
	svc := NewApprovalService(&stubApprovalRepo{}, &stubPostingRepo{}, &stubMailer{})
	_, err := svc.Decide(context.Background(), "missing", models.RoleGestor, dto.ApprovalDecisionRequest{})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows got %v", err)
	}
}

func TestApprovalService_DecideAlreadyDecided(t *testing.T) {
	approvals := &stubApprovalRepo{
		approval: &models.ApprovalRequest{ID: "a1", RequiredRole: models.RoleGestor, Status: models.ApprovalAprovada},
	}
	// GetByID still finds the request; the repository refuses the rewrite.
	svc := NewApprovalService(&alreadyDecidedRepo{stubApprovalRepo: approvals, decideErr: storage.ErrAlreadyDecided}, &stubPostingRepo{}, &stubMailer{})

	_, err := svc.Decide(context.Background(), "a1", models.RoleGestor, dto.ApprovalDecisionRequest{Approve: true})
	if !errors.Is(err, storage.ErrAlreadyDecided) {
		t.Fatalf("want ErrAlreadyDecided got %v", err)
	}
}

type alreadyDecidedRepo struct {
	*stubApprovalRepo
	decideErr error
}

func (s *alreadyDecidedRepo) Decide(_ context.Context, _, _, _, _ string) (*models.ApprovalRequest, error) {
	return nil, s.decideErr
}

func TestApprovalService_PropostaHasNoPostingEffect(t *testing.T) {
	approvals := &stubApprovalRepo{approval: &models.ApprovalRequest{
		ID:           "a1",
		PostingID:    "p1",
		Kind:         models.ApprovalProposta,
		RequestedBy:  "ana@example.com",
		RequiredRole: models.RoleDiretoria,
		Status:       models.ApprovalPendente,
	}}
	postings := &stubPostingRepo{posting: &models.JobPosting{ID: "p1", Status: models.PostingAberta}}
	svc := NewApprovalService(approvals, postings, &stubMailer{})

	got, err := svc.Decide(context.Background(), "a1", models.RoleDiretoria, dto.ApprovalDecisionRequest{Approve: true, DecidedBy: "dir@example.com"})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if got.Status != models.ApprovalAprovada {
		t.Fatalf("want aprovada, got %q", got.Status)
	}
	if postings.updated != nil {
		t.Fatalf("proposta approval must not touch the posting: %+v", postings.updated)
	}
}
