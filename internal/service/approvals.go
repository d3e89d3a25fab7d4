package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/domain/models"
	"github.com/gmfurtado/rhpulse/internal/logger"
	"github.com/gmfurtado/rhpulse/internal/notify"
	"github.com/gmfurtado/rhpulse/internal/storage"
)

var (
	// ErrUnknownKind is returned for approval kinds outside the routing table.
	ErrUnknownKind = errors.New("unknown approval kind")

	// ErrWrongRole is returned when the deciding user's role does not match
	// the role the request was routed to.
	ErrWrongRole = errors.New("decision requires a different role")

	// ErrPostingNotFound is returned when an approval references a posting
	// that does not exist.
	ErrPostingNotFound = errors.New("posting not found")
)

// ApprovalService runs the multi-role approval workflow: requests are routed
// to a role by kind, decided once, and approved decisions act on the posting.
type ApprovalService interface {
	Request(ctx context.Context, req dto.ApprovalCreateRequest) (*models.ApprovalRequest, error)
	ListPending(ctx context.Context, role string) ([]models.ApprovalRequest, error)

	// Decide records the decision made by a user acting under role. Returns
	// ErrWrongRole when the role does not match the request's routing,
	// storage.ErrAlreadyDecided for repeat decisions, and sql.ErrNoRows for
	// unknown requests.
	Decide(ctx context.Context, id, role string, req dto.ApprovalDecisionRequest) (*models.ApprovalRequest, error)
}

type approvalService struct {
	approvals storage.ApprovalRepository
	postings  storage.PostingRepository
	mailer    notify.Mailer
}

func NewApprovalService(approvals storage.ApprovalRepository, postings storage.PostingRepository, mailer notify.Mailer) ApprovalService {
	return &approvalService{approvals: approvals, postings: postings, mailer: mailer}
}

func (s *approvalService) Request(ctx context.Context, req dto.ApprovalCreateRequest) (*models.ApprovalRequest, error) {
	role, ok := models.ApprovalRouting[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	posting, err := s.postings.GetByID(ctx, req.PostingID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}

	a := models.ApprovalRequest{
		ID:           uuid.NewString(),
		PostingID:    req.PostingID,
		Kind:         req.Kind,
		RequestedBy:  req.RequestedBy,
		RequiredRole: role,
		Status:       models.ApprovalPendente,
		Comment:      req.Comment,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.approvals.Insert(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *approvalService) ListPending(ctx context.Context, role string) ([]models.ApprovalRequest, error) {
	return s.approvals.ListPending(ctx, role)
}

func (s *approvalService) Decide(ctx context.Context, id, role string, req dto.ApprovalDecisionRequest) (*models.ApprovalRequest, error) {
	pending, err := s.approvals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, sql.ErrNoRows
	}
	if pending.RequiredRole != role {
		return nil, fmt.Errorf("%w: need %q", ErrWrongRole, pending.RequiredRole)
	}

	status := models.ApprovalRejeitada
	if req.Approve {
		status = models.ApprovalAprovada
	}

	decided, err := s.approvals.Decide(ctx, id, status, req.DecidedBy, req.Comment)
	if err != nil {
		return nil, err
	}

	if req.Approve {
		if err := s.applyDecision(ctx, decided); err != nil {
			// The decision stands; the posting transition is retried by
			// requesting again. Surface the failure to the caller anyway.
			return decided, err
		}
	}

	subject, body := notify.ApprovalDecided(*decided)
	if err := s.mailer.Send(decided.RequestedBy, subject, body); err != nil {
		logger.L().Warn().Err(err).Str("approval_id", id).Msg("approval notification failed")
	}

	return decided, nil
}

// applyDecision performs the posting transition an approved request calls
// for: "abertura" opens the draft, "encerramento" closes the posting.
// "proposta" acts on the candidate side and has no posting effect.
func (s *approvalService) applyDecision(ctx context.Context, a *models.ApprovalRequest) error {
	var target string
	switch a.Kind {
	case models.ApprovalAbertura:
		target = models.PostingAberta
	case models.ApprovalEncerramento:
		target = models.PostingEncerrada
	default:
		return nil
	}

	p, err := s.postings.GetByID(ctx, a.PostingID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostingNotFound
	}

	p.Status = target
	p.UpdatedAt = time.Now().UTC()
	return s.postings.Update(ctx, p)
}
