package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/domain/models"
	"github.com/gmfurtado/rhpulse/internal/logger"
	"github.com/gmfurtado/rhpulse/internal/notify"
	"github.com/gmfurtado/rhpulse/internal/storage"
	"github.com/gmfurtado/rhpulse/internal/timeline"
)

// ErrInvalidStage is returned when a status change names a stage outside the
// recruitment pipeline enumeration.
var ErrInvalidStage = errors.New("invalid pipeline stage")

// CandidateService exposes candidate pipeline operations to the API layer.
type CandidateService interface {
	// List returns candidates (optionally per posting) with their
	// days-in-process counter.
	List(ctx context.Context, postingID string) ([]dto.CandidateListItem, error)

	// Timeline reconstructs the per-stage timeline for one candidate.
	// Returns (nil, nil) when the candidate does not exist.
	Timeline(ctx context.Context, id string) (*dto.TimelineResponse, error)

	// ChangeStatus advances a candidate to a new stage, records the history
	// entry, and notifies the HR inbox. Returns ErrInvalidStage for unknown
	// stages and sql.ErrNoRows for unknown candidates.
	ChangeStatus(ctx context.Context, id, newStatus, note string) error
}

type candidateService struct {
	repo    storage.CandidateRepository
	mailer  notify.Mailer
	hrInbox string
}

func NewCandidateService(repo storage.CandidateRepository, mailer notify.Mailer, hrInbox string) CandidateService {
	return &candidateService{repo: repo, mailer: mailer, hrInbox: hrInbox}
}

func (s *candidateService) List(ctx context.Context, postingID string) ([]dto.CandidateListItem, error) {
	candidates, err := s.repo.List(ctx, postingID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CandidateListItem, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, dto.CandidateListItem{
			Candidate:     c,
			DaysInProcess: timeline.TotalProcessDays(c),
		})
	}
	return out, nil
}

func (s *candidateService) Timeline(ctx context.Context, id string) (*dto.TimelineResponse, error) {
	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, nil
	}

	history, err := s.repo.HistoryByCandidate(ctx, id)
	if err != nil {
		return nil, err
	}

	stages := timeline.StageTimes(*candidate, history)

	return &dto.TimelineResponse{
		CandidateID:      candidate.ID,
		Status:           candidate.Status,
		Stages:           stages,
		Summary:          timeline.FormatStageSummary(stages),
		TotalProcessDays: timeline.TotalProcessDays(*candidate),
	}, nil
}

func (s *candidateService) ChangeStatus(ctx context.Context, id, newStatus, note string) error {
	if !models.IsValidStage(newStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidStage, newStatus)
	}

	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return sql.ErrNoRows
	}

	if err := s.repo.ChangeStatus(ctx, id, newStatus, note); err != nil {
		return err
	}

	// Best-effort notification; a mail failure never fails the transition.
	subject, body := notify.StatusChanged(*candidate, newStatus)
	if err := s.mailer.Send(s.hrInbox, subject, body); err != nil {
		logger.L().Warn().Err(err).Str("candidate_id", id).Msg("status change notification failed")
	}

	return nil
}
