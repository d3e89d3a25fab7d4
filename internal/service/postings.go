package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/domain/models"
	"github.com/gmfurtado/rhpulse/internal/storage"
	"github.com/gmfurtado/rhpulse/internal/workdays"
)

// ErrPostingActive is returned when a delete targets a posting that is still
// open for applications.
var ErrPostingActive = errors.New("posting is still open")

// PostingService exposes job-posting operations to the API layer. Reads are
// enriched with the business-day distance to the posting's deadline.
type PostingService interface {
	Create(ctx context.Context, req dto.PostingRequest) (*dto.PostingResponse, error)
	Get(ctx context.Context, id string) (*dto.PostingResponse, error)
	List(ctx context.Context, status string) ([]dto.PostingResponse, error)
	Update(ctx context.Context, id string, req dto.PostingRequest) (*dto.PostingResponse, error)
	Delete(ctx context.Context, id string) error
}

type postingService struct {
	repo storage.PostingRepository
	cal  workdays.Calendar
}

func NewPostingService(repo storage.PostingRepository) PostingService {
	return &postingService{repo: repo, cal: workdays.BR()}
}

// withOutlook attaches the signed business-day count and display label to a
// posting. Postings without a deadline get neither.
func (s *postingService) withOutlook(p models.JobPosting) dto.PostingResponse {
	resp := dto.PostingResponse{JobPosting: p}
	if diff := s.cal.BusinessDaysUntil(p.ExpiresAt, time.Now()); diff != nil {
		resp.BusinessDaysLeft = diff
		resp.ExpiryLabel = workdays.FormatBusinessDaysLabel(*diff)
	}
	return resp
}

// Create registers a new posting as a draft. Drafts go live through the
// approval workflow: an approved "abertura" request opens them.
func (s *postingService) Create(ctx context.Context, req dto.PostingRequest) (*dto.PostingResponse, error) {
	now := time.Now().UTC()
	p := models.JobPosting{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       models.PostingRascunho,
		ExpiresAt:    workdays.ParseDate(req.ExpiresAt),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, &p); err != nil {
		return nil, err
	}

	resp := s.withOutlook(p)
	return &resp, nil
}

// Get returns a posting with its expiry outlook, or (nil, nil) when unknown.
func (s *postingService) Get(ctx context.Context, id string) (*dto.PostingResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := s.withOutlook(*p)
	return &resp, nil
}

func (s *postingService) List(ctx context.Context, status string) ([]dto.PostingResponse, error) {
	postings, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PostingResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, s.withOutlook(p))
	}
	return out, nil
}

// Update rewrites posting content; lifecycle status is not touched here, it
// only moves through the approval workflow and the expiry sweep.
func (s *postingService) Update(ctx context.Context, id string, req dto.PostingRequest) (*dto.PostingResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	p.Title = req.Title
	p.Department = req.Department
	p.Description = req.Description
	p.Requirements = req.Requirements
	p.ExpiresAt = workdays.ParseDate(req.ExpiresAt)
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	resp := s.withOutlook(*p)
	return &resp, nil
}

// Delete removes a posting unless it is still open for applications.
func (s *postingService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if p.Status == models.PostingAberta {
		return ErrPostingActive
	}
	return s.repo.Delete(ctx, id)
}
