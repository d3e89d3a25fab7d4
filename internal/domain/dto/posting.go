package dto

import (
	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

// PostingRequest is the payload for creating or updating a job posting.
// ExpiresAt uses YYYY-MM-DD; an empty value means no deadline.
type PostingRequest struct {
	Title        string   `json:"title" binding:"required" example:"Analista de Dados Pleno"`
	Department   string   `json:"department" binding:"required" example:"Tecnologia"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements" swaggertype:"array,string"`
	ExpiresAt    string   `json:"expires_at,omitempty" example:"2026-03-31"`
}

// PostingResponse is a job posting as served to the dashboard, enriched with
// the signed business-day distance to its deadline and the display label.
// BusinessDaysLeft is null when the posting has no deadline.
type PostingResponse struct {
	models.JobPosting
	BusinessDaysLeft *int   `json:"business_days_left,omitempty" example:"4"`
	ExpiryLabel      string `json:"expiry_label,omitempty" example:"4 dias úteis restantes"`
}

// TimelineResponse is the computed stage timeline for one candidate.
type TimelineResponse struct {
	CandidateID      string                 `json:"candidate_id"`
	Status           string                 `json:"status" example:"Aprovado"`
	Stages           []models.StageTimeInfo `json:"stages"`
	Summary          string                 `json:"summary" example:"Total: 12 dias | Cadastrado: 4d | Aprovado: 8d"`
	TotalProcessDays int                    `json:"total_process_days" example:"12"`
}

// CandidateListItem is a row of the candidates listing with the days-in-process
// counter used by the dashboard.
type CandidateListItem struct {
	models.Candidate
	DaysInProcess int `json:"days_in_process" example:"10"`
}

// StatusChangeRequest moves a candidate to a new pipeline stage. Note is an
// optional free-text complement appended to the generated history entry.
type StatusChangeRequest struct {
	Status string `json:"status" binding:"required" example:"Entrevista com RH"`
	Note   string `json:"note,omitempty"`
}

// ApprovalCreateRequest opens an approval workflow item for a posting.
type ApprovalCreateRequest struct {
	PostingID   string `json:"posting_id" binding:"required"`
	Kind        string `json:"kind" binding:"required" example:"abertura"`
	RequestedBy string `json:"requested_by" binding:"required" example:"ana.lima@example.com"`
	Comment     string `json:"comment,omitempty"`
}

// ApprovalDecisionRequest records the decision on a pending approval.
type ApprovalDecisionRequest struct {
	Approve   bool   `json:"approve"`
	DecidedBy string `json:"decided_by" binding:"required" example:"carlos.gestor@example.com"`
	Comment   string `json:"comment,omitempty"`
}

// ApprovalResponse mirrors models.ApprovalRequest on the wire.
type ApprovalResponse struct {
	models.ApprovalRequest
}
