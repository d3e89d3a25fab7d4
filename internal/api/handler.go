package api

import (
	"github.com/gmfurtado/rhpulse/internal/service"
)

// Handler provides the HTTP handlers for the back-office API.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and payloads
//   - Delegate to the service layer
//   - Translate service results and sentinel errors into JSON responses
//     with appropriate HTTP status codes
type Handler struct {
	postings   service.PostingService
	candidates service.CandidateService
	approvals  service.ApprovalService
}

// NewHandler constructs a Handler with all service dependencies injected.
func NewHandler(postings service.PostingService, candidates service.CandidateService, approvals service.ApprovalService) *Handler {
	return &Handler{postings: postings, candidates: candidates, approvals: approvals}
}
