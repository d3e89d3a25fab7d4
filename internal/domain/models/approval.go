package models

import "time"

// Approval request kinds and the back-office roles that may decide them.
const (
	ApprovalAbertura     = "abertura"     // open a new posting
	ApprovalEncerramento = "encerramento" // close an active posting
	ApprovalProposta     = "proposta"     // extend an offer to a candidate

	RoleRH        = "rh"
	RoleGestor    = "gestor"
	RoleDiretoria = "diretoria"

	ApprovalPendente  = "pendente"
	ApprovalAprovada  = "aprovada"
	ApprovalRejeitada = "rejeitada"
)

// ApprovalRouting maps each request kind to the role required to decide it.
// Posting openings are decided by the hiring manager, closings by HR, and
// offers go up to the board.
var ApprovalRouting = map[string]string{
	ApprovalAbertura:     RoleGestor,
	ApprovalEncerramento: RoleRH,
	ApprovalProposta:     RoleDiretoria,
}

// ApprovalRequest is one pending or decided item in the approval workflow.
//
// A request is created in status "pendente" routed to RequiredRole; exactly
// one decision moves it to "aprovada" or "rejeitada" and stamps DecidedBy /
// DecidedAt. Decided requests are immutable.
type ApprovalRequest struct {
	ID           string     `json:"id"`
	PostingID    string     `json:"posting_id"`
	Kind         string     `json:"kind" example:"abertura"`
	RequestedBy  string     `json:"requested_by" example:"ana.lima@example.com"`
	RequiredRole string     `json:"required_role" example:"gestor"`
	Status       string     `json:"status" example:"pendente"`
	Comment      string     `json:"comment,omitempty"`
	DecidedBy    string     `json:"decided_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
