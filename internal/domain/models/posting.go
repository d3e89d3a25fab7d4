package models

import "time"

// Job posting lifecycle states.
const (
	PostingRascunho  = "Rascunho"
	PostingAberta    = "Aberta"
	PostingPausada   = "Pausada"
	PostingEncerrada = "Encerrada"
	PostingVencida   = "Vencida"
)

// JobPosting represents a published (or draft) job opening.
//
// Fields:
//   - ID: posting identifier (UUID).
//   - Title, Department, Description: posting content shown to applicants.
//   - Requirements: free-text requirement lines (text[] in Postgres).
//   - Status: lifecycle state (Rascunho, Aberta, Pausada, Encerrada, Vencida).
//   - ExpiresAt: optional application deadline; the expiry sweep closes the
//     posting once no business days remain.
type JobPosting struct {
	ID           string     `json:"id" example:"c1a2b3d4-0000-4111-8222-333344445555"`
	Title        string     `json:"title" example:"Analista de Dados Pleno"`
	Department   string     `json:"department" example:"Tecnologia"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements" swaggertype:"array,string"`
	Status       string     `json:"status" example:"Aberta"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
