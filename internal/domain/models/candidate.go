package models

import "time"

// Recruitment pipeline stages. Values are stored verbatim in the candidates
// table and embedded in "Mudança de Status" history notes, so they must not
// be renamed without a data migration.
const (
	StageCadastrado       = "Cadastrado"
	StageTriagem          = "Triagem"
	StageEntrevistaRH     = "Entrevista com RH"
	StageEntrevistaTec    = "Entrevista Técnica"
	StageProposta         = "Proposta"
	StageAprovado         = "Aprovado"
	StageReprovado        = "Reprovado"
	StageBancoDeTalentos  = "Banco de Talentos"
	StageDesconhecido     = "Desconhecido"
	ActivityStatusChange  = "Mudança de Status"
)

// PipelineStages lists every stage a candidate may legitimately occupy,
// in the order they are presented on the dashboard.
var PipelineStages = []string{
	StageCadastrado,
	StageTriagem,
	StageEntrevistaRH,
	StageEntrevistaTec,
	StageProposta,
	StageAprovado,
	StageReprovado,
	StageBancoDeTalentos,
}

// IsValidStage reports whether s is one of the recognized pipeline stages.
// StageDesconhecido is deliberately excluded: it is a read-side placeholder,
// never a status a candidate can be moved into.
func IsValidStage(s string) bool {
	for _, stage := range PipelineStages {
		if stage == s {
			return true
		}
	}
	return false
}

// Candidate represents one applicant in the recruitment pipeline.
//
// Fields:
//   - ID: candidate identifier (UUID).
//   - PostingID: the job posting this application belongs to.
//   - Name, Email: contact data captured at registration.
//   - Status: current pipeline stage (one of PipelineStages).
//   - StatusEnteredAt: when the current status began; nil for legacy rows
//     created before the column existed.
//   - CreatedAt: registration timestamp.
//
// The row is owned by the candidates table; this service reads and advances
// Status but never deletes candidates.
type Candidate struct {
	ID              string     `json:"id" example:"7b44cf4e-9d5a-4f6e-a2cb-0f6c5a4b8f10"`
	PostingID       string     `json:"posting_id" example:"c1a2b3d4-0000-4111-8222-333344445555"`
	Name            string     `json:"name" example:"Maria Souza"`
	Email           string     `json:"email" example:"maria.souza@example.com"`
	Status          string     `json:"status" example:"Entrevista com RH"`
	StatusEnteredAt *time.Time `json:"status_entered_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// HistoryItem is one entry in a candidate's activity log. Entries with
// ActivityType == ActivityStatusChange carry the stage transition embedded in
// Content (e.g. "Status alterado para 'Entrevista com RH'").
type HistoryItem struct {
	ID           string    `json:"id"`
	CandidateID  string    `json:"candidate_id"`
	ActivityType string    `json:"activity_type" example:"Mudança de Status"`
	Content      string    `json:"content" example:"Status alterado para 'Aprovado'"`
	CreatedAt    time.Time `json:"created_at"`
}
