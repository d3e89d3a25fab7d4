package notify

import (
	"fmt"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

// Notification templates. Plain text by choice: the back office reads these
// in shared inboxes where HTML adds nothing.

// StatusChanged builds the notification sent to the HR inbox when a
// candidate moves to a new pipeline stage.
func StatusChanged(c models.Candidate, newStatus string) (subject, body string) {
	subject = fmt.Sprintf("Candidato %s: %s", c.Name, newStatus)
	body = fmt.Sprintf(
		"O status do candidato %s (%s) foi alterado para '%s'.\n\nVaga: %s\n",
		c.Name, c.Email, newStatus, c.PostingID)
	return subject, body
}

// ApprovalDecided builds the notification sent back to whoever requested an
// approval once it is decided.
func ApprovalDecided(a models.ApprovalRequest) (subject, body string) {
	subject = fmt.Sprintf("Solicitação de %s %s", a.Kind, a.Status)
	body = fmt.Sprintf(
		"Sua solicitação de %s para a vaga %s foi %s por %s.\n",
		a.Kind, a.PostingID, a.Status, a.DecidedBy)
	if a.Comment != "" {
		body += "\nComentário: " + a.Comment + "\n"
	}
	return subject, body
}

// PostingExpired builds the notification sent to the HR inbox when the
// expiry sweep closes a posting.
func PostingExpired(p models.JobPosting) (subject, body string) {
	subject = fmt.Sprintf("Vaga vencida: %s", p.Title)
	body = fmt.Sprintf(
		"A vaga %s (%s) atingiu o prazo de candidaturas e foi marcada como vencida.\n",
		p.Title, p.Department)
	return subject, body
}
