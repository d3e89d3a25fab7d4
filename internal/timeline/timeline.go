// Package timeline reconstructs how long a candidate spent in each pipeline
// stage from the candidate record and its activity history. All functions are
// pure and never error: bad input degrades to zero values or to the
// "Desconhecido" placeholder stage.
package timeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
)

// timeNow is an indirection for tests; defaults to time.Now.
var timeNow = time.Now

// stagePatterns extract the new stage name from a free-text status-change
// note. Tried in order, first match wins; they get progressively more
// permissive to tolerate older note phrasings.
var stagePatterns = []*regexp.Regexp{
	// "Status alterado para 'Entrevista com RH'" (quoted, canonical writer)
	regexp.MustCompile(`(?i)status\s+alterado\s+para\s*[:]?\s*['"“]([^'"”]+)['"”]`),
	// "Status alterado para Entrevista com RH." (unquoted)
	regexp.MustCompile(`(?i)status\s+alterado\s+para\s*[:]?\s*([^.;\n]+)`),
	// "... movido para Aprovado" / "mudou para Aprovado" (loose)
	regexp.MustCompile(`(?i)para\s+['"“]?([^'"”.;\n]+)['"”]?\s*$`),
}

// extractStage pulls a stage name out of a status-change note, or
// StageDesconhecido when no pattern matches.
func extractStage(content string) string {
	for _, re := range stagePatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			if s := strings.TrimSpace(m[1]); s != "" {
				return s
			}
		}
	}
	return models.StageDesconhecido
}

// StageTimes reconstructs the ordered per-stage timeline for a candidate.
//
// Behavior:
//   - Only history items with ActivityType == ActivityStatusChange count as
//     stage boundaries; they are processed in ascending CreatedAt order.
//   - With no boundaries, the whole lifetime (since StatusEnteredAt when set,
//     otherwise CreatedAt) is attributed to the current status.
//   - Each boundary closes the previous stage; a negative span (clock skew,
//     out-of-order data) or a previous stage of "Desconhecido" suppresses the
//     entry but the walk still advances to the boundary's stage and date.
//   - A note whose stage cannot be extracted resolves to "Desconhecido",
//     except on the last boundary where it falls back to the candidate's
//     recorded status.
//   - The final entry is always the current status with a nil EndDate,
//     starting at StatusEnteredAt when present.
//
// The returned slice is ordered by StartDate and only its last entry has a
// nil EndDate.
func StageTimes(c models.Candidate, history []models.HistoryItem) []models.StageTimeInfo {
	now := timeNow()

	changes := make([]models.HistoryItem, 0, len(history))
	for _, h := range history {
		if h.ActivityType == models.ActivityStatusChange {
			changes = append(changes, h)
		}
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].CreatedAt.Before(changes[j].CreatedAt)
	})

	if len(changes) == 0 {
		start := c.CreatedAt
		if c.StatusEnteredAt != nil {
			start = *c.StatusEnteredAt
		}
		return []models.StageTimeInfo{{
			Stage:     c.Status,
			Days:      clampDays(wholeDays(start, now)),
			StartDate: start,
		}}
	}

	out := make([]models.StageTimeInfo, 0, len(changes)+1)
	prevStage := models.StageCadastrado
	prevDate := c.CreatedAt

	for i, ch := range changes {
		stage := extractStage(ch.Content)
		if stage == models.StageDesconhecido && i == len(changes)-1 {
			// Last boundary: trust the candidate record over the note text.
			stage = c.Status
		}

		if days := wholeDays(prevDate, ch.CreatedAt); days >= 0 && prevStage != models.StageDesconhecido {
			end := ch.CreatedAt
			out = append(out, models.StageTimeInfo{
				Stage:     prevStage,
				Days:      days,
				StartDate: prevDate,
				EndDate:   &end,
			})
		}

		prevStage = stage
		prevDate = ch.CreatedAt
	}

	start := prevDate
	if c.StatusEnteredAt != nil {
		start = *c.StatusEnteredAt
	}
	out = append(out, models.StageTimeInfo{
		Stage:     c.Status,
		Days:      clampDays(wholeDays(start, now)),
		StartDate: start,
	})

	return out
}

// TotalProcessDays returns the whole days elapsed since the candidate was
// registered, or 0 when the creation timestamp is absent.
func TotalProcessDays(c models.Candidate) int {
	if c.CreatedAt.IsZero() {
		return 0
	}
	return clampDays(wholeDays(c.CreatedAt, timeNow()))
}

// FormatStageSummary renders the timeline as the one-line summary shown in
// candidate exports: "Total: 12 dias | Cadastrado: 4d | Aprovado: 8d".
func FormatStageSummary(stages []models.StageTimeInfo) string {
	if len(stages) == 0 {
		return "Nenhuma etapa registrada"
	}

	total := 0
	parts := make([]string, 0, len(stages))
	for _, s := range stages {
		total += s.Days
		parts = append(parts, fmt.Sprintf("%s: %dd", s.Stage, s.Days))
	}
	return fmt.Sprintf("Total: %d dias | %s", total, strings.Join(parts, " | "))
}

// wholeDays returns the signed whole-day difference between from and to.
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func clampDays(d int) int {
	if d < 0 {
		return 0
	}
	return d
}
