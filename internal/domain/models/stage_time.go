package models

import "time"

// StageTimeInfo describes how long a candidate spent in one pipeline stage.
//
// Fields:
//   - Stage: stage name (one of PipelineStages, or StageDesconhecido when the
//     underlying status could not be resolved).
//   - Days: whole days spent in the stage, never negative.
//   - StartDate: when the stage began.
//   - EndDate: when the stage ended; nil while the stage is still current.
//
// For a given candidate the reconstructed slice is ordered by StartDate and
// at most one entry (the last) has a nil EndDate.
//
// swagger:model StageTimeInfo
type StageTimeInfo struct {
	Stage     string     `json:"stage" example:"Entrevista com RH"`
	Days      int        `json:"days" example:"4"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
