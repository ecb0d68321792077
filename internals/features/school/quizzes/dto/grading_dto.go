package dto

import (
	"github.com/google/uuid"
)

// ManualGradeRequest: keduanya opsional. Feedback selalu menimpa nilai lama
// (termasuk saat kosong); override_marks tidak di-clamp ke total_marks.
type ManualGradeRequest struct {
	Feedback      *string  `json:"feedback" validate:"omitempty"`
	OverrideMarks *float64 `json:"override_marks" validate:"omitempty"`
}

type SubmitQuizResponse struct {
	SubmissionID  uuid.UUID `json:"submission_id"`
	MarksObtained float64   `json:"marks_obtained"`
	TotalMarks    float64   `json:"total_marks"`
	Percentage    float64   `json:"percentage"`
	Grade         string    `json:"grade"`
}
