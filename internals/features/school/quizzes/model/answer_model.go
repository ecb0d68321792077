package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizAnswerModel merepresentasikan tabel quiz_answers.
// question_id sengaja TANPA FK constraint: soal boleh dihapus setelah
// submission, jawaban yatim akan di-skip saat grading.
type QuizAnswerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`
	QuestionID    uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	StudentAnswer string    `gorm:"type:text;not null" json:"student_answer"`
	IsCorrect     *bool     `json:"is_correct,omitempty"`
	MarksObtained float64   `gorm:"not null;default:0" json:"marks_obtained"`
}

func (QuizAnswerModel) TableName() string { return "quiz_answers" }

func (m *QuizAnswerModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
