package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizSubmissionModel merepresentasikan tabel quiz_submissions.
// Maksimal satu submission per (student, quiz) — dijaga lewat pre-check,
// bukan constraint database (soft rule).
type QuizSubmissionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID           uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	StudentID        uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	SubmittedAt      time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	TimeTakenMinutes *int      `json:"time_taken_minutes,omitempty"`
	IsCompleted      bool      `gorm:"not null;default:false" json:"is_completed"`

	// Relasi (cascade: hapus submission ikut menghapus jawaban & result)
	Answers []QuizAnswerModel `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
	Result  *QuizResultModel  `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizSubmissionModel) TableName() string { return "quiz_submissions" }

func (m *QuizSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
