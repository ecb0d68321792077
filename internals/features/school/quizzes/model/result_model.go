package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizResultModel merepresentasikan tabel quiz_results (one-to-one dengan
// submission). total_marks adalah snapshot saat grading, bukan hitung ulang.
type QuizResultModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"submission_id"`
	TotalMarks      float64    `gorm:"not null;default:0" json:"total_marks"`
	MarksObtained   float64    `gorm:"not null;default:0" json:"marks_obtained"`
	Percentage      float64    `gorm:"not null;default:0" json:"percentage"`
	Grade           string     `gorm:"size:3;not null" json:"grade"`
	Feedback        *string    `gorm:"type:text" json:"feedback,omitempty"`
	GradedByTeacher bool       `gorm:"not null;default:false" json:"graded_by_teacher"`
	GradedAt        *time.Time `json:"graded_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizResultModel) TableName() string { return "quiz_results" }

func (m *QuizResultModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
