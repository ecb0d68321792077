package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizModel merepresentasikan tabel quizzes. Satu quiz milik satu course.
// total_marks hanyalah cache; nilai sebenarnya = jumlah marks semua soal.
type QuizModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID        uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
	TotalMarks      float64   `gorm:"not null;default:0" json:"total_marks"`
	DurationMinutes int       `gorm:"not null;default:30" json:"duration_minutes"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relasi (cascade: hapus quiz ikut menghapus soal & submission)
	Questions   []QuizQuestionModel   `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Submissions []QuizSubmissionModel `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizModel) TableName() string { return "quizzes" }

func (m *QuizModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
