package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// EnrollmentModel merepresentasikan tabel enrollments.
// Satu pasangan (student, course) hanya boleh punya satu enrollment.
type EnrollmentModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"course_id"`
	EnrollmentDate datatypes.Date   `gorm:"not null" json:"enrollment_date"`
	Status         EnrollmentStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	Grade          *float64         `json:"grade,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
