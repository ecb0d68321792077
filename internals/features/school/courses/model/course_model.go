package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel merepresentasikan tabel courses. Satu course diampu satu teacher.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Credits     int       `gorm:"not null" json:"credits"`
	MaxStudents int       `gorm:"not null;default:30" json:"max_students"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
