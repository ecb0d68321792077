package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel merepresentasikan tabel teachers
type TeacherModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string    `gorm:"size:50;not null" json:"first_name"`
	LastName      string    `gorm:"size:50;not null" json:"last_name"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Subject       string    `gorm:"size:100;not null" json:"subject"`
	Qualification string    `gorm:"size:100;not null" json:"qualification"`
	Phone         *string   `gorm:"size:20" json:"phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *TeacherModel) FullName() string {
	return m.FirstName + " " + m.LastName
}
