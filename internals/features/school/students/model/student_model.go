package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel students
type StudentModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string         `gorm:"size:50;not null" json:"first_name"`
	LastName    string         `gorm:"size:50;not null" json:"last_name"`
	Email       string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	DateOfBirth datatypes.Date `gorm:"not null" json:"date_of_birth"`
	Grade       int            `gorm:"not null" json:"grade"`
	Address     *string        `gorm:"size:200" json:"address,omitempty"`
	Phone       *string        `gorm:"size:20" json:"phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *StudentModel) FullName() string {
	return m.FirstName + " " + m.LastName
}
