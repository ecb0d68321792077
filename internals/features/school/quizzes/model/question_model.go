package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeText           QuestionType = "text"
)

// QuizQuestionModel merepresentasikan tabel quiz_questions.
// order_number menentukan urutan tampil sekaligus urutan penjajaran jawaban.
type QuizQuestionModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText string       `gorm:"type:text;not null" json:"question_text"`
	QuestionType QuestionType `gorm:"size:20;not null" json:"question_type"`

	// Opsi hanya bermakna untuk multiple_choice
	OptionA *string `gorm:"size:255" json:"option_a,omitempty"`
	OptionB *string `gorm:"size:255" json:"option_b,omitempty"`
	OptionC *string `gorm:"size:255" json:"option_c,omitempty"`
	OptionD *string `gorm:"size:255" json:"option_d,omitempty"`

	CorrectAnswer string  `gorm:"size:255;not null" json:"correct_answer"`
	Marks         float64 `gorm:"not null;default:1" json:"marks"`
	OrderNumber   int     `gorm:"not null" json:"order_number"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

func (m *QuizQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *QuizQuestionModel) IsMultipleChoice() bool {
	return m.QuestionType == QuestionTypeMultipleChoice
}
