package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

/* =========================
   CREATE
========================= */

type CreateQuestionRequest struct {
	QuestionText  string             `json:"question_text" validate:"required"`
	QuestionType  model.QuestionType `json:"question_type" validate:"required,oneof=multiple_choice true_false text"`
	OptionA       *string            `json:"option_a" validate:"omitempty,max=255"`
	OptionB       *string            `json:"option_b" validate:"omitempty,max=255"`
	OptionC       *string            `json:"option_c" validate:"omitempty,max=255"`
	OptionD       *string            `json:"option_d" validate:"omitempty,max=255"`
	CorrectAnswer string             `json:"correct_answer" validate:"required,max=255"`
	Marks         *float64           `json:"marks" validate:"omitempty,gt=0"`
	OrderNumber   int                `json:"order_number" validate:"required,min=1"`
}

func (r CreateQuestionRequest) ToModel(quizID uuid.UUID) model.QuizQuestionModel {
	m := model.QuizQuestionModel{
		QuizID:        quizID,
		QuestionText:  r.QuestionText,
		QuestionType:  r.QuestionType,
		OptionA:       r.OptionA,
		OptionB:       r.OptionB,
		OptionC:       r.OptionC,
		OptionD:       r.OptionD,
		CorrectAnswer: r.CorrectAnswer,
		Marks:         1.0, // default 1 poin
		OrderNumber:   r.OrderNumber,
	}
	if r.Marks != nil {
		m.Marks = *r.Marks
	}
	return m
}

/* =========================
   UPDATE / PATCH
========================= */

type UpdateQuestionRequest struct {
	QuestionText  *string             `json:"question_text" validate:"omitempty"`
	QuestionType  *model.QuestionType `json:"question_type" validate:"omitempty,oneof=multiple_choice true_false text"`
	OptionA       *string             `json:"option_a" validate:"omitempty,max=255"`
	OptionB       *string             `json:"option_b" validate:"omitempty,max=255"`
	OptionC       *string             `json:"option_c" validate:"omitempty,max=255"`
	OptionD       *string             `json:"option_d" validate:"omitempty,max=255"`
	CorrectAnswer *string             `json:"correct_answer" validate:"omitempty,max=255"`
	Marks         *float64            `json:"marks" validate:"omitempty,gt=0"`
	OrderNumber   *int                `json:"order_number" validate:"omitempty,min=1"`
}

func (r UpdateQuestionRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.QuestionText != nil {
		updates["question_text"] = *r.QuestionText
	}
	if r.QuestionType != nil {
		updates["question_type"] = *r.QuestionType
	}
	if r.OptionA != nil {
		updates["option_a"] = *r.OptionA
	}
	if r.OptionB != nil {
		updates["option_b"] = *r.OptionB
	}
	if r.OptionC != nil {
		updates["option_c"] = *r.OptionC
	}
	if r.OptionD != nil {
		updates["option_d"] = *r.OptionD
	}
	if r.CorrectAnswer != nil {
		updates["correct_answer"] = *r.CorrectAnswer
	}
	if r.Marks != nil {
		updates["marks"] = *r.Marks
	}
	if r.OrderNumber != nil {
		updates["order_number"] = *r.OrderNumber
	}
	return updates
}
