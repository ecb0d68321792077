package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

/* =========================
   CREATE
========================= */

type CreateQuizRequest struct {
	CourseID        uuid.UUID `json:"course_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	Description     *string   `json:"description" validate:"omitempty"`
	TotalMarks      *float64  `json:"total_marks" validate:"omitempty,gte=0"`
	DurationMinutes *int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	IsActive        *bool     `json:"is_active" validate:"omitempty"`
}

func (r CreateQuizRequest) ToModel() model.QuizModel {
	m := model.QuizModel{
		CourseID:        r.CourseID,
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: 30,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IsActive:        true,
	}
	if r.TotalMarks != nil {
		m.TotalMarks = *r.TotalMarks
	}
	if r.DurationMinutes != nil {
		m.DurationMinutes = *r.DurationMinutes
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

/* =========================
   UPDATE / PATCH
========================= */

// Field pointer: nil = tidak diubah, non-nil = set ke value.
type UpdateQuizRequest struct {
	Title           *string    `json:"title" validate:"omitempty,max=200"`
	Description     *string    `json:"description" validate:"omitempty"`
	TotalMarks      *float64   `json:"total_marks" validate:"omitempty,gte=0"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	StartDate       *time.Time `json:"start_date" validate:"omitempty"`
	EndDate         *time.Time `json:"end_date" validate:"omitempty"`
	IsActive        *bool      `json:"is_active" validate:"omitempty"`
}

// ToUpdates membangun map kolom eksplisit (bukan blind merge).
func (r UpdateQuizRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.TotalMarks != nil {
		updates["total_marks"] = *r.TotalMarks
	}
	if r.DurationMinutes != nil {
		updates["duration_minutes"] = *r.DurationMinutes
	}
	if r.StartDate != nil {
		updates["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["end_date"] = *r.EndDate
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

/* =========================
   RESPONSE
========================= */

type QuizResponse struct {
	ID              uuid.UUID `json:"id"`
	CourseID        uuid.UUID `json:"course_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	TotalMarks      float64   `json:"total_marks"`
	DurationMinutes int       `json:"duration_minutes"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	QuestionCount   int       `json:"question_count"`
}

func ToQuizResponse(m model.QuizModel, questionCount int) QuizResponse {
	return QuizResponse{
		ID:              m.ID,
		CourseID:        m.CourseID,
		Title:           m.Title,
		Description:     m.Description,
		TotalMarks:      m.TotalMarks,
		DurationMinutes: m.DurationMinutes,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		QuestionCount:   questionCount,
	}
}
