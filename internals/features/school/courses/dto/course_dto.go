package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/courses/model"
)

type CreateCourseRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description" validate:"required"`
	Credits     int       `json:"credits" validate:"required,min=1"`
	MaxStudents *int      `json:"max_students" validate:"omitempty,min=1"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

func (r CreateCourseRequest) ToModel() model.CourseModel {
	m := model.CourseModel{
		Name:        r.Name,
		Description: r.Description,
		Credits:     r.Credits,
		MaxStudents: 30, // default kapasitas
		TeacherID:   r.TeacherID,
	}
	if r.MaxStudents != nil {
		m.MaxStudents = *r.MaxStudents
	}
	return m
}

type UpdateCourseRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty"`
	Credits     *int       `json:"credits" validate:"omitempty,min=1"`
	MaxStudents *int       `json:"max_students" validate:"omitempty,min=1"`
	TeacherID   *uuid.UUID `json:"teacher_id" validate:"omitempty"`
}

func (r UpdateCourseRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Credits != nil {
		updates["credits"] = *r.Credits
	}
	if r.MaxStudents != nil {
		updates["max_students"] = *r.MaxStudents
	}
	if r.TeacherID != nil {
		updates["teacher_id"] = *r.TeacherID
	}
	return updates
}
