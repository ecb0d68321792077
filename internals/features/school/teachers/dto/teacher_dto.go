package dto

import (
	"sekolahku_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=50"`
	LastName      string  `json:"last_name" validate:"required,max=50"`
	Email         string  `json:"email" validate:"required,email,max=100"`
	Subject       string  `json:"subject" validate:"required,max=100"`
	Qualification string  `json:"qualification" validate:"required,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Subject:       r.Subject,
		Qualification: r.Qualification,
		Phone:         r.Phone,
	}
}

type UpdateTeacherRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=50"`
	LastName      *string `json:"last_name" validate:"omitempty,max=50"`
	Email         *string `json:"email" validate:"omitempty,email,max=100"`
	Subject       *string `json:"subject" validate:"omitempty,max=100"`
	Qualification *string `json:"qualification" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
}

func (r UpdateTeacherRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.FirstName != nil {
		updates["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		updates["last_name"] = *r.LastName
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Subject != nil {
		updates["subject"] = *r.Subject
	}
	if r.Qualification != nil {
		updates["qualification"] = *r.Qualification
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	return updates
}
