package dto

import (
	"time"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/school/students/model"
)

/* =========================
   CREATE
========================= */

type CreateStudentRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Grade       int     `json:"grade" validate:"required,min=1,max=12"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
}

func (r CreateStudentRequest) ToModel() (model.StudentModel, error) {
	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return model.StudentModel{}, err
	}
	return model.StudentModel{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		DateOfBirth: datatypes.Date(dob),
		Grade:       r.Grade,
		Address:     r.Address,
		Phone:       r.Phone,
	}, nil
}

/* =========================
   UPDATE / PATCH
========================= */

type UpdateStudentRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Grade       *int    `json:"grade" validate:"omitempty,min=1,max=12"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
}

func (r UpdateStudentRequest) ToUpdates() (map[string]any, error) {
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
	if r.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		updates["date_of_birth"] = datatypes.Date(dob)
	}
	if r.Grade != nil {
		updates["grade"] = *r.Grade
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	return updates, nil
}
