package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/school/enrollments/model"
)

/* =========================
   CREATE
========================= */

type CreateEnrollmentRequest struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	CourseID       uuid.UUID `json:"course_id" validate:"required"`
	EnrollmentDate *string   `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
}

// ToModel: enrollment_date default hari ini bila tidak dikirim.
func (r CreateEnrollmentRequest) ToModel() (model.EnrollmentModel, error) {
	date := time.Now()
	if r.EnrollmentDate != nil {
		d, err := time.Parse("2006-01-02", *r.EnrollmentDate)
		if err != nil {
			return model.EnrollmentModel{}, err
		}
		date = d
	}
	return model.EnrollmentModel{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		EnrollmentDate: datatypes.Date(date),
		Status:         model.EnrollmentStatusActive,
	}, nil
}

/* =========================
   UPDATE / PATCH
========================= */

type UpdateEnrollmentRequest struct {
	Status *string  `json:"status" validate:"omitempty,oneof=active completed dropped"`
	Grade  *float64 `json:"grade" validate:"omitempty,min=0,max=100"`
}

func (r UpdateEnrollmentRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Grade != nil {
		updates["grade"] = *r.Grade
	}
	return updates
}
