package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sekolahku_backend/internals/features/school/courses/model"
	"sekolahku_backend/internals/features/school/enrollments/dto"
	"sekolahku_backend/internals/features/school/enrollments/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, validate *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: validate}
}

func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var studentCount int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("id = ?", req.StudentID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student tidak ditemukan")
	}

	var courseCount int64
	if err := ctl.DB.Model(&courseModel.CourseModel{}).
		Where("id = ?", req.CourseID).
		Count(&courseCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if courseCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course tidak ditemukan")
	}

	// satu student hanya boleh sekali enroll per course
	var dup int64
	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("student_id = ? AND course_id = ?", req.StudentID, req.CourseID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student sudah terdaftar di course ini")
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat enrollment")
	}
	return helper.JsonCreated(c, "Enrollment berhasil dibuat", m)
}

func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	var m model.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", m)
}

func (ctl *EnrollmentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter studentId tidak valid")
	}

	var list []model.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", list)
}

func (ctl *EnrollmentController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter courseId tidak valid")
	}

	var list []model.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", list)
}

func (ctl *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui enrollment")
		}
	}
	return helper.JsonUpdated(c, "Enrollment berhasil diperbarui", m)
}

func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EnrollmentModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus enrollment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Enrollment berhasil dihapus", fiber.Map{"enrollment_id": id})
}
