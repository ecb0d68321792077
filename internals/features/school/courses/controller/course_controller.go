package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/courses/dto"
	"sekolahku_backend/internals/features/school/courses/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, validate *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: validate}
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// teacher pengampu harus ada
	var exists int64
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
		Where("id = ?", req.TeacherID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Teacher tidak ditemukan")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}
	return helper.JsonCreated(c, "Course berhasil dibuat", m)
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", m)
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		if tid, err := uuid.Parse(teacherID); err == nil {
			tx = tx.Where("teacher_id = ?", tid)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var courses []model.CourseModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonList(c, "OK", courses, helper.BuildPagination(paging, total, len(courses)))
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui course")
		}
	}
	return helper.JsonUpdated(c, "Course berhasil diperbarui", m)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.CourseModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_id": id})
}
