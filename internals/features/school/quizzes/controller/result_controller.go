package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/service"
	helper "sekolahku_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

func (ctl *ResultController) ListByQuiz(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "quizId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	results, err := service.NewResultService(ctl.DB).ListByQuiz(c.UserContext(), quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", results)
}

func (ctl *ResultController) GetBySubmission(c *fiber.Ctx) error {
	submissionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	result, err := service.NewResultService(ctl.DB).GetBySubmission(c.UserContext(), submissionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", result)
}

func (ctl *ResultController) ListByStudentAndCourse(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := parseUUIDParam(c, "courseId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	results, err := service.NewResultService(ctl.DB).ListByStudentAndCourse(c.UserContext(), studentID, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", results)
}
