package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/dto"
	"sekolahku_backend/internals/features/school/quizzes/service"
	helper "sekolahku_backend/internals/helpers"
)

type QuestionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuestionController(db *gorm.DB, validate *validator.Validate) *QuestionController {
	return &QuestionController{DB: db, Validate: validate}
}

func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "quizId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question := req.ToModel(quizID)
	if err := service.NewQuestionService(ctl.DB).Create(c.UserContext(), &question); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Soal berhasil ditambahkan", fiber.Map{"question_id": question.ID})
}

func (ctl *QuestionController) ListByQuiz(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "quizId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	questions, err := service.NewQuestionService(ctl.DB).ListByQuiz(c.UserContext(), quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", questions)
}

func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	questionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question, err := service.NewQuestionService(ctl.DB).Update(c.UserContext(), questionID, req.ToUpdates())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Soal berhasil diperbarui", question)
}

func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	questionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.NewQuestionService(ctl.DB).Delete(c.UserContext(), questionID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{"question_id": questionID})
}
