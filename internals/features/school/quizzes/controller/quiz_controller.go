package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/dto"
	"sekolahku_backend/internals/features/school/quizzes/model"
	"sekolahku_backend/internals/features/school/quizzes/service"
	helper "sekolahku_backend/internals/helpers"
)

type QuizController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuizController(db *gorm.DB, validate *validator.Validate) *QuizController {
	return &QuizController{DB: db, Validate: validate}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" tidak valid")
	}
	return id, nil
}

/* =========================
   CREATE
========================= */

func (ctl *QuizController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	quiz := req.ToModel()
	if err := service.NewQuizService(ctl.DB).Create(c.UserContext(), &quiz); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Quiz berhasil dibuat", fiber.Map{"quiz_id": quiz.ID})
}

/* =========================
   READ
========================= */

func (ctl *QuizController) GetByID(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	svc := service.NewQuizService(ctl.DB)
	quiz, err := svc.GetByID(c.UserContext(), quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	questions, err := service.NewQuestionService(ctl.DB).ListByQuiz(c.UserContext(), quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quiz.Questions = questions

	return helper.JsonOK(c, "OK", fiber.Map{
		"quiz":           quiz,
		"question_count": len(questions),
	})
}

func (ctl *QuizController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "courseId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizzes, err := service.NewQuizService(ctl.DB).ListByCourse(c.UserContext(), courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	list := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		var count int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&model.QuizQuestionModel{}).
			Where("quiz_id = ?", quiz.ID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		list = append(list, dto.ToQuizResponse(quiz, int(count)))
	}
	return helper.JsonOK(c, "OK", list)
}

/* =========================
   UPDATE / DELETE
========================= */

func (ctl *QuizController) Update(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	quiz, err := service.NewQuizService(ctl.DB).Update(c.UserContext(), quizID, req.ToUpdates())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Quiz berhasil diperbarui", quiz)
}

func (ctl *QuizController) Delete(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.NewQuizService(ctl.DB).Delete(c.UserContext(), quizID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Quiz berhasil dihapus", fiber.Map{"quiz_id": quizID})
}

/* =========================
   STUDENT VIEWS
========================= */

func (ctl *QuizController) AvailableForStudent(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := parseUUIDParam(c, "courseId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizzes, err := service.NewQuizService(ctl.DB).AvailableForStudent(c.UserContext(), studentID, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", quizzes)
}

func (ctl *QuizController) PreviewForStudent(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := parseUUIDParam(c, "quizId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	preview, err := service.NewQuizService(ctl.DB).PreviewForStudent(c.UserContext(), studentID, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", preview)
}
