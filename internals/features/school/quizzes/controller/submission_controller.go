package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/dto"
	"sekolahku_backend/internals/features/school/quizzes/service"
	helper "sekolahku_backend/internals/helpers"
)

type SubmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubmissionController(db *gorm.DB, validate *validator.Validate) *SubmissionController {
	return &SubmissionController{DB: db, Validate: validate}
}

/* =========================
   SUBMIT
========================= */

// Submit menerima body teks mentah: jawaban dipisah newline atau koma,
// dijajarkan posisional ke soal terurut order_number.
func (ctl *SubmissionController) Submit(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := parseUUIDParam(c, "quizId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rawAnswers := service.ParseRawAnswers(string(c.Body()))

	var timeTaken *int
	if v := c.Query("time_taken_minutes"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil && n >= 0 {
			timeTaken = &n
		}
	}

	submissionID, summary, err := service.NewSubmissionService(ctl.DB).Submit(c.UserContext(), service.SubmitQuizInput{
		QuizID:           quizID,
		StudentID:        studentID,
		RawAnswers:       rawAnswers,
		TimeTakenMinutes: timeTaken,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Quiz berhasil di-submit", dto.SubmitQuizResponse{
		SubmissionID:  submissionID,
		MarksObtained: summary.MarksObtained,
		TotalMarks:    summary.TotalMarks,
		Percentage:    summary.Percentage,
		Grade:         summary.Grade,
	})
}

/* =========================
   READS
========================= */

func (ctl *SubmissionController) ListByQuiz(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "quizId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	submissions, err := service.NewSubmissionService(ctl.DB).ListByQuiz(c.UserContext(), quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", submissions)
}

func (ctl *SubmissionController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	submissions, err := service.NewSubmissionService(ctl.DB).ListByStudent(c.UserContext(), studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", submissions)
}

func (ctl *SubmissionController) AnswerDetails(c *fiber.Ctx) error {
	submissionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	details, err := service.NewSubmissionService(ctl.DB).AnswerDetails(c.UserContext(), submissionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", details)
}

/* =========================
   MANUAL GRADE
========================= */

func (ctl *SubmissionController) ManualGrade(c *fiber.Ctx) error {
	submissionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ManualGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := service.NewGradingService(ctl.DB).ManualGrade(c.UserContext(), submissionID, req.Feedback, req.OverrideMarks)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Quiz berhasil dinilai guru", result)
}
