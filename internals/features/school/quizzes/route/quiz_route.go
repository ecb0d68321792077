package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "sekolahku_backend/internals/features/school/quizzes/controller"
)

func QuizRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	quizCtrl := quizController.NewQuizController(db, v)
	questionCtrl := quizController.NewQuestionController(db, v)
	submissionCtrl := quizController.NewSubmissionController(db, v)
	resultCtrl := quizController.NewResultController(db)

	g := api.Group("/quizzes")

	// ===== QUIZ (teacher) =====
	g.Post("/", quizCtrl.Create)
	g.Get("/course/:courseId", quizCtrl.ListByCourse)
	g.Get("/:id", quizCtrl.GetByID)
	g.Put("/:id", quizCtrl.Update)
	g.Delete("/:id", quizCtrl.Delete)

	// ===== QUESTIONS (teacher) =====
	g.Post("/:quizId/questions", questionCtrl.Create)
	g.Get("/:quizId/questions", questionCtrl.ListByQuiz)
	g.Put("/questions/:id", questionCtrl.Update)
	g.Delete("/questions/:id", questionCtrl.Delete)

	// ===== STUDENT =====
	g.Get("/student/:studentId/course/:courseId/available", quizCtrl.AvailableForStudent)
	g.Get("/student/:studentId/quiz/:quizId/preview", quizCtrl.PreviewForStudent)
	g.Post("/student/:studentId/submit/:quizId", submissionCtrl.Submit)
	g.Get("/submissions/student/:studentId", submissionCtrl.ListByStudent)

	// ===== SUBMISSIONS & GRADING (teacher) =====
	g.Get("/:quizId/submissions", submissionCtrl.ListByQuiz)
	g.Get("/submissions/:id/answers", submissionCtrl.AnswerDetails)
	g.Post("/submissions/:id/grade", submissionCtrl.ManualGrade)

	// ===== RESULTS =====
	g.Get("/:quizId/results", resultCtrl.ListByQuiz)
	g.Get("/submissions/:id/result", resultCtrl.GetBySubmission)
	g.Get("/student/:studentId/course/:courseId/results", resultCtrl.ListByStudentAndCourse)
}
