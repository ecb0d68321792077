package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/enrollments/controller"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db, validator.New())

	g := api.Group("/enrollments")
	g.Post("/", ctl.Create)
	g.Get("/student/:studentId", ctl.ListByStudent)
	g.Get("/course/:courseId", ctl.ListByCourse)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
