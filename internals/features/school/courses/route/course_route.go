package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/courses/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db, validator.New())

	courses := api.Group("/courses")
	courses.Post("/", ctl.Create)
	courses.Get("/", ctl.List)
	courses.Get("/:id", ctl.GetByID)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Delete)
}
