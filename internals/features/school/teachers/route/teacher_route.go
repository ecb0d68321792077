package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sekolahku_backend/internals/features/school/teachers/controller"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db, validator.New())

	g := api.Group("/teachers")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
