package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db, validator.New())

	g := api.Group("/students")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
