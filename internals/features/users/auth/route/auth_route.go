package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

// AuthPublicRoutes: register + login, tanpa JWT.
func AuthPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db, validator.New())

	g := app.Group("/auth")
	g.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthProtectedRoutes: endpoint yang butuh token valid.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db, validator.New())

	g := api.Group("/auth")
	g.Get("/me", ctl.Me)
}
