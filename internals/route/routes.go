package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	courseRoute "sekolahku_backend/internals/features/school/courses/route"
	enrollmentRoute "sekolahku_backend/internals/features/school/enrollments/route"
	quizRoute "sekolahku_backend/internals/features/school/quizzes/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	teacherRoute "sekolahku_backend/internals/features/school/teachers/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	"sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route: public dulu, lalu API ber-JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthPublicRoutes(app, db)
	log.Println("[INFO] Auth public routes terpasang")

	api := app.Group("/api", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	authRoute.AuthProtectedRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	enrollmentRoute.EnrollmentRoutes(api, db)
	quizRoute.QuizRoutes(api, db)
	log.Println("[INFO] API routes terpasang")
}
