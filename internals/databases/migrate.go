package database

import (
	"log"

	courseModel "sekolahku_backend/internals/features/school/courses/model"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	quizModel "sekolahku_backend/internals/features/school/quizzes/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	userModel "sekolahku_backend/internals/features/users/auth/model"
)

// AutoMigrate menjalankan migrasi skema untuk semua tabel.
// Urutan mengikuti dependensi FK: master dulu, baru relasi.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&enrollmentModel.EnrollmentModel{},
		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizSubmissionModel{},
		&quizModel.QuizAnswerModel{},
		&quizModel.QuizResultModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] AutoMigrate gagal: %v", err)
	}
	log.Println("[INFO] AutoMigrate selesai")
}
