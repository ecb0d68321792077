package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	"sekolahku_backend/internals/features/school/quizzes/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// satu koneksi saja supaya :memory: tidak terpecah per-conn
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&enrollmentModel.EnrollmentModel{},
		&model.QuizModel{},
		&model.QuizQuestionModel{},
		&model.QuizSubmissionModel{},
		&model.QuizAnswerModel{},
		&model.QuizResultModel{},
	))
	return db
}

func seedQuiz(t *testing.T, db *gorm.DB, courseID uuid.UUID, active bool) model.QuizModel {
	t.Helper()

	quiz := model.QuizModel{
		CourseID:        courseID,
		Title:           "Quiz Matematika Bab 1",
		DurationMinutes: 30,
		StartDate:       time.Now().Add(-time.Hour),
		EndDate:         time.Now().Add(time.Hour),
		IsActive:        active,
	}
	require.NoError(t, db.Create(&quiz).Error)
	// GORM meng-omit field zero-value yang punya tag default saat INSERT,
	// jadi is_active=false harus ditulis eksplisit setelah Create.
	if !active {
		require.NoError(t, db.Model(&quiz).Update("is_active", false).Error)
	}
	return quiz
}

// seedTwoQuestions: soal 1 multiple_choice kunci "A" (1 poin),
// soal 2 true_false kunci "true" (2 poin). Total 3 poin.
func seedTwoQuestions(t *testing.T, db *gorm.DB, quizID uuid.UUID) []model.QuizQuestionModel {
	t.Helper()

	optA, optB := "Merah", "Biru"
	questions := []model.QuizQuestionModel{
		{
			QuizID:        quizID,
			QuestionText:  "Warna bendera bagian atas?",
			QuestionType:  model.QuestionTypeMultipleChoice,
			OptionA:       &optA,
			OptionB:       &optB,
			CorrectAnswer: "A",
			Marks:         1.0,
			OrderNumber:   1,
		},
		{
			QuizID:        quizID,
			QuestionText:  "2 + 2 = 4",
			QuestionType:  model.QuestionTypeTrueFalse,
			CorrectAnswer: "true",
			Marks:         2.0,
			OrderNumber:   2,
		},
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

func seedEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uuid.UUID) {
	t.Helper()

	enrollment := enrollmentModel.EnrollmentModel{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: datatypes.Date(time.Now()),
		Status:         enrollmentModel.EnrollmentStatusActive,
	}
	require.NoError(t, db.Create(&enrollment).Error)
}
