package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

type ResultService struct {
	DB *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db}
}

func (s *ResultService) GetBySubmission(ctx context.Context, submissionID uuid.UUID) (*model.QuizResultModel, error) {
	var result model.QuizResultModel
	if err := s.DB.WithContext(ctx).First(&result, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Hasil quiz tidak ditemukan")
		}
		return nil, err
	}
	return &result, nil
}

// ListByQuiz mengambil semua result untuk satu quiz (teacher view).
func (s *ResultService) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.QuizResultModel, error) {
	var results []model.QuizResultModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN quiz_submissions ON quiz_submissions.id = quiz_results.submission_id").
		Where("quiz_submissions.quiz_id = ?", quizID).
		Order("quiz_results.created_at DESC").
		Find(&results).Error
	return results, err
}

// ListByStudentAndCourse mengambil semua result milik student di satu course.
func (s *ResultService) ListByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) ([]model.QuizResultModel, error) {
	var results []model.QuizResultModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN quiz_submissions ON quiz_submissions.id = quiz_results.submission_id").
		Joins("JOIN quizzes ON quizzes.id = quiz_submissions.quiz_id").
		Where("quiz_submissions.student_id = ? AND quizzes.course_id = ?", studentID, courseID).
		Order("quiz_results.created_at DESC").
		Find(&results).Error
	return results, err
}
