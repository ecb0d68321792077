package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

// Create menolak soal jika quiz pemiliknya tidak ada.
func (s *QuestionService) Create(ctx context.Context, question *model.QuizQuestionModel) error {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&model.QuizModel{}).
		Where("id = ?", question.QuizID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Quiz tidak ditemukan")
	}
	return s.DB.WithContext(ctx).Create(question).Error
}

func (s *QuestionService) GetByID(ctx context.Context, questionID uuid.UUID) (*model.QuizQuestionModel, error) {
	var question model.QuizQuestionModel
	if err := s.DB.WithContext(ctx).First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return nil, err
	}
	return &question, nil
}

// ListByQuiz selalu urut order_number ASC (kunci penjajaran jawaban).
func (s *QuestionService) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.QuizQuestionModel, error) {
	var questions []model.QuizQuestionModel
	err := s.DB.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("order_number ASC").
		Find(&questions).Error
	return questions, err
}

// Update menerapkan partial update per field yang ada di map.
func (s *QuestionService) Update(ctx context.Context, questionID uuid.UUID, updates map[string]any) (*model.QuizQuestionModel, error) {
	question, err := s.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).
			Model(&model.QuizQuestionModel{}).
			Where("id = ?", questionID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.DB.WithContext(ctx).First(question, "id = ?", questionID).Error; err != nil {
			return nil, err
		}
	}
	return question, nil
}

// Delete menghapus soal. Jawaban lama TIDAK di-regrade; saat grading,
// jawaban yang soalnya hilang akan di-skip.
func (s *QuestionService) Delete(ctx context.Context, questionID uuid.UUID) error {
	if _, err := s.GetByID(ctx, questionID); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(&model.QuizQuestionModel{}, "id = ?", questionID).Error
}
