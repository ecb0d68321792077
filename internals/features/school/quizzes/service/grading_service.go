package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

/* =========================================================
   PURE GRADING RULES
========================================================= */

// IsAnswerCorrect membandingkan jawaban murid dengan kunci per tipe soal.
// Semua tipe: trim whitespace + case-insensitive. Tipe tak dikenal → false.
func IsAnswerCorrect(studentAnswer, correctAnswer string, questionType model.QuestionType) bool {
	sa := strings.TrimSpace(studentAnswer)
	ca := strings.TrimSpace(correctAnswer)

	switch questionType {
	case model.QuestionTypeMultipleChoice, model.QuestionTypeTrueFalse:
		return strings.EqualFold(sa, ca)
	case model.QuestionTypeText:
		return strings.EqualFold(sa, ca)
	default:
		return false
	}
}

// CalculatePercentage menghitung persentase dengan guard pembagi nol.
func CalculatePercentage(marksObtained, totalMarks float64) float64 {
	if totalMarks > 0 {
		return (marksObtained / totalMarks) * 100
	}
	return 0
}

// CalculateGrade memetakan persentase → huruf (batas bawah inklusif).
func CalculateGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 85:
		return "A"
	case percentage >= 80:
		return "B+"
	case percentage >= 75:
		return "B"
	case percentage >= 70:
		return "C+"
	case percentage >= 65:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

/* =========================================================
   SERVICE
========================================================= */

type GradingService struct {
	DB *gorm.DB
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{DB: db}
}

// GradingSummary adalah hasil hitung auto-grade / override.
type GradingSummary struct {
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
	Percentage    float64 `json:"percentage"`
	Grade         string  `json:"grade"`
}

/* =========================================================
   AUTO GRADE
========================================================= */

// AutoGrade menilai seluruh jawaban sebuah submission lalu membuat satu row
// result (graded_by_teacher = false). Jawaban yang soalnya sudah tidak ada
// (terhapus setelah submit) di-skip dan tidak ikut total_marks.
func (s *GradingService) AutoGrade(ctx context.Context, submissionID uuid.UUID) (*GradingSummary, error) {
	var submission model.QuizSubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&submission, "id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return nil, err
	}

	var answers []model.QuizAnswerModel
	if err := s.DB.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Find(&answers).Error; err != nil {
		return nil, err
	}

	var questions []model.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_id = ?", submission.QuizID).
		Order("order_number ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	questionByID := make(map[uuid.UUID]model.QuizQuestionModel, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	var totalMarks, marksObtained float64

	for i := range answers {
		ans := &answers[i]
		q, ok := questionByID[ans.QuestionID]
		if !ok {
			// soal sudah dihapus → skip (tidak masuk total)
			continue
		}
		totalMarks += q.Marks

		isCorrect := IsAnswerCorrect(ans.StudentAnswer, q.CorrectAnswer, q.QuestionType)
		marksForAnswer := 0.0
		if isCorrect {
			marksForAnswer = q.Marks
		}
		marksObtained += marksForAnswer

		if err := s.DB.WithContext(ctx).
			Model(&model.QuizAnswerModel{}).
			Where("id = ?", ans.ID).
			Updates(map[string]any{
				"is_correct":     isCorrect,
				"marks_obtained": marksForAnswer,
			}).Error; err != nil {
			return nil, err
		}
	}

	percentage := CalculatePercentage(marksObtained, totalMarks)
	grade := CalculateGrade(percentage)

	result := model.QuizResultModel{
		SubmissionID:    submissionID,
		TotalMarks:      totalMarks,
		MarksObtained:   marksObtained,
		Percentage:      percentage,
		Grade:           grade,
		GradedByTeacher: false,
	}
	if err := s.DB.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, err
	}

	log.Printf("[GradingService] AutoGrade done. submission_id=%s obtained=%.2f total=%.2f grade=%s",
		submissionID, marksObtained, totalMarks, grade)

	return &GradingSummary{
		MarksObtained: marksObtained,
		TotalMarks:    totalMarks,
		Percentage:    percentage,
		Grade:         grade,
	}, nil
}

/* =========================================================
   MANUAL GRADE (TEACHER OVERRIDE)
========================================================= */

// ManualGrade: guru meng-override hasil yang sudah di-auto-grade.
// Feedback selalu ditimpa (termasuk nil). Jika overrideMarks diisi,
// persentase dihitung ulang dari snapshot total_marks — tanpa clamping,
// jadi nilai > 100% diterima.
func (s *GradingService) ManualGrade(ctx context.Context, submissionID uuid.UUID, feedback *string, overrideMarks *float64) (*model.QuizResultModel, error) {
	var result model.QuizResultModel
	if err := s.DB.WithContext(ctx).
		First(&result, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Hasil quiz tidak ditemukan")
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]any{
		"graded_by_teacher": true,
		"graded_at":         now,
		"feedback":          feedback,
	}

	if overrideMarks != nil {
		percentage := CalculatePercentage(*overrideMarks, result.TotalMarks)
		updates["marks_obtained"] = *overrideMarks
		updates["percentage"] = percentage
		updates["grade"] = CalculateGrade(percentage)
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.QuizResultModel{}).
		Where("submission_id = ?", submissionID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	// baca ulang supaya response konsisten dengan yang tersimpan
	if err := s.DB.WithContext(ctx).
		First(&result, "submission_id = ?", submissionID).Error; err != nil {
		return nil, err
	}

	log.Printf("[GradingService] ManualGrade done. submission_id=%s override=%v", submissionID, overrideMarks != nil)
	return &result, nil
}
