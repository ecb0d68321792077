package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

/* =========================================================
   SERVICE
========================================================= */

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// SubmitQuizInput adalah payload yang sudah dibersihkan di controller.
// RawAnswers urut sesuai posisi; dijajarkan ke soal terurut order_number.
type SubmitQuizInput struct {
	QuizID           uuid.UUID
	StudentID        uuid.UUID
	RawAnswers       []string
	TimeTakenMinutes *int
}

/* =========================================================
   INTAKE PARSER
========================================================= */

// ParseRawAnswers memecah body mentah menjadi daftar jawaban:
// per baris jika ada newline, kalau tidak per koma, kalau tidak satu jawaban.
func ParseRawAnswers(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return []string{}
	}

	var parts []string
	switch {
	case strings.Contains(text, "\n"):
		parts = strings.Split(text, "\n")
	case strings.Contains(text, ","):
		parts = strings.Split(text, ",")
	default:
		parts = []string{text}
	}

	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		answers = append(answers, strings.TrimSpace(p))
	}
	return answers
}

// AlignAnswers menjajarkan jawaban mentah ke soal terurut secara posisional:
// jawaban ke-i untuk soal ke-i. Kurang → dianggap string kosong,
// lebih → sisanya dibuang.
func AlignAnswers(questions []model.QuizQuestionModel, rawAnswers []string) []string {
	aligned := make([]string, len(questions))
	for i := range questions {
		if i < len(rawAnswers) {
			aligned[i] = rawAnswers[i]
		} else {
			aligned[i] = ""
		}
	}
	return aligned
}

/* =========================================================
   SUBMIT PIPELINE
========================================================= */

// Submit menjalankan seluruh pipeline dalam SATU transaksi:
// buat submission → batch insert jawaban → auto-grade.
// Catatan: hanya eksistensi quiz yang dicek di sini — enrollment, is_active,
// dan duplicate-submission TIDAK dicek (berbeda dengan preview).
func (s *SubmissionService) Submit(ctx context.Context, in SubmitQuizInput) (uuid.UUID, *GradingSummary, error) {
	var quiz model.QuizModel
	if err := s.DB.WithContext(ctx).First(&quiz, "id = ?", in.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return uuid.Nil, nil, err
	}

	var questions []model.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_id = ?", in.QuizID).
		Order("order_number ASC").
		Find(&questions).Error; err != nil {
		return uuid.Nil, nil, err
	}

	aligned := AlignAnswers(questions, in.RawAnswers)

	var (
		submissionID uuid.UUID
		summary      *GradingSummary
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission := model.QuizSubmissionModel{
			QuizID:           in.QuizID,
			StudentID:        in.StudentID,
			TimeTakenMinutes: in.TimeTakenMinutes,
			IsCompleted:      true,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		submissionID = submission.ID

		if len(questions) > 0 {
			answers := make([]model.QuizAnswerModel, 0, len(questions))
			for i, q := range questions {
				answers = append(answers, model.QuizAnswerModel{
					SubmissionID:  submission.ID,
					QuestionID:    q.ID,
					StudentAnswer: aligned[i],
				})
			}
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}

		graded, err := NewGradingService(tx).AutoGrade(ctx, submission.ID)
		if err != nil {
			return err
		}
		summary = graded
		return nil
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	log.Printf("[SubmissionService] Submit done. quiz_id=%s student_id=%s submission_id=%s answers=%d",
		in.QuizID, in.StudentID, submissionID, len(aligned))

	return submissionID, summary, nil
}

/* =========================================================
   READS
========================================================= */

func (s *SubmissionService) GetByID(ctx context.Context, submissionID uuid.UUID) (*model.QuizSubmissionModel, error) {
	var submission model.QuizSubmissionModel
	if err := s.DB.WithContext(ctx).First(&submission, "id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return nil, err
	}
	return &submission, nil
}

func (s *SubmissionService) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.QuizSubmissionModel, error) {
	var submissions []model.QuizSubmissionModel
	err := s.DB.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (s *SubmissionService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.QuizSubmissionModel, error) {
	var submissions []model.QuizSubmissionModel
	err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// HasSubmitted cek apakah student sudah pernah submit quiz ini (soft rule).
func (s *SubmissionService) HasSubmitted(ctx context.Context, studentID, quizID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.QuizSubmissionModel{}).
		Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Count(&count).Error
	return count > 0, err
}

// AnswerDetail adalah satu baris detail jawaban untuk review guru.
// is_correct dihitung ulang naif (lower-case equality) untuk tampilan.
type AnswerDetail struct {
	QuestionID    uuid.UUID          `json:"question_id"`
	QuestionText  string             `json:"question_text"`
	QuestionType  model.QuestionType `json:"question_type"`
	CorrectAnswer string             `json:"correct_answer"`
	StudentAnswer string             `json:"student_answer"`
	Marks         float64            `json:"marks"`
	OrderNumber   int                `json:"order_number"`
	IsCorrect     *bool              `json:"is_correct"`
}

type SubmissionAnswerDetails struct {
	SubmissionID   uuid.UUID      `json:"submission_id"`
	QuizID         uuid.UUID      `json:"quiz_id"`
	SubmittedAt    string         `json:"submitted_at,omitempty"`
	TotalQuestions int            `json:"total_questions"`
	Answers        []AnswerDetail `json:"answers"`
}

// AnswerDetails mengembalikan detail jawaban per soal, urut order_number.
// Jawaban yang soalnya sudah terhapus tidak ikut ditampilkan.
func (s *SubmissionService) AnswerDetails(ctx context.Context, submissionID uuid.UUID) (*SubmissionAnswerDetails, error) {
	submission, err := s.GetByID(ctx, submissionID)
	if err != nil {
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

	details := make([]AnswerDetail, 0, len(answers))
	for _, ans := range answers {
		q, ok := questionByID[ans.QuestionID]
		if !ok {
			continue
		}
		var isCorrect *bool
		if q.CorrectAnswer != "" {
			v := strings.EqualFold(strings.TrimSpace(ans.StudentAnswer), strings.TrimSpace(q.CorrectAnswer))
			isCorrect = &v
		}
		details = append(details, AnswerDetail{
			QuestionID:    ans.QuestionID,
			QuestionText:  q.QuestionText,
			QuestionType:  q.QuestionType,
			CorrectAnswer: q.CorrectAnswer,
			StudentAnswer: ans.StudentAnswer,
			Marks:         q.Marks,
			OrderNumber:   q.OrderNumber,
			IsCorrect:     isCorrect,
		})
	}

	// urutkan sesuai order_number
	sort.Slice(details, func(i, j int) bool {
		return details[i].OrderNumber < details[j].OrderNumber
	})

	return &SubmissionAnswerDetails{
		SubmissionID:   submission.ID,
		QuizID:         submission.QuizID,
		SubmittedAt:    submission.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
		TotalQuestions: len(details),
		Answers:        details,
	}, nil
}
