package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	"sekolahku_backend/internals/features/school/quizzes/model"
)

/* =========================================================
   SERVICE
========================================================= */

type QuizService struct {
	DB *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{DB: db}
}

/* =========================================================
   CRUD
========================================================= */

// Create menolak quiz dengan end_date <= start_date.
func (s *QuizService) Create(ctx context.Context, quiz *model.QuizModel) error {
	if !quiz.EndDate.After(quiz.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date harus setelah start date")
	}
	return s.DB.WithContext(ctx).Create(quiz).Error
}

func (s *QuizService) GetByID(ctx context.Context, quizID uuid.UUID) (*model.QuizModel, error) {
	var quiz model.QuizModel
	if err := s.DB.WithContext(ctx).First(&quiz, "id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.QuizModel, error) {
	var quizzes []model.QuizModel
	err := s.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// Update menerapkan partial update: hanya field pada map yang disentuh.
func (s *QuizService) Update(ctx context.Context, quizID uuid.UUID, updates map[string]any) (*model.QuizModel, error) {
	quiz, err := s.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).
			Model(&model.QuizModel{}).
			Where("id = ?", quizID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.DB.WithContext(ctx).First(quiz, "id = ?", quizID).Error; err != nil {
			return nil, err
		}
	}
	return quiz, nil
}

// Delete menghapus quiz; soal & submission ikut terhapus (cascade).
func (s *QuizService) Delete(ctx context.Context, quizID uuid.UUID) error {
	if _, err := s.GetByID(ctx, quizID); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(&model.QuizModel{}, "id = ?", quizID).Error
}

/* =========================================================
   STUDENT VIEWS
========================================================= */

func (s *QuizService) ensureEnrolled(ctx context.Context, studentID, courseID uuid.UUID) error {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&enrollmentModel.EnrollmentModel{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Student tidak terdaftar di course ini")
	}
	return nil
}

// AvailableForStudent: quiz aktif yang belum pernah di-submit student.
// Window start/end sengaja TIDAK difilter di sini (perilaku terdokumentasi;
// pemanggil yang butuh enforcement window harus menambah sendiri).
func (s *QuizService) AvailableForStudent(ctx context.Context, studentID, courseID uuid.UUID) ([]model.QuizModel, error) {
	if err := s.ensureEnrolled(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	quizzes, err := s.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	submissionSvc := NewSubmissionService(s.DB)
	available := make([]model.QuizModel, 0, len(quizzes))
	for _, quiz := range quizzes {
		if !quiz.IsActive {
			continue
		}
		submitted, err := submissionSvc.HasSubmitted(ctx, studentID, quiz.ID)
		if err != nil {
			return nil, err
		}
		if !submitted {
			available = append(available, quiz)
		}
	}
	return available, nil
}

// QuizPreviewQuestion: soal tanpa kunci jawaban; opsi hanya utk multiple_choice.
type QuizPreviewQuestion struct {
	ID           uuid.UUID          `json:"id"`
	QuestionText string             `json:"question_text"`
	QuestionType model.QuestionType `json:"question_type"`
	OptionA      *string            `json:"option_a"`
	OptionB      *string            `json:"option_b"`
	OptionC      *string            `json:"option_c"`
	OptionD      *string            `json:"option_d"`
	Marks        float64            `json:"marks"`
	OrderNumber  int                `json:"order_number"`
}

type QuizPreview struct {
	QuestionCount int                   `json:"question_count"`
	Questions     []QuizPreviewQuestion `json:"questions"`
}

// PreviewForStudent: cek enrollment, belum submit, dan quiz aktif,
// lalu kembalikan daftar soal tanpa correct_answer.
func (s *QuizService) PreviewForStudent(ctx context.Context, studentID, quizID uuid.UUID) (*QuizPreview, error) {
	quiz, err := s.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEnrolled(ctx, studentID, quiz.CourseID); err != nil {
		return nil, err
	}

	submitted, err := NewSubmissionService(s.DB).HasSubmitted(ctx, studentID, quizID)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, fiber.NewError(fiber.StatusConflict, "Quiz sudah pernah di-submit")
	}

	if !quiz.IsActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Quiz tidak aktif")
	}

	var questions []model.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("order_number ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	preview := &QuizPreview{
		QuestionCount: len(questions),
		Questions:     make([]QuizPreviewQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		pq := QuizPreviewQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Marks:        q.Marks,
			OrderNumber:  q.OrderNumber,
		}
		if q.IsMultipleChoice() {
			pq.OptionA, pq.OptionB, pq.OptionC, pq.OptionD = q.OptionA, q.OptionB, q.OptionC, q.OptionD
		}
		preview.Questions = append(preview.Questions, pq)
	}
	return preview, nil
}
