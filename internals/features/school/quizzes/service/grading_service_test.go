package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

func TestIsAnswerCorrect(t *testing.T) {
	tests := []struct {
		name          string
		studentAnswer string
		correctAnswer string
		questionType  model.QuestionType
		want          bool
	}{
		{"multiple choice trim dan case-insensitive", " a ", "A", model.QuestionTypeMultipleChoice, true},
		{"multiple choice salah", "B", "A", model.QuestionTypeMultipleChoice, false},
		{"true/false beda kapital", "TRUE", "true", model.QuestionTypeTrueFalse, true},
		{"true/false salah", "false", "true", model.QuestionTypeTrueFalse, false},
		{"text beda kapital + spasi", "  Jakarta ", "jakarta", model.QuestionTypeText, true},
		{"text salah", "Bandung", "Jakarta", model.QuestionTypeText, false},
		{"jawaban kosong", "", "A", model.QuestionTypeMultipleChoice, false},
		{"tipe tak dikenal selalu salah", "A", "A", model.QuestionType("essay"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAnswerCorrect(tt.studentAnswer, tt.correctAnswer, tt.questionType))
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	assert.InDelta(t, 33.33, CalculatePercentage(1.0, 3.0), 0.01)
	assert.InDelta(t, 100.0, CalculatePercentage(3.0, 3.0), 0.01)

	// guard pembagi nol
	assert.Equal(t, 0.0, CalculatePercentage(0, 0))
	assert.Equal(t, 0.0, CalculatePercentage(5, 0))

	// tanpa clamping: boleh > 100
	assert.InDelta(t, 125.0, CalculatePercentage(5.0, 4.0), 0.01)
}

func TestCalculateGrade(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{85, "A"},
		{84.99, "B+"},
		{80, "B+"},
		{75, "B"},
		{70, "C+"},
		{65, "C"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateGrade(tt.percentage), "percentage=%v", tt.percentage)
	}
}

func TestAutoGradeSubmissionNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradingService(db)

	_, err := svc.AutoGrade(context.Background(), uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestAutoGradeSkipsDeletedQuestion(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	questions := seedTwoQuestions(t, db, quiz.ID)

	submission := model.QuizSubmissionModel{
		QuizID:      quiz.ID,
		StudentID:   uuid.New(),
		IsCompleted: true,
	}
	require.NoError(t, db.Create(&submission).Error)

	answers := []model.QuizAnswerModel{
		{SubmissionID: submission.ID, QuestionID: questions[0].ID, StudentAnswer: "a"},
		// jawaban untuk soal yang sudah tidak ada di DB
		{SubmissionID: submission.ID, QuestionID: uuid.New(), StudentAnswer: "true"},
	}
	require.NoError(t, db.Create(&answers).Error)

	summary, err := NewGradingService(db).AutoGrade(context.Background(), submission.ID)
	require.NoError(t, err)

	// hanya soal pertama yang dihitung: 1.0 dari total 1.0
	assert.Equal(t, 1.0, summary.MarksObtained)
	assert.Equal(t, 1.0, summary.TotalMarks)
	assert.InDelta(t, 100.0, summary.Percentage, 0.01)
	assert.Equal(t, "A+", summary.Grade)
}

func TestManualGradeFlagsOnly(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	submissionID, summary, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"a", "false"},
	})
	require.NoError(t, err)

	feedback := "Perlu belajar lagi"
	result, err := NewGradingService(db).ManualGrade(context.Background(), submissionID, &feedback, nil)
	require.NoError(t, err)

	// tanpa override: nilai tidak berubah, hanya flag + feedback
	assert.True(t, result.GradedByTeacher)
	assert.NotNil(t, result.GradedAt)
	require.NotNil(t, result.Feedback)
	assert.Equal(t, feedback, *result.Feedback)
	assert.Equal(t, summary.MarksObtained, result.MarksObtained)
	assert.Equal(t, summary.Grade, result.Grade)
}

func TestManualGradeOverrideMarks(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	submissionID, _, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"a", "false"},
	})
	require.NoError(t, err)

	override := 2.5
	result, err := NewGradingService(db).ManualGrade(context.Background(), submissionID, nil, &override)
	require.NoError(t, err)

	// persentase dihitung dari snapshot total_marks (3.0)
	assert.Equal(t, 2.5, result.MarksObtained)
	assert.Equal(t, 3.0, result.TotalMarks)
	assert.InDelta(t, 83.33, result.Percentage, 0.01)
	assert.Equal(t, "B+", result.Grade)
	assert.True(t, result.GradedByTeacher)
	assert.Nil(t, result.Feedback)
}

func TestManualGradeOverrideAboveTotal(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	submissionID, _, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"a", "true"},
	})
	require.NoError(t, err)

	// override di atas total: tidak di-clamp
	override := 4.5
	result, err := NewGradingService(db).ManualGrade(context.Background(), submissionID, nil, &override)
	require.NoError(t, err)

	assert.InDelta(t, 150.0, result.Percentage, 0.01)
	assert.Equal(t, "A+", result.Grade)
}

func TestManualGradeResultNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewGradingService(db).ManualGrade(context.Background(), uuid.New(), nil, nil)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
