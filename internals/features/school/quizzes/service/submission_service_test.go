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

func TestParseRawAnswers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"per baris", "A\ntrue\nJakarta", []string{"A", "true", "Jakarta"}},
		{"per koma", "A, true, Jakarta", []string{"A", "true", "Jakarta"}},
		{"satu jawaban", "Jakarta", []string{"Jakarta"}},
		{"newline menang atas koma", "a, b\nc", []string{"a, b", "c"}},
		{"trim per item", "  A \n  true  ", []string{"A", "true"}},
		{"kosong", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRawAnswers(tt.raw))
		})
	}
}

func TestAlignAnswers(t *testing.T) {
	questions := []model.QuizQuestionModel{
		{OrderNumber: 1}, {OrderNumber: 2}, {OrderNumber: 3},
	}

	// pas
	assert.Equal(t, []string{"a", "b", "c"}, AlignAnswers(questions, []string{"a", "b", "c"}))
	// kurang → dipad string kosong
	assert.Equal(t, []string{"a", "", ""}, AlignAnswers(questions, []string{"a"}))
	// lebih → sisanya dibuang
	assert.Equal(t, []string{"a", "b", "c"}, AlignAnswers(questions, []string{"a", "b", "c", "d", "e"}))
	// tanpa soal → kosong
	assert.Empty(t, AlignAnswers(nil, []string{"a"}))
}

func TestSubmitAutoGrades(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	studentID := uuid.New()
	minutes := 12
	submissionID, summary, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:           quiz.ID,
		StudentID:        studentID,
		RawAnswers:       []string{"a", "false"},
		TimeTakenMinutes: &minutes,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, submissionID)

	// soal 1 benar (a vs A), soal 2 salah → 1.0 dari 3.0
	assert.Equal(t, 1.0, summary.MarksObtained)
	assert.Equal(t, 3.0, summary.TotalMarks)
	assert.InDelta(t, 33.33, summary.Percentage, 0.01)
	assert.Equal(t, "F", summary.Grade)

	var submission model.QuizSubmissionModel
	require.NoError(t, db.First(&submission, "id = ?", submissionID).Error)
	assert.True(t, submission.IsCompleted)
	require.NotNil(t, submission.TimeTakenMinutes)
	assert.Equal(t, 12, *submission.TimeTakenMinutes)

	var answers []model.QuizAnswerModel
	require.NoError(t, db.Where("submission_id = ?", submissionID).Find(&answers).Error)
	require.Len(t, answers, 2)

	var result model.QuizResultModel
	require.NoError(t, db.First(&result, "submission_id = ?", submissionID).Error)
	assert.False(t, result.GradedByTeacher)
	assert.Equal(t, "F", result.Grade)
}

func TestSubmitPadsMissingAnswers(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	// hanya jawab soal pertama; soal kedua dianggap string kosong
	_, summary, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"A"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, summary.MarksObtained)
	assert.Equal(t, 3.0, summary.TotalMarks)
}

func TestSubmitExtraAnswersDiscarded(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	submissionID, summary, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"A", "true", "extra", "extra2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, summary.MarksObtained)
	assert.Equal(t, "A+", summary.Grade)

	var count int64
	require.NoError(t, db.Model(&model.QuizAnswerModel{}).
		Where("submission_id = ?", submissionID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitDuplicateAccepted(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)
	studentID := uuid.New()

	// satu-submission-per-student adalah soft rule (pre-check di preview),
	// Submit sendiri tidak menolak duplikat
	svc := NewSubmissionService(db)
	firstID, _, err := svc.Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  studentID,
		RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)

	secondID, _, err := svc.Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  studentID,
		RawAnswers: []string{"B", "false"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	var count int64
	require.NoError(t, db.Model(&model.QuizSubmissionModel{}).
		Where("student_id = ? AND quiz_id = ?", studentID, quiz.ID).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitInactiveQuizAccepted(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), false)
	seedTwoQuestions(t, db, quiz.ID)

	// Submit hanya cek eksistensi quiz: is_active/enrollment tidak difilter
	// (berbeda dengan preview/available)
	_, summary, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.MarksObtained)
}

func TestSubmitQuizNotFound(t *testing.T) {
	db := newTestDB(t)

	_, _, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:    uuid.New(),
		StudentID: uuid.New(),
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestSubmitQuizWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)

	// quiz kosong tetap boleh di-submit: 0/0 → 0% → F
	_, summary, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"A"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.TotalMarks)
	assert.Equal(t, 0.0, summary.Percentage)
	assert.Equal(t, "F", summary.Grade)
}

func TestHasSubmitted(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)
	studentID := uuid.New()

	svc := NewSubmissionService(db)

	submitted, err := svc.HasSubmitted(context.Background(), studentID, quiz.ID)
	require.NoError(t, err)
	assert.False(t, submitted)

	_, _, err = svc.Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  studentID,
		RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)

	submitted, err = svc.HasSubmitted(context.Background(), studentID, quiz.ID)
	require.NoError(t, err)
	assert.True(t, submitted)
}

func TestAnswerDetails(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	questions := seedTwoQuestions(t, db, quiz.ID)

	svc := NewSubmissionService(db)
	submissionID, _, err := svc.Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"a", "false"},
	})
	require.NoError(t, err)

	details, err := svc.AnswerDetails(context.Background(), submissionID)
	require.NoError(t, err)

	assert.Equal(t, quiz.ID, details.QuizID)
	require.Len(t, details.Answers, 2)
	assert.Equal(t, 2, details.TotalQuestions)

	// urut sesuai order_number
	assert.Equal(t, questions[0].ID, details.Answers[0].QuestionID)
	assert.Equal(t, 1, details.Answers[0].OrderNumber)
	require.NotNil(t, details.Answers[0].IsCorrect)
	assert.True(t, *details.Answers[0].IsCorrect)
	require.NotNil(t, details.Answers[1].IsCorrect)
	assert.False(t, *details.Answers[1].IsCorrect)

	// soal terhapus tidak ikut ditampilkan
	require.NoError(t, db.Delete(&model.QuizQuestionModel{}, "id = ?", questions[1].ID).Error)
	details, err = svc.AnswerDetails(context.Background(), submissionID)
	require.NoError(t, err)
	assert.Len(t, details.Answers, 1)
}
