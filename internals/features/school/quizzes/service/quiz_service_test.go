package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/quizzes/model"
)

func TestQuizCreateRejectsBadWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	now := time.Now()

	// end sebelum start
	err := svc.Create(context.Background(), &model.QuizModel{
		CourseID:  uuid.New(),
		Title:     "Quiz",
		StartDate: now,
		EndDate:   now.Add(-time.Hour),
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// end == start juga ditolak
	err = svc.Create(context.Background(), &model.QuizModel{
		CourseID:  uuid.New(),
		Title:     "Quiz",
		StartDate: now,
		EndDate:   now,
	})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestQuizUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	svc := NewQuizService(db)

	updated, err := svc.Update(context.Background(), quiz.ID, map[string]any{
		"title":     "Judul Baru",
		"is_active": false,
	})
	require.NoError(t, err)

	assert.Equal(t, "Judul Baru", updated.Title)
	assert.False(t, updated.IsActive)
	// field lain tidak tersentuh
	assert.Equal(t, quiz.DurationMinutes, updated.DurationMinutes)
}

func TestAvailableForStudent(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	studentID := uuid.New()
	seedEnrollment(t, db, studentID, courseID)

	activeQuiz := seedQuiz(t, db, courseID, true)
	seedTwoQuestions(t, db, activeQuiz.ID)
	seedQuiz(t, db, courseID, false) // inactive → tidak tampil
	submittedQuiz := seedQuiz(t, db, courseID, true)
	seedTwoQuestions(t, db, submittedQuiz.ID)

	_, _, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     submittedQuiz.ID,
		StudentID:  studentID,
		RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)

	available, err := NewQuizService(db).AvailableForStudent(context.Background(), studentID, courseID)
	require.NoError(t, err)

	require.Len(t, available, 1)
	assert.Equal(t, activeQuiz.ID, available[0].ID)
}

func TestAvailableForStudentNotEnrolled(t *testing.T) {
	db := newTestDB(t)

	_, err := NewQuizService(db).AvailableForStudent(context.Background(), uuid.New(), uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestPreviewForStudent(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	studentID := uuid.New()
	seedEnrollment(t, db, studentID, courseID)

	quiz := seedQuiz(t, db, courseID, true)
	seedTwoQuestions(t, db, quiz.ID)

	preview, err := NewQuizService(db).PreviewForStudent(context.Background(), studentID, quiz.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, preview.QuestionCount)
	require.Len(t, preview.Questions, 2)

	// soal multiple_choice: opsi tampil
	mc := preview.Questions[0]
	assert.Equal(t, model.QuestionTypeMultipleChoice, mc.QuestionType)
	assert.NotNil(t, mc.OptionA)
	assert.NotNil(t, mc.OptionB)

	// soal true_false: opsi disembunyikan
	tf := preview.Questions[1]
	assert.Equal(t, model.QuestionTypeTrueFalse, tf.QuestionType)
	assert.Nil(t, tf.OptionA)
}

func TestPreviewForStudentAlreadySubmitted(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	studentID := uuid.New()
	seedEnrollment(t, db, studentID, courseID)

	quiz := seedQuiz(t, db, courseID, true)
	seedTwoQuestions(t, db, quiz.ID)

	_, _, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  studentID,
		RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)

	_, err = NewQuizService(db).PreviewForStudent(context.Background(), studentID, quiz.ID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestPreviewForStudentInactiveQuiz(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	studentID := uuid.New()
	seedEnrollment(t, db, studentID, courseID)

	quiz := seedQuiz(t, db, courseID, false)

	_, err := NewQuizService(db).PreviewForStudent(context.Background(), studentID, quiz.ID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestQuizDeleteNotFound(t *testing.T) {
	db := newTestDB(t)

	err := NewQuizService(db).Delete(context.Background(), uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
