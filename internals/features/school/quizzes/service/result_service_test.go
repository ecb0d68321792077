package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultGetBySubmissionNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewResultService(db).GetBySubmission(context.Background(), uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestResultListByQuiz(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, quiz.ID)

	otherQuiz := seedQuiz(t, db, uuid.New(), true)
	seedTwoQuestions(t, db, otherQuiz.ID)

	svc := NewSubmissionService(db)
	for _, in := range []SubmitQuizInput{
		{QuizID: quiz.ID, StudentID: uuid.New(), RawAnswers: []string{"A", "true"}},
		{QuizID: quiz.ID, StudentID: uuid.New(), RawAnswers: []string{"B", "false"}},
		{QuizID: otherQuiz.ID, StudentID: uuid.New(), RawAnswers: []string{"A"}},
	} {
		_, _, err := svc.Submit(context.Background(), in)
		require.NoError(t, err)
	}

	results, err := NewResultService(db).ListByQuiz(context.Background(), quiz.ID)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestResultListByStudentAndCourse(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	studentID := uuid.New()

	quiz := seedQuiz(t, db, courseID, true)
	seedTwoQuestions(t, db, quiz.ID)
	quizLain := seedQuiz(t, db, uuid.New(), true) // course lain
	seedTwoQuestions(t, db, quizLain.ID)

	svc := NewSubmissionService(db)
	_, _, err := svc.Submit(context.Background(), SubmitQuizInput{
		QuizID: quiz.ID, StudentID: studentID, RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)
	_, _, err = svc.Submit(context.Background(), SubmitQuizInput{
		QuizID: quizLain.ID, StudentID: studentID, RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)

	results, err := NewResultService(db).ListByStudentAndCourse(context.Background(), studentID, courseID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A+", results[0].Grade)
}
