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

func TestQuestionCreateRequiresQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	err := svc.Create(context.Background(), &model.QuizQuestionModel{
		QuizID:        uuid.New(),
		QuestionText:  "Ibu kota Indonesia?",
		QuestionType:  model.QuestionTypeText,
		CorrectAnswer: "Jakarta",
		Marks:         1,
		OrderNumber:   1,
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestQuestionListByQuizOrdered(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	svc := NewQuestionService(db)

	// sengaja dibuat tidak urut
	for _, order := range []int{3, 1, 2} {
		require.NoError(t, svc.Create(context.Background(), &model.QuizQuestionModel{
			QuizID:        quiz.ID,
			QuestionText:  "Soal",
			QuestionType:  model.QuestionTypeText,
			CorrectAnswer: "x",
			Marks:         1,
			OrderNumber:   order,
		}))
	}

	questions, err := svc.ListByQuiz(context.Background(), quiz.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 1, questions[0].OrderNumber)
	assert.Equal(t, 2, questions[1].OrderNumber)
	assert.Equal(t, 3, questions[2].OrderNumber)
}

func TestQuestionDeleteKeepsSubmittedAnswers(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, uuid.New(), true)
	questions := seedTwoQuestions(t, db, quiz.ID)

	submissionID, _, err := NewSubmissionService(db).Submit(context.Background(), SubmitQuizInput{
		QuizID:     quiz.ID,
		StudentID:  uuid.New(),
		RawAnswers: []string{"A", "true"},
	})
	require.NoError(t, err)

	require.NoError(t, NewQuestionService(db).Delete(context.Background(), questions[1].ID))

	// jawaban lama tetap ada walau soalnya hilang
	var count int64
	require.NoError(t, db.Model(&model.QuizAnswerModel{}).
		Where("submission_id = ?", submissionID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
