package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"quizbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for adapter testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func quizFixture() *domain.Quiz {
	now := time.Now().Truncate(time.Second)
	return &domain.Quiz{
		OwnerID:       "owner-1",
		Topic:         "geography",
		Question:      "Capital of France?",
		Options:       []string{"Paris", "London", "Berlin", "Madrid"},
		CorrectAnswer: "Paris",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSaveQuizReturnsGeneratedID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	quiz := quizFixture()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quizzes`)).
		WithArgs(quiz.OwnerID, quiz.Topic, quiz.Question, `["Paris","London","Berlin","Madrid"]`,
			quiz.CorrectAnswer, "", false, quiz.CreatedAt, quiz.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := adapter.SaveQuiz(context.Background(), quiz)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuizPropagatesError(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quizzes`)).
		WillReturnError(errors.New("disk full"))

	_, err := adapter.SaveQuiz(context.Background(), quizFixture())
	assert.Error(t, err)
}

func TestGetQuizByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	now := time.Now().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "topic", "question", "options",
		"correct_answer", "user_answer", "is_correct", "created_at", "updated_at",
	}).AddRow(7, "owner-1", "geography", "Capital of France?",
		`["Paris","London","Berlin","Madrid"]`, "Paris", "", false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WithArgs(int64(7)).WillReturnRows(rows)

	quiz, err := adapter.GetQuizByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, int64(7), quiz.ID)
	assert.Equal(t, []string{"Paris", "London", "Berlin", "Madrid"}, quiz.Options)
	assert.Equal(t, "Paris", quiz.CorrectAnswer)
	assert.False(t, quiz.IsCorrect)
}

func TestGetQuizByIDNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)

	quiz, err := adapter.GetQuizByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, quiz)
}

func TestUpdateQuizAnswer(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	quiz := quizFixture()
	quiz.ID = 7
	quiz.Submit("Paris")

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quizzes SET`)).
		WithArgs(quiz.UserAnswer, quiz.IsCorrect, quiz.UpdatedAt, quiz.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, adapter.UpdateQuizAnswer(context.Background(), quiz))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuizAnswerNoRow(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	quiz := quizFixture()
	quiz.ID = 12345
	quiz.Submit("Paris")

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quizzes SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.UpdateQuizAnswer(context.Background(), quiz)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListQuizzesByOwner(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	now := time.Now().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "topic", "question", "options",
		"correct_answer", "user_answer", "is_correct", "created_at", "updated_at",
	}).
		AddRow(1, "owner-1", "go", "Q1", `["a","b","c","d"]`, "a", "a", true, now, now).
		AddRow(2, "owner-1", "go", "Q2", `["a","b","c","d"]`, "b", "", false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WithArgs("owner-1").WillReturnRows(rows)

	quizzes, err := adapter.ListQuizzesByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, int64(1), quizzes[0].ID)
	assert.True(t, quizzes[0].IsCorrect)
	assert.Equal(t, int64(2), quizzes[1].ID)
}

func TestCountQuizzesByOwner(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM quizzes`)).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := adapter.CountQuizzesByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
}
