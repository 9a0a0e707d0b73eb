package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizbot/internal/domain"
	"quizbot/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const quizColumns = `id, owner_id, topic, question, options, correct_answer, user_answer, is_correct, created_at, updated_at`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
type QuizDatabaseAdapter struct {
	db DBTX
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// SaveQuiz implements domain.QuizRepository. The store owns ID assignment;
// the generated row ID is returned.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) (int64, error) {
	model := toModelQuiz(quiz)
	query := `INSERT INTO quizzes (owner_id, topic, question, options, correct_answer, user_answer, is_correct, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		model.OwnerID,
		model.Topic,
		model.Question,
		model.Options,
		model.CorrectAnswer,
		model.UserAnswer,
		model.IsCorrect,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert quiz: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated quiz id: %w", err)
	}
	return id, nil
}

// GetQuizByID implements domain.QuizRepository. Returns (nil, nil) when no
// row matches.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	var model models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = ?`

	err := GetExecutor(ctx, a.db).GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return toDomainQuiz(&model), nil
}

// UpdateQuizAnswer implements domain.QuizRepository. Only the answer state
// is mutable after creation.
func (a *QuizDatabaseAdapter) UpdateQuizAnswer(ctx context.Context, quiz *domain.Quiz) error {
	query := `UPDATE quizzes SET user_answer = ?, is_correct = ?, updated_at = ? WHERE id = ?`

	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		quiz.UserAnswer, quiz.IsCorrect, quiz.UpdatedAt, quiz.ID)
	if err != nil {
		return fmt.Errorf("failed to update quiz answer: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("quiz %d not found for update: %w", quiz.ID, sql.ErrNoRows)
	}
	return nil
}

// ListQuizzesByOwner implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzesByOwner(ctx context.Context, ownerID string) ([]*domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE owner_id = ? ORDER BY id`

	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes by owner: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}

// CountQuizzesByOwner implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CountQuizzesByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM quizzes WHERE owner_id = ?`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count quizzes by owner: %w", err)
	}
	return count, nil
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:            quiz.ID,
		OwnerID:       quiz.OwnerID,
		Topic:         quiz.Topic,
		Question:      quiz.Question,
		Options:       models.StringSlice(quiz.Options),
		CorrectAnswer: quiz.CorrectAnswer,
		UserAnswer:    quiz.UserAnswer,
		IsCorrect:     quiz.IsCorrect,
		CreatedAt:     quiz.CreatedAt,
		UpdatedAt:     quiz.UpdatedAt,
	}
}

func toDomainQuiz(model *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:            model.ID,
		OwnerID:       model.OwnerID,
		Topic:         model.Topic,
		Question:      model.Question,
		Options:       []string(model.Options),
		CorrectAnswer: model.CorrectAnswer,
		UserAnswer:    model.UserAnswer,
		IsCorrect:     model.IsCorrect,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
