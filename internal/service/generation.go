package service

import (
	"context"
	"strings"

	"quizbot/internal/domain"
	"quizbot/internal/dto"
	"quizbot/internal/llm"
	"quizbot/internal/logger"

	"go.uber.org/zap"
)

// GenerationService owns the AI-backed content generation pipeline: turning
// a topic into persisted quiz questions or a topic description, and the
// answer-submission scoring transition.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, topic, difficulty string, count int, ownerID string) ([]dto.QuizResponse, error)
	GenerateDescribe(ctx context.Context, topic, ownerID string) ([]dto.DescribeResponse, error)
	SubmitAnswer(ctx context.Context, quizID int64, userAnswer string) (*dto.QuizResponse, error)
}

type generationService struct {
	completion   domain.CompletionClient
	quizRepo     domain.QuizRepository
	describeRepo domain.DescribeRepository
	txManager    domain.TransactionManager
}

// NewGenerationService creates a new instance of generationService.
func NewGenerationService(
	completion domain.CompletionClient,
	quizRepo domain.QuizRepository,
	describeRepo domain.DescribeRepository,
	txManager domain.TransactionManager,
) GenerationService {
	return &generationService{
		completion:   completion,
		quizRepo:     quizRepo,
		describeRepo: describeRepo,
		txManager:    txManager,
	}
}

// GenerateQuiz implements GenerationService. Candidates are persisted in
// extraction order inside one transaction, so a mid-batch save failure
// leaves no partial rows behind.
func (s *generationService) GenerateQuiz(ctx context.Context, topic, difficulty string, count int, ownerID string) ([]dto.QuizResponse, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, domain.NewInvalidInputError("topic is required")
	}
	if count <= 0 {
		return nil, domain.NewInvalidInputError("count must be positive")
	}

	prompt := llm.BuildQuizPrompt(topic, difficulty, count)

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidates, err := llm.ExtractQuizItems(raw)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QuizResponse, 0, len(candidates))
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, candidate := range candidates {
			quiz := domain.NewQuiz(ownerID, topic, candidate)
			id, saveErr := s.quizRepo.SaveQuiz(txCtx, quiz)
			if saveErr != nil {
				return domain.NewPersistenceError("failed to save generated quiz", saveErr)
			}
			quiz.ID = id
			responses = append(responses, toQuizResponse(quiz))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generated quiz questions",
		zap.String("topic", topic),
		zap.String("owner_id", ownerID),
		zap.Int("requested", count),
		zap.Int("generated", len(responses)),
	)
	return responses, nil
}

// GenerateDescribe implements GenerationService. Exactly one Describe record
// is persisted per call regardless of how many sentence fragments the model
// returned; the joined prose is returned to the caller but never stored.
func (s *generationService) GenerateDescribe(ctx context.Context, topic, ownerID string) ([]dto.DescribeResponse, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, domain.NewInvalidInputError("topic is required")
	}

	prompt := llm.BuildDescribePrompt(topic)

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	sentences, err := llm.ExtractDescribeSentences(raw)
	if err != nil {
		return nil, err
	}
	prose := strings.Join(sentences, " ")

	describe := domain.NewDescribe(ownerID, topic)
	if _, err := s.describeRepo.SaveDescribe(ctx, describe); err != nil {
		return nil, domain.NewPersistenceError("failed to save describe record", err)
	}

	logger.Get().Info("Generated description",
		zap.String("topic", topic),
		zap.String("owner_id", ownerID),
		zap.Int("sentences", len(sentences)),
	)
	return []dto.DescribeResponse{{
		Topic:       topic,
		OwnerID:     ownerID,
		Description: prose,
	}}, nil
}

// SubmitAnswer implements GenerationService. Grading is exact string
// equality; there is no trimming or case folding. Concurrent submissions
// for the same quiz are not serialized: last writer wins.
func (s *generationService) SubmitAnswer(ctx context.Context, quizID int64, userAnswer string) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	quiz.Submit(userAnswer)

	if err := s.quizRepo.UpdateQuizAnswer(ctx, quiz); err != nil {
		return nil, domain.NewPersistenceError("failed to save submitted answer", err)
	}

	response := toQuizResponse(quiz)
	return &response, nil
}

func toQuizResponse(quiz *domain.Quiz) dto.QuizResponse {
	return dto.QuizResponse{
		ID:            quiz.ID,
		Topic:         quiz.Topic,
		Question:      quiz.Question,
		Options:       quiz.Options,
		CorrectAnswer: quiz.CorrectAnswer,
		UserAnswer:    quiz.UserAnswer,
		IsCorrect:     quiz.IsCorrect,
	}
}
