package domain

import (
	"context"
	"time"
)

// Quiz represents a generated multiple-choice question in the domain.
// Options always has exactly 4 entries at creation time. UserAnswer stays
// empty and IsCorrect false until an answer is submitted; Submit is the only
// transition and there is no way back to the unanswered state.
type Quiz struct {
	ID            int64
	OwnerID       string
	Topic         string
	Question      string
	Options       []string
	CorrectAnswer string
	UserAnswer    string
	IsCorrect     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewQuiz creates an unanswered Quiz from an extracted candidate.
func NewQuiz(ownerID, topic string, candidate QuizCandidate) *Quiz {
	now := time.Now()
	return &Quiz{
		OwnerID:       ownerID,
		Topic:         topic,
		Question:      candidate.Question,
		Options:       candidate.Options,
		CorrectAnswer: candidate.Answer,
		UserAnswer:    "",
		IsCorrect:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Submit records the user's answer. Grading is exact string equality:
// case and surrounding whitespace both count. Last writer wins on
// concurrent submissions for the same quiz.
func (q *Quiz) Submit(userAnswer string) {
	q.UserAnswer = userAnswer
	q.IsCorrect = userAnswer == q.CorrectAnswer
	q.UpdatedAt = time.Now()
}

// Describe records that a description was generated for (topic, owner).
// The generated prose itself is intentionally not persisted; it is only
// returned to the caller.
type Describe struct {
	ID        int64
	OwnerID   string
	Topic     string
	CreatedAt time.Time
}

// NewDescribe creates a Describe record for a generation event.
func NewDescribe(ownerID, topic string) *Describe {
	return &Describe{
		OwnerID:   ownerID,
		Topic:     topic,
		CreatedAt: time.Now(),
	}
}

// QuizCandidate is a decoded-but-not-yet-persisted quiz question extracted
// from model output.
type QuizCandidate struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// OwnerStats aggregates generation activity for one owner.
type OwnerStats struct {
	OwnerID          string `json:"owner_id"`
	QuestionsCovered int64  `json:"questions_covered"`
	TopicsCovered    int64  `json:"topics_covered"`
}

// CompletionClient sends a prompt to the external chat-completion endpoint
// and returns the raw response body. One outbound call per invocation,
// no retries, no caching.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// QuizRepository is the persistence contract for quizzes. Save assigns and
// returns the generated ID. GetQuizByID returns (nil, nil) when no row
// matches.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz *Quiz) (int64, error)
	GetQuizByID(ctx context.Context, id int64) (*Quiz, error)
	UpdateQuizAnswer(ctx context.Context, quiz *Quiz) error
	ListQuizzesByOwner(ctx context.Context, ownerID string) ([]*Quiz, error)
	CountQuizzesByOwner(ctx context.Context, ownerID string) (int64, error)
}

// DescribeRepository is the persistence contract for describe records.
type DescribeRepository interface {
	SaveDescribe(ctx context.Context, describe *Describe) (int64, error)
	ListDescribesByOwner(ctx context.Context, ownerID string) ([]*Describe, error)
	CountDescribesByOwner(ctx context.Context, ownerID string) (int64, error)
}

// TransactionManager runs fn inside a database transaction. Repository
// methods invoked with the context passed to fn join that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
