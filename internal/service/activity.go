package service

import (
	"context"
	"encoding/json"
	"time"

	"quizbot/internal/domain"
	"quizbot/internal/dto"
	"quizbot/internal/logger"

	"go.uber.org/zap"
)

// StatsCachePrefix is the cache key prefix for owner stats entries.
const StatsCachePrefix = "stats:"

// StatsCacheTTL bounds how stale the cached counters may get.
const StatsCacheTTL = 5 * time.Minute

// ActivityService exposes an owner's generation history and aggregate stats.
type ActivityService interface {
	ListQuizzes(ctx context.Context, ownerID string) ([]dto.QuizResponse, error)
	ListDescribes(ctx context.Context, ownerID string) ([]dto.DescribeResponse, error)
	GetOwnerStats(ctx context.Context, ownerID string) (*dto.OwnerStatsResponse, error)
}

type activityService struct {
	quizRepo     domain.QuizRepository
	describeRepo domain.DescribeRepository
	cache        domain.Cache
}

// NewActivityService creates a new instance of activityService. cache may be
// nil, in which case stats are recomputed on every call.
func NewActivityService(
	quizRepo domain.QuizRepository,
	describeRepo domain.DescribeRepository,
	cache domain.Cache,
) ActivityService {
	return &activityService{
		quizRepo:     quizRepo,
		describeRepo: describeRepo,
		cache:        cache,
	}
}

// ListQuizzes implements ActivityService
func (s *activityService) ListQuizzes(ctx context.Context, ownerID string) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.ListQuizzesByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}

	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, toQuizResponse(quiz))
	}
	return responses, nil
}

// ListDescribes implements ActivityService. Only topic and owner were
// persisted, so the description field stays empty here.
func (s *activityService) ListDescribes(ctx context.Context, ownerID string) ([]dto.DescribeResponse, error) {
	describes, err := s.describeRepo.ListDescribesByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list describes", err)
	}

	responses := make([]dto.DescribeResponse, 0, len(describes))
	for _, describe := range describes {
		responses = append(responses, dto.DescribeResponse{
			Topic:   describe.Topic,
			OwnerID: describe.OwnerID,
		})
	}
	return responses, nil
}

// GetOwnerStats implements ActivityService. The counters are cached with a
// short TTL; cache failures only log and fall through to the database.
func (s *activityService) GetOwnerStats(ctx context.Context, ownerID string) (*dto.OwnerStatsResponse, error) {
	cacheKey := StatsCachePrefix + ownerID

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var stats dto.OwnerStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &stats); unmarshalErr == nil {
				return &stats, nil
			}
			logger.Get().Warn("Discarding unreadable stats cache entry",
				zap.String("owner_id", ownerID))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Error("Failed to read stats cache",
				zap.Error(err), zap.String("owner_id", ownerID))
		}
	}

	quizCount, err := s.quizRepo.CountQuizzesByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to count quizzes", err)
	}
	describeCount, err := s.describeRepo.CountDescribesByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to count describes", err)
	}

	stats := &dto.OwnerStatsResponse{
		OwnerID:          ownerID,
		QuestionsCovered: quizCount,
		TopicsCovered:    describeCount,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if setErr := s.cache.Set(ctx, cacheKey, string(encoded), StatsCacheTTL); setErr != nil {
				logger.Get().Error("Failed to write stats cache",
					zap.Error(setErr), zap.String("owner_id", ownerID))
			}
		}
	}

	return stats, nil
}
