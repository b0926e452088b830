package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/redis"
	"Marquee/internal/repository"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

// SummaryService 汇总读接口。返回的是最终一致的派生值，
// 带一层短 TTL 的 Redis 缓存，读侧接受有界滞后。
type SummaryService interface {
	GetMovieSummary(ctx context.Context, movieID uint64) (*dto.MovieSummaryDTO, error)
	GetReviewSummary(ctx context.Context, reviewID uint64) (*dto.ReviewSummaryDTO, error)
	GetCommentSummary(ctx context.Context, commentID uint64) (*dto.CommentSummaryDTO, error)
}

type summaryServiceImpl struct {
	summaryRepo repository.SummaryRepo
}

func NewSummaryService(summaryRepo repository.SummaryRepo) SummaryService {
	return &summaryServiceImpl{summaryRepo: summaryRepo}
}

func (s *summaryServiceImpl) GetMovieSummary(ctx context.Context, movieID uint64) (*dto.MovieSummaryDTO, error) {
	key := consts.MovieSummaryKey + dto.FormatID(movieID)

	var cached dto.MovieSummaryDTO
	if hitCache(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.summaryRepo.GetMovieSummary(ctx, movieID)
	if err != nil {
		return nil, err
	}

	out := &dto.MovieSummaryDTO{MovieID: movieID}
	if summary != nil {
		out.ReviewCount = summary.ReviewCount
		out.RatingSum = summary.RatingSum
		out.UpdatedAt = summary.UpdatedAt
		if summary.ReviewCount > 0 {
			out.AverageRating = float64(summary.RatingSum) / float64(summary.ReviewCount)
		}
	}

	putCache(ctx, key, out)
	return out, nil
}

func (s *summaryServiceImpl) GetReviewSummary(ctx context.Context, reviewID uint64) (*dto.ReviewSummaryDTO, error) {
	key := consts.ReviewSummaryKey + dto.FormatID(reviewID)

	var cached dto.ReviewSummaryDTO
	if hitCache(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.summaryRepo.GetReviewSummary(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	out := &dto.ReviewSummaryDTO{ReviewID: reviewID}
	if summary != nil {
		out.LikeCount = summary.LikeCount
		out.CommentCount = summary.CommentCount
		out.UpdatedAt = summary.UpdatedAt
	}

	putCache(ctx, key, out)
	return out, nil
}

func (s *summaryServiceImpl) GetCommentSummary(ctx context.Context, commentID uint64) (*dto.CommentSummaryDTO, error) {
	key := consts.CommentSummaryKey + dto.FormatID(commentID)

	var cached dto.CommentSummaryDTO
	if hitCache(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.summaryRepo.GetCommentSummary(ctx, commentID)
	if err != nil {
		return nil, err
	}

	out := &dto.CommentSummaryDTO{CommentID: commentID}
	if summary != nil {
		out.LikeCount = summary.LikeCount
		out.UpdatedAt = summary.UpdatedAt
	}

	putCache(ctx, key, out)
	return out, nil
}

func hitCache(ctx context.Context, key string, out interface{}) bool {
	raw, err := redis.GetValue(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func putCache(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := redis.SetWithExpiration(ctx, key, string(raw), consts.SummaryCacheExpiration); err != nil {
		log.WarnContext(ctx, "summary cache write failed", "key", key, "err", err)
	}
}
