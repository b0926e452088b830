package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/util"
	"Marquee/internal/ranking"
	"Marquee/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// RankingService 热榜引擎。分数永远由当前点赞数和内容年龄重算，
// 榜单存储只是派生缓存；增量更新走事件，全量刷新走定时任务。
type RankingService interface {
	UpdateReviewScore(ctx context.Context, reviewID uint64) error
	RemoveReview(ctx context.Context, reviewID uint64) error
	RefreshRecent(ctx context.Context) (int, error)
	GetPopularReviews(ctx context.Context, limit int64) ([]*dto.RankedReviewDTO, error)
}

type rankingServiceImpl struct {
	store       ranking.Store
	reviewRepo  repository.ReviewRepo
	summaryRepo repository.SummaryRepo
	gravity     float64
	window      time.Duration
	maxLimit    int64
	now         func() time.Time
}

func NewRankingService(
	store ranking.Store,
	reviewRepo repository.ReviewRepo,
	summaryRepo repository.SummaryRepo,
	gravity float64,
	windowDays int,
	maxLimit int64,
) RankingService {
	if gravity <= 1 {
		gravity = consts.DefaultGravity
	}
	if windowDays <= 0 {
		windowDays = consts.DefaultRankingWindowDays
	}
	if maxLimit <= 0 {
		maxLimit = consts.DefaultRankingLimit
	}
	return &rankingServiceImpl{
		store:       store,
		reviewRepo:  reviewRepo,
		summaryRepo: summaryRepo,
		gravity:     gravity,
		window:      time.Duration(windowDays) * 24 * time.Hour,
		maxLimit:    maxLimit,
		now:         time.Now,
	}
}

// UpdateReviewScore 点赞数变化后的增量重算。影评已经不在了就直接摘榜，
// 已删除的内容无论分数多高都不允许出现在榜上
func (s *rankingServiceImpl) UpdateReviewScore(ctx context.Context, reviewID uint64) error {
	review, err := s.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.store.Remove(ctx, consts.PopularReviewKey, util.UInt64ToStr(reviewID))
		}
		return err
	}

	likeCount, err := s.currentLikeCount(ctx, reviewID)
	if err != nil {
		return err
	}

	score := ranking.Score(likeCount, review.CreatedAt, s.now(), s.gravity)
	return s.store.Upsert(ctx, consts.PopularReviewKey, util.UInt64ToStr(reviewID), score)
}

func (s *rankingServiceImpl) RemoveReview(ctx context.Context, reviewID uint64) error {
	return s.store.Remove(ctx, consts.PopularReviewKey, util.UInt64ToStr(reviewID))
}

// RefreshRecent 全量刷新近窗口内创建的影评分数。窗口外的内容视为
// 已衰减出榜，不再主动清理。返回刷新的条数
func (s *rankingServiceImpl) RefreshRecent(ctx context.Context) (int, error) {
	since := s.now().Add(-s.window)
	reviews, err := s.reviewRepo.ListReviewsCreatedSince(ctx, since)
	if err != nil {
		return 0, err
	}

	entries := make([]ranking.Entry, 0, len(reviews))
	for _, review := range reviews {
		likeCount, err := s.currentLikeCount(ctx, review.ID)
		if err != nil {
			return len(entries), err
		}
		entries = append(entries, ranking.Entry{
			Member: util.UInt64ToStr(review.ID),
			Score:  ranking.Score(likeCount, review.CreatedAt, s.now(), s.gravity),
		})
	}

	if err := s.store.UpsertBatch(ctx, consts.PopularReviewKey, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// GetPopularReviews 读榜并回表补全内容，已删除的影评在读侧再过滤一次
func (s *rankingServiceImpl) GetPopularReviews(ctx context.Context, limit int64) ([]*dto.RankedReviewDTO, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	entries, err := s.store.TopN(ctx, consts.PopularReviewKey, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(entries))
	scores := make(map[uint64]float64, len(entries))
	for _, e := range entries {
		id, err := strconv.ParseUint(e.Member, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		scores[id] = e.Score
	}

	reviews, err := s.reviewRepo.GetReviewsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*dto.RankedReviewDTO, len(reviews))
	for _, review := range reviews {
		byID[review.ID] = &dto.RankedReviewDTO{
			ReviewID:  review.ID,
			MovieID:   review.MovieID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Content:   review.Content,
			Score:     scores[review.ID],
			CreatedAt: review.CreatedAt,
		}
	}

	out := make([]*dto.RankedReviewDTO, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *rankingServiceImpl) currentLikeCount(ctx context.Context, reviewID uint64) (int64, error) {
	summary, err := s.summaryRepo.GetReviewSummary(ctx, reviewID)
	if err != nil {
		return 0, err
	}
	if summary == nil {
		return 0, nil
	}
	return summary.LikeCount, nil
}
