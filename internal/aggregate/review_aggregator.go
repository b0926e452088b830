package aggregate

import (
	"Marquee/internal/event"
	"Marquee/internal/repository"
	"Marquee/internal/service"
	"context"
	log "log/slog"
)

// ReviewAggregator 消费影评互动事件：点赞/评论增量进影评汇总行，
// 点赞变化顺带驱动热榜分数重算，删除事件直接摘榜
type ReviewAggregator struct {
	summaryRepo repository.SummaryRepo
	rankingSvc  service.RankingService
}

func NewReviewAggregator(summaryRepo repository.SummaryRepo, rankingSvc service.RankingService) *ReviewAggregator {
	return &ReviewAggregator{
		summaryRepo: summaryRepo,
		rankingSvc:  rankingSvc,
	}
}

func (a *ReviewAggregator) Register(bus *event.Bus) {
	bus.Subscribe(event.ReviewLiked, a.onReviewLiked)
	bus.Subscribe(event.ReviewCommented, a.onReviewCommented)
	bus.Subscribe(event.ReviewDeleted, a.onReviewDeleted)
}

func (a *ReviewAggregator) onReviewLiked(ctx context.Context, e event.Event) {
	evt, ok := e.(event.ReviewLikedEvent)
	if !ok {
		return
	}

	err := a.summaryRepo.IncrReviewSummary(ctx, evt.ReviewID, evt.Delta, 0)
	if err != nil {
		log.ErrorContext(ctx, "review summary increment failed",
			"reviewID", evt.ReviewID, "likeDelta", evt.Delta, "err", err)
		return
	}

	if err := a.rankingSvc.UpdateReviewScore(ctx, evt.ReviewID); err != nil {
		log.ErrorContext(ctx, "review score update failed", "reviewID", evt.ReviewID, "err", err)
	}
}

func (a *ReviewAggregator) onReviewCommented(ctx context.Context, e event.Event) {
	evt, ok := e.(event.ReviewCommentedEvent)
	if !ok {
		return
	}

	err := a.summaryRepo.IncrReviewSummary(ctx, evt.ReviewID, 0, evt.Delta)
	if err != nil {
		log.ErrorContext(ctx, "review summary increment failed",
			"reviewID", evt.ReviewID, "commentDelta", evt.Delta, "err", err)
	}
}

func (a *ReviewAggregator) onReviewDeleted(ctx context.Context, e event.Event) {
	evt, ok := e.(event.ReviewDeletedEvent)
	if !ok {
		return
	}

	if err := a.rankingSvc.RemoveReview(ctx, evt.ReviewID); err != nil {
		log.ErrorContext(ctx, "review ranking remove failed", "reviewID", evt.ReviewID, "err", err)
	}
}
