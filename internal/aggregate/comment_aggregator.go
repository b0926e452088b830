package aggregate

import (
	"Marquee/internal/event"
	"Marquee/internal/repository"
	"context"
	log "log/slog"
)

// CommentAggregator 消费评论点赞事件，增量进评论汇总行
type CommentAggregator struct {
	summaryRepo repository.SummaryRepo
}

func NewCommentAggregator(summaryRepo repository.SummaryRepo) *CommentAggregator {
	return &CommentAggregator{summaryRepo: summaryRepo}
}

func (a *CommentAggregator) Register(bus *event.Bus) {
	bus.Subscribe(event.CommentLiked, a.onCommentLiked)
}

func (a *CommentAggregator) onCommentLiked(ctx context.Context, e event.Event) {
	evt, ok := e.(event.CommentLikedEvent)
	if !ok {
		return
	}

	err := a.summaryRepo.IncrCommentSummary(ctx, evt.CommentID, evt.Delta)
	if err != nil {
		log.ErrorContext(ctx, "comment summary increment failed",
			"commentID", evt.CommentID, "likeDelta", evt.Delta, "err", err)
	}
}
