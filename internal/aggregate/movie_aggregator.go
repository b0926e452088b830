package aggregate

import (
	"Marquee/internal/event"
	"Marquee/internal/repository"
	"context"
	log "log/slog"
)

// MovieAggregator 消费影评增删事件，把增量原子地累加到电影汇总行。
// 投递是 fire-and-forget：失败只记日志不重试，漂移交给对账任务回正。
type MovieAggregator struct {
	summaryRepo repository.SummaryRepo
}

func NewMovieAggregator(summaryRepo repository.SummaryRepo) *MovieAggregator {
	return &MovieAggregator{summaryRepo: summaryRepo}
}

func (a *MovieAggregator) Register(bus *event.Bus) {
	bus.Subscribe(event.MovieReviewed, a.onMovieReviewed)
}

func (a *MovieAggregator) onMovieReviewed(ctx context.Context, e event.Event) {
	evt, ok := e.(event.MovieReviewedEvent)
	if !ok {
		return
	}

	err := a.summaryRepo.IncrMovieSummary(ctx, evt.MovieID, evt.ReviewDelta, evt.RatingDelta)
	if err != nil {
		log.ErrorContext(ctx, "movie summary increment failed",
			"movieID", evt.MovieID,
			"reviewDelta", evt.ReviewDelta,
			"ratingDelta", evt.RatingDelta,
			"err", err)
	}
}
