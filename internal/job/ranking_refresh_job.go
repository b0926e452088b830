package job

import (
	"Marquee/internal/pkg/logger"
	"Marquee/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// RankingRefreshJob 热榜全量刷新：重算近窗口内影评的热度分
type RankingRefreshJob struct {
	rankingSvc service.RankingService
}

func NewRankingRefreshJob(rankingSvc service.RankingService) *RankingRefreshJob {
	return &RankingRefreshJob{rankingSvc: rankingSvc}
}

func (s *RankingRefreshJob) Run() {
	traceID := "job-ranking-refresh-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	count, err := s.rankingSvc.RefreshRecent(ctx)
	if err != nil {
		log.ErrorContext(ctx, "ranking refresh failed", "refreshed", count, "err", err)
		return
	}
	log.InfoContext(ctx, "ranking refresh finished", "refreshed", count)
}
