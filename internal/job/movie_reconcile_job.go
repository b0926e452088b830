package job

import (
	"Marquee/internal/pkg/logger"
	"Marquee/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// MovieReconcileJob 电影汇总对账任务
type MovieReconcileJob struct {
	reconcileSvc service.ReconcileService
}

func NewMovieReconcileJob(reconcileSvc service.ReconcileService) *MovieReconcileJob {
	return &MovieReconcileJob{reconcileSvc: reconcileSvc}
}

func (s *MovieReconcileJob) Run() {
	traceID := "job-movie-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	report := s.reconcileSvc.ReconcileMovies(ctx)
	log.InfoContext(ctx, "movie summary reconcile finished",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
}
