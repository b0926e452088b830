package job

import (
	"Marquee/internal/pkg/logger"
	"Marquee/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// ReviewReconcileJob 影评汇总对账任务
type ReviewReconcileJob struct {
	reconcileSvc service.ReconcileService
}

func NewReviewReconcileJob(reconcileSvc service.ReconcileService) *ReviewReconcileJob {
	return &ReviewReconcileJob{reconcileSvc: reconcileSvc}
}

func (s *ReviewReconcileJob) Run() {
	traceID := "job-review-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	report := s.reconcileSvc.ReconcileReviews(ctx)
	log.InfoContext(ctx, "review summary reconcile finished",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
}
