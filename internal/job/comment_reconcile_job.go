package job

import (
	"Marquee/internal/pkg/logger"
	"Marquee/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CommentReconcileJob 评论汇总对账任务
type CommentReconcileJob struct {
	reconcileSvc service.ReconcileService
}

func NewCommentReconcileJob(reconcileSvc service.ReconcileService) *CommentReconcileJob {
	return &CommentReconcileJob{reconcileSvc: reconcileSvc}
}

func (s *CommentReconcileJob) Run() {
	traceID := "job-comment-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	report := s.reconcileSvc.ReconcileComments(ctx)
	log.InfoContext(ctx, "comment summary reconcile finished",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
}
