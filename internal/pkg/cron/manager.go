package cron

import (
	"Marquee/internal/api/config"
	"Marquee/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	cfg                 config.JobsConfig
	movieReconcileJob   *job.MovieReconcileJob
	reviewReconcileJob  *job.ReviewReconcileJob
	commentReconcileJob *job.CommentReconcileJob
	rankingRefreshJob   *job.RankingRefreshJob
}

func NewCronManager(
	cfg config.JobsConfig,
	movieReconcileJob *job.MovieReconcileJob,
	reviewReconcileJob *job.ReviewReconcileJob,
	commentReconcileJob *job.CommentReconcileJob,
	rankingRefreshJob *job.RankingRefreshJob,
) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		cfg:                 cfg,
		movieReconcileJob:   movieReconcileJob,
		reviewReconcileJob:  reviewReconcileJob,
		commentReconcileJob: commentReconcileJob,
		rankingRefreshJob:   rankingRefreshJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.cfg.MovieReconcileCron, s.movieReconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.cfg.ReviewReconcileCron, s.reviewReconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.cfg.CommentReconcileCron, s.commentReconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.cfg.RankingRefreshCron, s.rankingRefreshJob); err != nil {
		return err
	}
	return nil
}

// RunReconcileOnce 进程启动时的一轮兜底对账
func (s *Manager) RunReconcileOnce() {
	s.movieReconcileJob.Run()
	s.reviewReconcileJob.Run()
	s.commentReconcileJob.Run()
	s.rankingRefreshJob.Run()
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
