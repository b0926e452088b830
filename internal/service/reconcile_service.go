package service

import (
	"Marquee/internal/model"
	"Marquee/internal/repository"
	"context"
	log "log/slog"

	"gorm.io/gorm"
)

// ReconcileReport 单次对账的成功/失败统计
type ReconcileReport struct {
	Total     int
	Succeeded int
	Failed    int
}

// ReconcileService 对账引擎：枚举已有汇总行的实体，逐个在独立事务里
// 按权威表重算真值并整行覆盖汇总行。它是一致性的最终兜底，
// 单个实体失败只记数跳过，不中断整轮。
type ReconcileService interface {
	SyncMovieSummary(ctx context.Context, movieID uint64) error
	SyncReviewSummary(ctx context.Context, reviewID uint64) error
	SyncCommentSummary(ctx context.Context, commentID uint64) error

	ReconcileMovies(ctx context.Context) ReconcileReport
	ReconcileReviews(ctx context.Context) ReconcileReport
	ReconcileComments(ctx context.Context) ReconcileReport
}

type reconcileServiceImpl struct {
	db          *gorm.DB
	movieRepo   repository.MovieRepo
	reviewRepo  repository.ReviewRepo
	commentRepo repository.CommentRepo
	actionRepo  repository.ReviewActionRepo
	summaryRepo repository.SummaryRepo
}

func NewReconcileService(
	db *gorm.DB,
	movieRepo repository.MovieRepo,
	reviewRepo repository.ReviewRepo,
	commentRepo repository.CommentRepo,
	actionRepo repository.ReviewActionRepo,
	summaryRepo repository.SummaryRepo,
) ReconcileService {
	return &reconcileServiceImpl{
		db:          db,
		movieRepo:   movieRepo,
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		actionRepo:  actionRepo,
		summaryRepo: summaryRepo,
	}
}

// SyncMovieSummary 重算单部电影：影评数和打分和都只统计未删除行。
// 汇总行存在而电影消失时本条同步失败，由调用方记入失败数。
func (s *reconcileServiceImpl) SyncMovieSummary(ctx context.Context, movieID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.movieRepo.WithTx(tx).GetMovieByID(ctx, movieID); err != nil {
			return err
		}

		reviewCount, err := s.reviewRepo.WithTx(tx).GetReviewCountByMovieID(ctx, movieID)
		if err != nil {
			return err
		}
		ratingSum, err := s.reviewRepo.WithTx(tx).GetRatingSumByMovieID(ctx, movieID)
		if err != nil {
			return err
		}

		return s.summaryRepo.WithTx(tx).ReconcileMovieSummary(ctx, &model.MovieSummary{
			MovieID:     movieID,
			ReviewCount: reviewCount,
			RatingSum:   ratingSum,
		})
	})
}

func (s *reconcileServiceImpl) SyncReviewSummary(ctx context.Context, reviewID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.reviewRepo.WithTx(tx).GetReviewByID(ctx, reviewID); err != nil {
			return err
		}

		likeCount, err := s.actionRepo.WithTx(tx).GetReviewLikeCount(ctx, reviewID)
		if err != nil {
			return err
		}
		commentCount, err := s.commentRepo.WithTx(tx).GetCommentCountByReviewID(ctx, reviewID)
		if err != nil {
			return err
		}

		return s.summaryRepo.WithTx(tx).ReconcileReviewSummary(ctx, &model.ReviewSummary{
			ReviewID:     reviewID,
			LikeCount:    likeCount,
			CommentCount: commentCount,
		})
	})
}

func (s *reconcileServiceImpl) SyncCommentSummary(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.commentRepo.WithTx(tx).GetCommentByID(ctx, commentID); err != nil {
			return err
		}

		likeCount, err := s.actionRepo.WithTx(tx).GetCommentLikeCount(ctx, commentID)
		if err != nil {
			return err
		}

		return s.summaryRepo.WithTx(tx).ReconcileCommentSummary(ctx, &model.CommentSummary{
			CommentID: commentID,
			LikeCount: likeCount,
		})
	})
}

func (s *reconcileServiceImpl) ReconcileMovies(ctx context.Context) ReconcileReport {
	ids, err := s.summaryRepo.ListMovieIDsWithSummary(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list movie summaries failed", "err", err)
		return ReconcileReport{}
	}
	return s.runSync(ctx, "movie", ids, s.SyncMovieSummary)
}

func (s *reconcileServiceImpl) ReconcileReviews(ctx context.Context) ReconcileReport {
	ids, err := s.summaryRepo.ListReviewIDsWithSummary(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list review summaries failed", "err", err)
		return ReconcileReport{}
	}
	return s.runSync(ctx, "review", ids, s.SyncReviewSummary)
}

func (s *reconcileServiceImpl) ReconcileComments(ctx context.Context) ReconcileReport {
	ids, err := s.summaryRepo.ListCommentIDsWithSummary(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list comment summaries failed", "err", err)
		return ReconcileReport{}
	}
	return s.runSync(ctx, "comment", ids, s.SyncCommentSummary)
}

// runSync Listing 之后的逐实体同步循环：失败记数并继续
func (s *reconcileServiceImpl) runSync(ctx context.Context, entity string, ids []uint64, sync func(context.Context, uint64) error) ReconcileReport {
	report := ReconcileReport{Total: len(ids)}
	for _, id := range ids {
		if err := sync(ctx, id); err != nil {
			report.Failed++
			log.ErrorContext(ctx, "summary sync failed", "entity", entity, "id", id, "err", err)
			continue
		}
		report.Succeeded++
	}
	return report
}
