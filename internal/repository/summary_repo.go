package repository

import (
	"Marquee/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryRepo 汇总行的唯一写入口。
// Incr* 是存储层单条原子 upsert（insert-or-add），并发投递下不会丢更新；
// Reconcile* 是对账用的整行覆盖，把汇总行拉回权威表算出的真值。
type SummaryRepo interface {
	WithTx(tx *gorm.DB) SummaryRepo

	IncrMovieSummary(ctx context.Context, movieID uint64, reviewDelta, ratingDelta int64) error
	IncrReviewSummary(ctx context.Context, reviewID uint64, likeDelta, commentDelta int64) error
	IncrCommentSummary(ctx context.Context, commentID uint64, likeDelta int64) error

	ReconcileMovieSummary(ctx context.Context, summary *model.MovieSummary) error
	ReconcileReviewSummary(ctx context.Context, summary *model.ReviewSummary) error
	ReconcileCommentSummary(ctx context.Context, summary *model.CommentSummary) error

	GetMovieSummary(ctx context.Context, movieID uint64) (*model.MovieSummary, error)
	GetReviewSummary(ctx context.Context, reviewID uint64) (*model.ReviewSummary, error)
	GetCommentSummary(ctx context.Context, commentID uint64) (*model.CommentSummary, error)

	ListMovieIDsWithSummary(ctx context.Context) ([]uint64, error)
	ListReviewIDsWithSummary(ctx context.Context) ([]uint64, error)
	ListCommentIDsWithSummary(ctx context.Context) ([]uint64, error)

	CreateMovieSummary(ctx context.Context, movieID uint64) error
}

type summaryRepoImpl struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) SummaryRepo {
	return &summaryRepoImpl{db: db}
}

func (r *summaryRepoImpl) WithTx(tx *gorm.DB) SummaryRepo {
	return &summaryRepoImpl{db: tx}
}

// IncrMovieSummary 行不存在则以增量为初值插入，存在则在存储层做一次
// 原子的 counter = counter + delta，不走应用层读改写
func (r *summaryRepoImpl) IncrMovieSummary(ctx context.Context, movieID uint64, reviewDelta, ratingDelta int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "movie_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"review_count": gorm.Expr("review_count + ?", reviewDelta),
			"rating_sum":   gorm.Expr("rating_sum + ?", ratingDelta),
			"updated_at":   now,
		}),
	}).Create(&model.MovieSummary{
		MovieID:     movieID,
		ReviewCount: reviewDelta,
		RatingSum:   ratingDelta,
		UpdatedAt:   now,
	}).Error
}

func (r *summaryRepoImpl) IncrReviewSummary(ctx context.Context, reviewID uint64, likeDelta, commentDelta int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "review_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"like_count":    gorm.Expr("like_count + ?", likeDelta),
			"comment_count": gorm.Expr("comment_count + ?", commentDelta),
			"updated_at":    now,
		}),
	}).Create(&model.ReviewSummary{
		ReviewID:     reviewID,
		LikeCount:    likeDelta,
		CommentCount: commentDelta,
		UpdatedAt:    now,
	}).Error
}

func (r *summaryRepoImpl) IncrCommentSummary(ctx context.Context, commentID uint64, likeDelta int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "comment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"like_count": gorm.Expr("like_count + ?", likeDelta),
			"updated_at": now,
		}),
	}).Create(&model.CommentSummary{
		CommentID: commentID,
		LikeCount: likeDelta,
		UpdatedAt: now,
	}).Error
}

// ReconcileMovieSummary 整行覆盖，行不存在时顺带创建
func (r *summaryRepoImpl) ReconcileMovieSummary(ctx context.Context, summary *model.MovieSummary) error {
	summary.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"review_count", "rating_sum", "updated_at"}),
	}).Create(summary).Error
}

func (r *summaryRepoImpl) ReconcileReviewSummary(ctx context.Context, summary *model.ReviewSummary) error {
	summary.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "review_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"like_count", "comment_count", "updated_at"}),
	}).Create(summary).Error
}

func (r *summaryRepoImpl) ReconcileCommentSummary(ctx context.Context, summary *model.CommentSummary) error {
	summary.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"like_count", "updated_at"}),
	}).Create(summary).Error
}

func (r *summaryRepoImpl) GetMovieSummary(ctx context.Context, movieID uint64) (*model.MovieSummary, error) {
	var summary model.MovieSummary
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepoImpl) GetReviewSummary(ctx context.Context, reviewID uint64) (*model.ReviewSummary, error) {
	var summary model.ReviewSummary
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepoImpl) GetCommentSummary(ctx context.Context, commentID uint64) (*model.CommentSummary, error) {
	var summary model.CommentSummary
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

// ListMovieIDsWithSummary 对账只遍历已有汇总行的实体，
// 成本与“发生过互动的实体数”成正比，而不是全量目录
func (r *summaryRepoImpl) ListMovieIDsWithSummary(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.MovieSummary{}).
		Pluck("movie_id", &ids).Error
	return ids, err
}

func (r *summaryRepoImpl) ListReviewIDsWithSummary(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.ReviewSummary{}).
		Pluck("review_id", &ids).Error
	return ids, err
}

func (r *summaryRepoImpl) ListCommentIDsWithSummary(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.CommentSummary{}).
		Pluck("comment_id", &ids).Error
	return ids, err
}

// CreateMovieSummary 建片时随事务预建零值汇总行
func (r *summaryRepoImpl) CreateMovieSummary(ctx context.Context, movieID uint64) error {
	return r.db.WithContext(ctx).Create(&model.MovieSummary{
		MovieID:   movieID,
		UpdatedAt: time.Now(),
	}).Error
}
