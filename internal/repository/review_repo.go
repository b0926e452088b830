package repository

import (
	"Marquee/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ReviewRepo interface {
	WithTx(tx *gorm.DB) ReviewRepo
	CreateReview(ctx context.Context, review *model.Review) error
	GetReviewByID(ctx context.Context, reviewID uint64) (*model.Review, error)
	GetReviewsByIDs(ctx context.Context, reviewIDs []uint64) ([]*model.Review, error)
	SoftDeleteReview(ctx context.Context, reviewID uint64) (int64, error)
	ListReviewsCreatedSince(ctx context.Context, since time.Time) ([]*model.Review, error)

	GetReviewCountByMovieID(ctx context.Context, movieID uint64) (int64, error)
	GetRatingSumByMovieID(ctx context.Context, movieID uint64) (int64, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &reviewRepoImpl{db: db}
}

func (r *reviewRepoImpl) WithTx(tx *gorm.DB) ReviewRepo {
	return &reviewRepoImpl{db: tx}
}

func (r *reviewRepoImpl) CreateReview(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepoImpl) GetReviewByID(ctx context.Context, reviewID uint64) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", reviewID, false).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepoImpl) GetReviewsByIDs(ctx context.Context, reviewIDs []uint64) ([]*model.Review, error) {
	reviews := make([]*model.Review, 0, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return reviews, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_deleted = ?", reviewIDs, false).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// SoftDeleteReview 软删影评，返回受影响行数，重复删除不再发事件
func (r *reviewRepoImpl) SoftDeleteReview(ctx context.Context, reviewID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ? AND is_deleted = ?", reviewID, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

// ListReviewsCreatedSince 取时间窗口内创建的未删除影评，供热榜全量刷新
func (r *reviewRepoImpl) ListReviewsCreatedSince(ctx context.Context, since time.Time) ([]*model.Review, error) {
	reviews := make([]*model.Review, 0)
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND is_deleted = ?", since, false).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepoImpl) GetReviewCountByMovieID(ctx context.Context, movieID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("movie_id = ? AND is_deleted = ?", movieID, false).
		Count(&count).Error
	return count, err
}

func (r *reviewRepoImpl) GetRatingSumByMovieID(ctx context.Context, movieID uint64) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("movie_id = ? AND is_deleted = ?", movieID, false).
		Select("COALESCE(SUM(rating), 0)").
		Scan(&sum).Error
	return sum, err
}
