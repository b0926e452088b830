package repository

import (
	"Marquee/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReviewActionRepo interface {
	WithTx(tx *gorm.DB) ReviewActionRepo

	CreateReviewLike(ctx context.Context, like *model.ReviewLike) error
	DeleteReviewLike(ctx context.Context, userID, reviewID uint64) (int64, error)
	CheckReviewLikeExists(ctx context.Context, userID, reviewID uint64) (bool, error)
	GetReviewLikeCount(ctx context.Context, reviewID uint64) (int64, error)

	CreateCommentLike(ctx context.Context, like *model.CommentLike) error
	DeleteCommentLike(ctx context.Context, userID, commentID uint64) (int64, error)
	CheckCommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error)
	GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error)
}

type reviewActionRepoImpl struct {
	db *gorm.DB
}

func NewReviewActionRepo(db *gorm.DB) ReviewActionRepo {
	return &reviewActionRepoImpl{db: db}
}

func (r *reviewActionRepoImpl) WithTx(tx *gorm.DB) ReviewActionRepo {
	return &reviewActionRepoImpl{db: tx}
}

func (r *reviewActionRepoImpl) CreateReviewLike(ctx context.Context, like *model.ReviewLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteReviewLike 返回受影响行数，取消未点过的赞不产生增量
func (r *reviewActionRepoImpl) DeleteReviewLike(ctx context.Context, userID, reviewID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Delete(&model.ReviewLike{})
	return result.RowsAffected, result.Error
}

func (r *reviewActionRepoImpl) CheckReviewLikeExists(ctx context.Context, userID, reviewID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ReviewLike{}).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewActionRepoImpl) GetReviewLikeCount(ctx context.Context, reviewID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ReviewLike{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error
	return count, err
}

func (r *reviewActionRepoImpl) CreateCommentLike(ctx context.Context, like *model.CommentLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *reviewActionRepoImpl) DeleteCommentLike(ctx context.Context, userID, commentID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentLike{})
	return result.RowsAffected, result.Error
}

func (r *reviewActionRepoImpl) CheckCommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewActionRepoImpl) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
