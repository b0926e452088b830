package repository

import (
	"Marquee/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepo interface {
	WithTx(tx *gorm.DB) CommentRepo
	CreateComment(ctx context.Context, comment *model.ReviewComment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.ReviewComment, error)
	SoftDeleteComment(ctx context.Context, commentID uint64) (int64, error)
	GetCommentCountByReviewID(ctx context.Context, reviewID uint64) (int64, error)
}

type commentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepoImpl{db: db}
}

func (r *commentRepoImpl) WithTx(tx *gorm.DB) CommentRepo {
	return &commentRepoImpl{db: tx}
}

func (r *commentRepoImpl) CreateComment(ctx context.Context, comment *model.ReviewComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.ReviewComment, error) {
	var comment model.ReviewComment
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", commentID, false).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepoImpl) SoftDeleteComment(ctx context.Context, commentID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.ReviewComment{}).
		Where("id = ? AND is_deleted = ?", commentID, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

func (r *commentRepoImpl) GetCommentCountByReviewID(ctx context.Context, reviewID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ReviewComment{}).
		Where("review_id = ? AND is_deleted = ?", reviewID, false).
		Count(&count).Error
	return count, err
}
