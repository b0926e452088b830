package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/event"
	"Marquee/internal/model"
	"Marquee/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, reviewID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	LikeComment(ctx context.Context, userID, commentID uint64) error
	CancelLikeComment(ctx context.Context, userID, commentID uint64) error
}

type commentServiceImpl struct {
	db          *gorm.DB
	bus         *event.Bus
	reviewRepo  repository.ReviewRepo
	commentRepo repository.CommentRepo
	actionRepo  repository.ReviewActionRepo
}

func NewCommentService(
	db *gorm.DB,
	bus *event.Bus,
	reviewRepo repository.ReviewRepo,
	commentRepo repository.CommentRepo,
	actionRepo repository.ReviewActionRepo,
) CommentService {
	return &commentServiceImpl{
		db:          db,
		bus:         bus,
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		actionRepo:  actionRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID, reviewID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	if _, err := s.reviewRepo.GetReviewByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comment := &model.ReviewComment{
		ReviewID:  reviewID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).CreateComment(txCtx, comment); err != nil {
			return err
		}
		s.bus.PublishAfterCommit(txCtx, event.ReviewCommentedEvent{ReviewID: reviewID, Delta: 1})
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out dto.CommentDTO
	_ = copier.Copy(&out, comment)
	return &out, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrNotOwner
	}

	return s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		rows, err := s.commentRepo.WithTx(tx).SoftDeleteComment(txCtx, commentID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		s.bus.PublishAfterCommit(txCtx, event.ReviewCommentedEvent{ReviewID: comment.ReviewID, Delta: -1})
		return nil
	})
}

func (s *commentServiceImpl) LikeComment(ctx context.Context, userID, commentID uint64) error {
	if err := s.getCommentCheck(ctx, commentID); err != nil {
		return err
	}

	err := s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		if err := s.actionRepo.WithTx(tx).CreateCommentLike(txCtx, &model.CommentLike{
			UserID:    userID,
			CommentID: commentID,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		s.bus.PublishAfterCommit(txCtx, event.CommentLikedEvent{CommentID: commentID, Delta: 1})
		return nil
	})
	if err != nil {
		if isDuplicateError(err) {
			return ErrActionDuplicate
		}
		return err
	}
	return nil
}

func (s *commentServiceImpl) CancelLikeComment(ctx context.Context, userID, commentID uint64) error {
	if err := s.getCommentCheck(ctx, commentID); err != nil {
		return err
	}

	return s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		rows, err := s.actionRepo.WithTx(tx).DeleteCommentLike(txCtx, userID, commentID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		s.bus.PublishAfterCommit(txCtx, event.CommentLikedEvent{CommentID: commentID, Delta: -1})
		return nil
	})
}

func (s *commentServiceImpl) getCommentCheck(ctx context.Context, commentID uint64) error {
	_, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
