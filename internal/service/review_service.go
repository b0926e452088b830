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

type ReviewService interface {
	CreateReview(ctx context.Context, userID, movieID uint64, req *dto.CreateReviewDTO) (*dto.ReviewDTO, error)
	DeleteReview(ctx context.Context, userID, reviewID uint64) error
	GetReview(ctx context.Context, reviewID uint64) (*dto.ReviewDTO, error)
	LikeReview(ctx context.Context, userID, reviewID uint64) error
	CancelLikeReview(ctx context.Context, userID, reviewID uint64) error
}

type reviewServiceImpl struct {
	db         *gorm.DB
	bus        *event.Bus
	movieRepo  repository.MovieRepo
	reviewRepo repository.ReviewRepo
	actionRepo repository.ReviewActionRepo
}

func NewReviewService(
	db *gorm.DB,
	bus *event.Bus,
	movieRepo repository.MovieRepo,
	reviewRepo repository.ReviewRepo,
	actionRepo repository.ReviewActionRepo,
) ReviewService {
	return &reviewServiceImpl{
		db:         db,
		bus:        bus,
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		actionRepo: actionRepo,
	}
}

// CreateReview 落库提交后才发布电影维度的增量事件，写路径不等聚合
func (s *reviewServiceImpl) CreateReview(ctx context.Context, userID, movieID uint64, req *dto.CreateReviewDTO) (*dto.ReviewDTO, error) {
	exists, err := s.movieRepo.CheckMovieExists(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMovieNotFound
	}

	review := &model.Review{
		MovieID:   movieID,
		UserID:    userID,
		Rating:    req.Rating,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		if err := s.reviewRepo.WithTx(tx).CreateReview(txCtx, review); err != nil {
			return err
		}
		s.bus.PublishAfterCommit(txCtx, event.MovieReviewedEvent{
			MovieID:     movieID,
			ReviewDelta: 1,
			RatingDelta: int64(review.Rating),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out dto.ReviewDTO
	_ = copier.Copy(&out, review)
	return &out, nil
}

// DeleteReview 软删影评。同一事务内发布电影增量回退和热榜摘除事件
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, userID, reviewID uint64) error {
	review, err := s.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != userID {
		return ErrNotOwner
	}

	return s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		rows, err := s.reviewRepo.WithTx(tx).SoftDeleteReview(txCtx, reviewID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		s.bus.PublishAfterCommit(txCtx, event.MovieReviewedEvent{
			MovieID:     review.MovieID,
			ReviewDelta: -1,
			RatingDelta: -int64(review.Rating),
		})
		s.bus.PublishAfterCommit(txCtx, event.ReviewDeletedEvent{ReviewID: reviewID})
		return nil
	})
}

func (s *reviewServiceImpl) GetReview(ctx context.Context, reviewID uint64) (*dto.ReviewDTO, error) {
	review, err := s.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	var out dto.ReviewDTO
	_ = copier.Copy(&out, review)
	return &out, nil
}

// LikeReview 唯一键兜底并发下的重复点赞，命中冲突时事务回滚、事件随之丢弃
func (s *reviewServiceImpl) LikeReview(ctx context.Context, userID, reviewID uint64) error {
	if err := s.getReviewCheck(ctx, reviewID); err != nil {
		return err
	}

	err := s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		if err := s.actionRepo.WithTx(tx).CreateReviewLike(txCtx, &model.ReviewLike{
			UserID:    userID,
			ReviewID:  reviewID,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		s.bus.PublishAfterCommit(txCtx, event.ReviewLikedEvent{ReviewID: reviewID, Delta: 1})
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

func (s *reviewServiceImpl) CancelLikeReview(ctx context.Context, userID, reviewID uint64) error {
	if err := s.getReviewCheck(ctx, reviewID); err != nil {
		return err
	}

	return s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		rows, err := s.actionRepo.WithTx(tx).DeleteReviewLike(txCtx, userID, reviewID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		s.bus.PublishAfterCommit(txCtx, event.ReviewLikedEvent{ReviewID: reviewID, Delta: -1})
		return nil
	})
}

func (s *reviewServiceImpl) getReviewCheck(ctx context.Context, reviewID uint64) error {
	_, err := s.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
