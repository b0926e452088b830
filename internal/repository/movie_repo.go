package repository

import (
	"Marquee/internal/model"
	"context"

	"gorm.io/gorm"
)

type MovieRepo interface {
	WithTx(tx *gorm.DB) MovieRepo
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovieByID(ctx context.Context, movieID uint64) (*model.Movie, error)
	CheckMovieExists(ctx context.Context, movieID uint64) (bool, error)
}

type movieRepoImpl struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) MovieRepo {
	return &movieRepoImpl{db: db}
}

func (r *movieRepoImpl) WithTx(tx *gorm.DB) MovieRepo {
	return &movieRepoImpl{db: tx}
}

func (r *movieRepoImpl) CreateMovie(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepoImpl) GetMovieByID(ctx context.Context, movieID uint64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", movieID, false).
		First(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepoImpl) CheckMovieExists(ctx context.Context, movieID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("id = ? AND is_deleted = ?", movieID, false).
		Count(&count).Error
	return count > 0, err
}
