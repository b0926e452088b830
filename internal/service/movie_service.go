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

type MovieService interface {
	CreateMovie(ctx context.Context, req *dto.CreateMovieDTO) (*dto.MovieDTO, error)
	GetMovie(ctx context.Context, movieID uint64) (*dto.MovieDTO, error)
}

type movieServiceImpl struct {
	db          *gorm.DB
	bus         *event.Bus
	movieRepo   repository.MovieRepo
	summaryRepo repository.SummaryRepo
}

func NewMovieService(
	db *gorm.DB,
	bus *event.Bus,
	movieRepo repository.MovieRepo,
	summaryRepo repository.SummaryRepo,
) MovieService {
	return &movieServiceImpl{
		db:          db,
		bus:         bus,
		movieRepo:   movieRepo,
		summaryRepo: summaryRepo,
	}
}

// CreateMovie 建片时在同一事务内预建零值汇总行
func (s *movieServiceImpl) CreateMovie(ctx context.Context, req *dto.CreateMovieDTO) (*dto.MovieDTO, error) {
	movie := &model.Movie{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.bus.Transactional(ctx, s.db, func(txCtx context.Context, tx *gorm.DB) error {
		if err := s.movieRepo.WithTx(tx).CreateMovie(txCtx, movie); err != nil {
			return err
		}
		return s.summaryRepo.WithTx(tx).CreateMovieSummary(txCtx, movie.ID)
	})
	if err != nil {
		return nil, err
	}

	var out dto.MovieDTO
	_ = copier.Copy(&out, movie)
	return &out, nil
}

func (s *movieServiceImpl) GetMovie(ctx context.Context, movieID uint64) (*dto.MovieDTO, error) {
	movie, err := s.movieRepo.GetMovieByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	var out dto.MovieDTO
	_ = copier.Copy(&out, movie)
	return &out, nil
}
