package dto

import "time"

type CreateMovieDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Director    string `json:"director" binding:"max=255"`
	ReleaseYear int    `json:"releaseYear" binding:"omitempty,min=1888"`
}

type MovieDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	ReleaseYear int       `json:"releaseYear"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MovieSummaryDTO 电影汇总读模型，均分由 ratingSum/reviewCount 派生
type MovieSummaryDTO struct {
	MovieID       uint64    `json:"movieId"`
	ReviewCount   int64     `json:"reviewCount"`
	RatingSum     int64     `json:"ratingSum"`
	AverageRating float64   `json:"averageRating"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
