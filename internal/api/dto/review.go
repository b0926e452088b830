package dto

import "time"

type CreateReviewDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=10"`
	Content string `json:"content" binding:"required,max=5000"`
}

type ReviewDTO struct {
	ID        uint64    `json:"id"`
	MovieID   uint64    `json:"movieId"`
	UserID    uint64    `json:"userId"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewSummaryDTO struct {
	ReviewID     uint64    `json:"reviewId"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RankedReviewDTO 热榜条目，分数是读榜时刻的快照
type RankedReviewDTO struct {
	ReviewID  uint64    `json:"reviewId"`
	MovieID   uint64    `json:"movieId"`
	UserID    uint64    `json:"userId"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
