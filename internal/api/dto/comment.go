package dto

import "time"

type CreateCommentDTO struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	ReviewID  uint64    `json:"reviewId"`
	UserID    uint64    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentSummaryDTO struct {
	CommentID uint64    `json:"commentId"`
	LikeCount int64     `json:"likeCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}
