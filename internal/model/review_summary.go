package model

import (
	"time"
)

type ReviewSummary struct {
	ReviewID     uint64    `gorm:"primaryKey" json:"reviewId"`
	LikeCount    int64     `gorm:"not null;default:0" json:"likeCount"`
	CommentCount int64     `gorm:"not null;default:0" json:"commentCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (ReviewSummary) TableName() string {
	return "review_summaries"
}
