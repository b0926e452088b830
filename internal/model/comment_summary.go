package model

import (
	"time"
)

type CommentSummary struct {
	CommentID uint64    `gorm:"primaryKey" json:"commentId"`
	LikeCount int64     `gorm:"not null;default:0" json:"likeCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CommentSummary) TableName() string {
	return "comment_summaries"
}
