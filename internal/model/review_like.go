package model

import (
	"time"
)

type ReviewLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ReviewID  uint64    `gorm:"primaryKey;index:idx_review_id" json:"reviewId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
