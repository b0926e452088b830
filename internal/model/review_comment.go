package model

import (
	"time"
)

type ReviewComment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ReviewID  uint64    `gorm:"not null;index:idx_review_id" json:"reviewId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ReviewComment) TableName() string {
	return "review_comments"
}
