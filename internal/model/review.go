package model

import (
	"time"
)

type Review struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MovieID   uint64    `gorm:"not null;index:idx_movie_id" json:"movieId"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-10
	Content   string    `gorm:"type:varchar(5000);not null" json:"content"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt time.Time `gorm:"index:idx_created_at" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Review) TableName() string {
	return "reviews"
}
