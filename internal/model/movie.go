package model

import (
	"time"
)

type Movie struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Director    string    `gorm:"type:varchar(255)" json:"director"`
	ReleaseYear int       `gorm:"not null;default:0" json:"releaseYear"`
	IsDeleted   bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Movie) TableName() string {
	return "movies"
}
