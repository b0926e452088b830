package model

import (
	"time"
)

// MovieSummary 电影维度的汇总行。只允许聚合处理器（原子自增）
// 和对账任务（整行覆盖）写入，业务代码只读。
type MovieSummary struct {
	MovieID     uint64    `gorm:"primaryKey" json:"movieId"`
	ReviewCount int64     `gorm:"not null;default:0" json:"reviewCount"`
	RatingSum   int64     `gorm:"not null;default:0" json:"ratingSum"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (MovieSummary) TableName() string {
	return "movie_summaries"
}
