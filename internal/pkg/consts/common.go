package consts

import "time"

const (
	// SummaryCacheExpiration 汇总读缓存有效期，接受有界的读滞后
	SummaryCacheExpiration = 30 * time.Second
	// RatingMin / RatingMax 影评打分范围
	RatingMin = 1
	RatingMax = 10

	// DefaultGravity 热度衰减指数，越大旧内容掉得越快
	DefaultGravity = 1.8
	// DefaultRankingWindowDays 全量刷新只覆盖近窗口内创建的影评
	DefaultRankingWindowDays = 7
	// DefaultRankingLimit 热榜单次返回上限
	DefaultRankingLimit = 50
)
