package ranking

import (
	"math"
	"time"
)

// Score 热度分：likeCount / (发布至今小时数 + 2)^gravity。
// 小时数在求值时刻计算，不缓存，因此同样的输入在不同时刻分数单调下降。
// 零赞得 0 分；没有创建时间的内容无法排序，同样得 0 分。
func Score(likeCount int64, createdAt time.Time, now time.Time, gravity float64) float64 {
	if likeCount <= 0 {
		return 0
	}
	if createdAt.IsZero() {
		return 0
	}

	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	return float64(likeCount) / math.Pow(hours+2, gravity)
}
