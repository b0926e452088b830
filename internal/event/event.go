package event

// 事件名，也是订阅主题
const (
	MovieReviewed   = "movie.reviewed"
	ReviewLiked     = "review.liked"
	ReviewCommented = "review.commented"
	ReviewDeleted   = "review.deleted"
	CommentLiked    = "comment.liked"
)

// Event 领域事件。事件是不可变值，只携带目标实体 ID 和带符号的增量，
// 在权威表的变更确定落库后发布，由聚合处理器异步消费。
type Event interface {
	Name() string
}

// MovieReviewedEvent 影评新增/删除，影响电影汇总行。
// 新增时 ReviewDelta=+1、RatingDelta=+rating，删除时取反。
type MovieReviewedEvent struct {
	MovieID     uint64
	ReviewDelta int64
	RatingDelta int64
}

func (MovieReviewedEvent) Name() string { return MovieReviewed }

// ReviewLikedEvent 影评点赞/取消点赞，Delta 为 +1/-1
type ReviewLikedEvent struct {
	ReviewID uint64
	Delta    int64
}

func (ReviewLikedEvent) Name() string { return ReviewLiked }

// ReviewCommentedEvent 影评下评论新增/删除，Delta 为 +1/-1
type ReviewCommentedEvent struct {
	ReviewID uint64
	Delta    int64
}

func (ReviewCommentedEvent) Name() string { return ReviewCommented }

// ReviewDeletedEvent 影评被删除，热榜条目需要立即摘除
type ReviewDeletedEvent struct {
	ReviewID uint64
}

func (ReviewDeletedEvent) Name() string { return ReviewDeleted }

// CommentLikedEvent 评论点赞/取消点赞，Delta 为 +1/-1
type CommentLikedEvent struct {
	CommentID uint64
	Delta     int64
}

func (CommentLikedEvent) Name() string { return CommentLiked }
