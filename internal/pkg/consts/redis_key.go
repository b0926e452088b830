package consts

const (
	MovieSummaryKey   = "movie:summary:"
	ReviewSummaryKey  = "review:summary:"
	CommentSummaryKey = "comment:summary:"
	PopularReviewKey  = "review:popular"
)
