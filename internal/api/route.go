package api

import (
	"Marquee/internal/api/middleware"
	"Marquee/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		movieGroup := apiGroup.Group("/movies")
		{
			movieGroup.POST("", group.MovieHandler.CreateMovie)
			movieGroup.GET("/:movie_id", group.MovieHandler.GetMovie)
			movieGroup.GET("/:movie_id/summary", group.MovieHandler.GetMovieSummary)
			movieGroup.POST("/:movie_id/reviews", group.ReviewHandler.CreateReview)
		}

		reviewGroup := apiGroup.Group("/reviews")
		{
			reviewGroup.GET("/popular", group.ReviewHandler.GetPopularReviews)
			reviewGroup.GET("/:review_id", group.ReviewHandler.GetReview)
			reviewGroup.DELETE("/:review_id", group.ReviewHandler.DeleteReview)
			reviewGroup.GET("/:review_id/summary", group.ReviewHandler.GetReviewSummary)
			reviewGroup.POST("/:review_id/like", group.ReviewHandler.LikeReview)
			reviewGroup.DELETE("/:review_id/like", group.ReviewHandler.CancelLikeReview)
			reviewGroup.POST("/:review_id/comments", group.CommentHandler.CreateComment)
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			commentGroup.GET("/:comment_id/summary", group.CommentHandler.GetCommentSummary)
			commentGroup.POST("/:comment_id/like", group.CommentHandler.LikeComment)
			commentGroup.DELETE("/:comment_id/like", group.CommentHandler.CancelLikeComment)
		}
	}

	return r
}
