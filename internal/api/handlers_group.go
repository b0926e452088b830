package api

import "Marquee/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	MovieHandler   *handler.MovieHandler
	ReviewHandler  *handler.ReviewHandler
	CommentHandler *handler.CommentHandler
}
