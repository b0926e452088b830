package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
	summarySvc service.SummaryService
}

func NewCommentHandler(commentSvc service.CommentService, summarySvc service.SummaryService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		summarySvc: summarySvc,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.commentSvc.CreateComment(c.Request.Context(), userID, reviewID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := h.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *CommentHandler) LikeComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := h.commentSvc.LikeComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *CommentHandler) CancelLikeComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := h.commentSvc.CancelLikeComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *CommentHandler) GetCommentSummary(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	summary, err := h.summarySvc.GetCommentSummary(c.Request.Context(), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
