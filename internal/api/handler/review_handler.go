package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc  service.ReviewService
	summarySvc service.SummaryService
	rankingSvc service.RankingService
}

func NewReviewHandler(
	reviewSvc service.ReviewService,
	summarySvc service.SummaryService,
	rankingSvc service.RankingService,
) *ReviewHandler {
	return &ReviewHandler{
		reviewSvc:  reviewSvc,
		summarySvc: summarySvc,
		rankingSvc: rankingSvc,
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	review, err := h.reviewSvc.CreateReview(c.Request.Context(), userID, movieID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
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

	if err := h.reviewSvc.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	review, err := h.reviewSvc.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

func (h *ReviewHandler) LikeReview(c *gin.Context) {
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

	if err := h.reviewSvc.LikeReview(c.Request.Context(), userID, reviewID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *ReviewHandler) CancelLikeReview(c *gin.Context) {
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

	if err := h.reviewSvc.CancelLikeReview(c.Request.Context(), userID, reviewID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *ReviewHandler) GetReviewSummary(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	summary, err := h.summarySvc.GetReviewSummary(c.Request.Context(), reviewID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

func (h *ReviewHandler) GetPopularReviews(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	reviews, err := h.rankingSvc.GetPopularReviews(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reviews)
}
