package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieSvc   service.MovieService
	summarySvc service.SummaryService
}

func NewMovieHandler(movieSvc service.MovieService, summarySvc service.SummaryService) *MovieHandler {
	return &MovieHandler{
		movieSvc:   movieSvc,
		summarySvc: summarySvc,
	}
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	movie, err := h.movieSvc.CreateMovie(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movie)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	movie, err := h.movieSvc.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movie)
}

func (h *MovieHandler) GetMovieSummary(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	summary, err := h.summarySvc.GetMovieSummary(c.Request.Context(), movieID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
