package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shortly/internal/model"
	"shortly/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ShortenHandler handles short link creation
type ShortenHandler struct {
	service service.ShortLinkServiceInterface
	baseURL string
}

// NewShortenHandler creates a new ShortenHandler
func NewShortenHandler(service service.ShortLinkServiceInterface, baseURL string) *ShortenHandler {
	return &ShortenHandler{service: service, baseURL: baseURL}
}

// Shorten handles POST /api/v1/shorten
// @Summary Shorten a URL
// @Description Creates a short link for the given URL, optionally under a custom alias. Repeated requests for the same URL return the same code.
// @Tags shortlink
// @Accept json
// @Produce json
// @Param request body model.ShortenRequest true "Shorten request"
// @Success 201 {object} Response{data=model.ShortenResponse}
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/shorten [post]
func (h *ShortenHandler) Shorten(c *gin.Context) {
	var req model.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	link, created, err := h.service.Create(ctx, req.URL, req.CustomAlias)
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusCreated
	message := "created"
	if !created {
		message = "exists"
	}

	c.JSON(status, Response{
		Code:    0,
		Message: message,
		Data: model.ShortenResponse{
			ShortURL:  fmt.Sprintf("%s/%s", h.baseURL, link.Code),
			Code:      link.Code,
			TargetURL: link.TargetURL,
			CreatedAt: link.CreatedAt,
		},
	})
}

func (h *ShortenHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidAlias):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrAliasTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Could not allocate a short code, please retry",
		})
	default:
		log.Error().Err(err).Msg("Shorten request failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
	}
}
