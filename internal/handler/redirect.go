package handler

import (
	"context"
	"errors"
	"net/http"

	"shortly/internal/generator"
	"shortly/internal/service"
	"shortly/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler handles short link resolution and the public stats view
type RedirectHandler struct {
	shortLinks service.ShortLinkServiceInterface
	clicks     service.ClickServiceInterface
	baseURL    string
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	shortLinks service.ShortLinkServiceInterface,
	clicks service.ClickServiceInterface,
	baseURL string,
) *RedirectHandler {
	return &RedirectHandler{
		shortLinks: shortLinks,
		clicks:     clicks,
		baseURL:    baseURL,
	}
}

// Redirect handles GET /:code
// @Summary Redirect to the target URL
// @Description Resolves a short code and redirects. Click accounting happens off the redirect path.
// @Tags shortlink
// @Param code path string true "Short code"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /{code} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	// Normalized once so dedupe markers and increments key on the same
	// canonical form the resolver uses
	code := generator.Normalize(c.Param("code"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	targetURL, err := h.shortLinks.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short link not found",
			})
			return
		}
		// Store unreachable is not the same as not-found
		log.Error().Err(err).Str("code", code).Msg("Resolution failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
		return
	}

	// Fire-and-forget: the redirect never waits on counting
	clientID := util.ClientIdentity(c.ClientIP(), c.Request.UserAgent())
	h.clicks.RecordAsync(code, clientID)

	c.Redirect(http.StatusFound, targetURL)
}

// GetStats handles GET /api/v1/stats/:code
// @Summary Get short link metadata
// @Description Returns creation time, last access and click count for a code
// @Tags shortlink
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} Response{data=model.LinkInfoResponse}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stats/{code} [get]
func (h *RedirectHandler) GetStats(c *gin.Context) {
	code := c.Param("code")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	link, err := h.shortLinks.Stats(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short link not found",
			})
			return
		}
		log.Error().Err(err).Str("code", code).Msg("Stats lookup failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    linkInfo(h.baseURL, link),
	})
}
