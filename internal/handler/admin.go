package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shortly/internal/model"
	"shortly/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AdminHandler handles the admin configuration and link management API
type AdminHandler struct {
	admin  service.AdminServiceInterface
	config service.ConfigServiceInterface
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(admin service.AdminServiceInterface, config service.ConfigServiceInterface) *AdminHandler {
	return &AdminHandler{admin: admin, config: config}
}

// SetConfig handles POST /api/v1/admin/config
// @Summary Set a dynamic config value
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.ConfigUpdateRequest true "Config entry"
// @Success 200 {object} Response{data=model.ConfigUpdateRequest}
// @Router /api/v1/admin/config [post]
func (h *AdminHandler) SetConfig(c *gin.Context) {
	var req model.ConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.config.Set(ctx, &req); err != nil {
		log.Error().Err(err).Str("key", req.Key).Msg("Config update failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to save config",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: req})
}

// ListConfigs handles GET /api/v1/admin/config
// @Summary List dynamic config values
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=[]model.SystemConfig}
// @Router /api/v1/admin/config [get]
func (h *AdminHandler) ListConfigs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	configs, err := h.config.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Config listing failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to list configs",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: configs})
}

// ListLinks handles GET /api/v1/admin/links
// @Summary Paginated listing of all short links
// @Tags admin
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} Response{data=model.PaginatedLinks}
// @Router /api/v1/admin/links [get]
func (h *AdminHandler) ListLinks(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	page, err := h.admin.ListLinks(ctx, skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("Link listing failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to list links",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: page})
}

// TotalClicks handles GET /api/v1/admin/analytics/total_clicks
// @Summary Total clicks across all links
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Router /api/v1/admin/analytics/total_clicks [get]
func (h *AdminHandler) TotalClicks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	total, err := h.admin.TotalClicks(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Total clicks query failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to compute total clicks",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    gin.H{"total_clicks": total},
	})
}

// Deactivate handles POST /api/v1/admin/links/:code/deactivate
// @Summary Deactivate a short link
// @Description The code stops resolving but is never recycled
// @Tags admin
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/links/{code}/deactivate [post]
func (h *AdminHandler) Deactivate(c *gin.Context) {
	code := c.Param("code")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.admin.Deactivate(ctx, code); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short link not found",
			})
			return
		}
		log.Error().Err(err).Str("code", code).Msg("Deactivation failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to deactivate link",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

// Metrics handles GET /api/v1/admin/metrics
// @Summary Operational metrics snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Router /api/v1/admin/metrics [get]
func (h *AdminHandler) Metrics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	metrics, err := h.admin.Metrics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Metrics collection failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to collect metrics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: metrics})
}
