package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortly/internal/mocks"
	"shortly/internal/model"
	"shortly/internal/service"
)

func newRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/api/v1/stats/:code", h.GetStats)
	router.GET("/:code", h.Redirect)
	return router
}

func TestRedirectHandler_Redirect(t *testing.T) {
	t.Run("known code redirects and records a click", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		mockService.EXPECT().Resolve(gomock.Any(), "abc1234").Return("https://example.com", nil)
		mockClicks.EXPECT().RecordAsync("abc1234", gomock.Any())

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc1234", nil)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	t.Run("uppercase path records the click under the canonical code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		// Dedupe markers must not fragment across case variants of one code
		mockService.EXPECT().Resolve(gomock.Any(), "abc1234").Return("https://example.com", nil)
		mockClicks.EXPECT().RecordAsync("abc1234", gomock.Any())

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABC1234", nil)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	t.Run("unknown code returns 404 without counting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		mockService.EXPECT().Resolve(gomock.Any(), "unknown").Return("", service.ErrLinkNotFound)
		// No RecordAsync expected

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/unknown", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Short link not found", resp.Message)
	})

	t.Run("store outage returns 503, not 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		mockService.EXPECT().Resolve(gomock.Any(), "abc1234").Return("", assert.AnError)

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc1234", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRedirectHandler_GetStats(t *testing.T) {
	t.Run("existing link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mockService.EXPECT().Stats(gomock.Any(), "abc1234").Return(&model.ShortLink{
			Code:           "abc1234",
			TargetURL:      "https://example.com",
			CreatedAt:      created,
			LastAccessedAt: created,
			ClickCount:     9,
			IsActive:       true,
		}, nil)

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/abc1234", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "https://sho.rt/abc1234", data["short_url"])
		assert.Equal(t, float64(9), data["click_count"])
		assert.Equal(t, true, data["is_active"])
	})

	t.Run("unknown code returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		mockService.EXPECT().Stats(gomock.Any(), "unknown").Return(nil, service.ErrLinkNotFound)

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/unknown", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store outage returns 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockShortLinkServiceInterface(ctrl)
		mockClicks := mocks.NewMockClickServiceInterface(ctrl)

		mockService.EXPECT().Stats(gomock.Any(), "abc1234").Return(nil, assert.AnError)

		handler := NewRedirectHandler(mockService, mockClicks, testBaseURL)
		router := newRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/abc1234", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
