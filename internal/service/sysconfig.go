package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"shortly/internal/config"
	"shortly/internal/model"

	"github.com/rs/zerolog/log"
)

// ConfigService manages dynamic configuration. Values persist in MySQL and
// are mirrored into Redis so the request path (rate limiting, maintenance
// mode) reads them without touching the database. Redis being down falls
// back to the static defaults from the config file.
type ConfigService struct {
	store    StoreInterface
	cache    CacheInterface
	defaults config.RateLimitConfig
}

// NewConfigService creates a new ConfigService
func NewConfigService(store StoreInterface, cache CacheInterface, defaults config.RateLimitConfig) *ConfigService {
	return &ConfigService{
		store:    store,
		cache:    cache,
		defaults: defaults,
	}
}

// Set persists a config entry and mirrors it to Redis. The database write is
// authoritative; a failed mirror is logged and the entry takes effect on the
// request path once Redis recovers.
func (s *ConfigService) Set(ctx context.Context, req *model.ConfigUpdateRequest) error {
	entry := &model.SystemConfig{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	}
	if err := s.store.SaveConfig(ctx, entry); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if err := s.cache.SetConfig(ctx, req.Key, req.Value); err != nil {
		log.Warn().Err(err).Str("key", req.Key).Msg("Failed to mirror config to Redis")
	}

	log.Info().Str("key", req.Key).Str("value", req.Value).Msg("Config updated")
	return nil
}

// List returns all persisted config entries
func (s *ConfigService) List(ctx context.Context) ([]model.SystemConfig, error) {
	return s.store.ListConfigs(ctx)
}

// RateLimit returns the current rate limit. Unset or unreadable values fall
// back to the configured defaults.
func (s *ConfigService) RateLimit(ctx context.Context) (int, time.Duration) {
	limit := s.defaults.Limit
	window := s.defaults.Window

	if v, err := s.cache.GetConfig(ctx, model.ConfigKeyRateLimitLimit); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v, err := s.cache.GetConfig(ctx, model.ConfigKeyRateLimitWindow); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			window = time.Duration(n) * time.Second
		}
	}

	return limit, window
}

// MaintenanceOn reports whether maintenance mode is switched on. Redis
// being unreachable reads as off.
func (s *ConfigService) MaintenanceOn(ctx context.Context) bool {
	v, err := s.cache.GetConfig(ctx, model.ConfigKeyMaintenanceMode)
	if err != nil {
		return false
	}
	return v == "true" || v == "1"
}

// Allow applies the fixed-window rate limit for a client IP. A cache error
// fails open: the request is allowed and the error is surfaced for logging.
func (s *ConfigService) Allow(ctx context.Context, clientIP string) (bool, error) {
	limit, window := s.RateLimit(ctx)

	count, err := s.cache.CountRequest(ctx, clientIP, window)
	if err != nil {
		return true, err
	}
	return count <= int64(limit), nil
}
