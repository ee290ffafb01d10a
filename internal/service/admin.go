package service

import (
	"context"
	"fmt"
	"strings"

	"shortly/internal/generator"
	"shortly/internal/model"

	"github.com/rs/zerolog/log"
)

// AdminService provides the link listing, analytics and deactivation
// operations behind the admin API.
type AdminService struct {
	store   StoreInterface
	cache   CacheInterface
	baseURL string
}

// NewAdminService creates a new AdminService
func NewAdminService(store StoreInterface, cache CacheInterface, baseURL string) *AdminService {
	return &AdminService{
		store:   store,
		cache:   cache,
		baseURL: baseURL,
	}
}

// ListLinks returns a page of short links with their public short URLs
func (s *AdminService) ListLinks(ctx context.Context, skip, limit int) (*model.PaginatedLinks, error) {
	links, total, err := s.store.ListLinks(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	infos := make([]model.LinkInfoResponse, 0, len(links))
	for _, link := range links {
		infos = append(infos, model.LinkInfoResponse{
			ShortURL:       fmt.Sprintf("%s/%s", s.baseURL, link.Code),
			Code:           link.Code,
			TargetURL:      link.TargetURL,
			CreatedAt:      link.CreatedAt,
			LastAccessedAt: link.LastAccessedAt,
			ClickCount:     link.ClickCount,
			IsActive:       link.IsActive,
		})
	}

	return &model.PaginatedLinks{
		Total: total,
		Skip:  skip,
		Limit: limit,
		Links: infos,
	}, nil
}

// TotalClicks returns the click total across all links
func (s *AdminService) TotalClicks(ctx context.Context) (int64, error) {
	return s.store.TotalClicks(ctx)
}

// Deactivate switches a link off. The row stays (codes are never recycled)
// and the cached mapping is evicted so the change takes effect immediately.
func (s *AdminService) Deactivate(ctx context.Context, code string) error {
	code = generator.Normalize(code)

	updated, err := s.store.Deactivate(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	if !updated {
		return ErrLinkNotFound
	}

	if err := s.cache.DeleteURL(ctx, code); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("Failed to evict deactivated link from cache")
	}

	log.Info().Str("code", code).Msg("Link deactivated")
	return nil
}

// Metrics returns an operational snapshot: DB totals plus selected Redis
// INFO fields. Either side being down is reported inline, not as an error.
func (s *AdminService) Metrics(ctx context.Context) (map[string]interface{}, error) {
	dbMetrics := map[string]interface{}{}
	total, active, err := s.store.CountLinks(ctx)
	if err != nil {
		dbMetrics["error"] = err.Error()
	} else {
		dbMetrics["total_links"] = total
		dbMetrics["active_links"] = active
	}

	redisMetrics := map[string]interface{}{}
	info, err := s.cache.Info(ctx)
	if err != nil {
		redisMetrics["error"] = err.Error()
	} else {
		for _, field := range []string{"used_memory_human", "connected_clients", "keyspace_hits", "keyspace_misses"} {
			if v, ok := infoField(info, field); ok {
				redisMetrics[field] = v
			}
		}
	}

	return map[string]interface{}{
		"db":    dbMetrics,
		"redis": redisMetrics,
	}, nil
}

// infoField extracts a single "name:value" line from a Redis INFO payload
func infoField(info, name string) (string, bool) {
	for _, line := range strings.Split(info, "\r\n") {
		if v, ok := strings.CutPrefix(line, name+":"); ok {
			return strings.TrimSpace(v), true
		}
	}
	// Some servers use bare newlines
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(line, name+":"); ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
