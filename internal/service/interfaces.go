package service

import (
	"context"
	"time"

	"shortly/internal/model"
	"shortly/internal/mq"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StoreInterface defines the identifier store operations used by services
type StoreInterface interface {
	Insert(ctx context.Context, link *model.ShortLink) error
	FindByCode(ctx context.Context, code string) (*model.ShortLink, error)
	FindByURL(ctx context.Context, targetURL string) (*model.ShortLink, error)
	IncrementClick(ctx context.Context, code string) (bool, error)
	Deactivate(ctx context.Context, code string) (bool, error)
	ListLinks(ctx context.Context, offset, limit int) ([]model.ShortLink, int64, error)
	CountLinks(ctx context.Context) (total, active int64, err error)
	TotalClicks(ctx context.Context) (int64, error)
	SaveConfig(ctx context.Context, cfg *model.SystemConfig) error
	ListConfigs(ctx context.Context) ([]model.SystemConfig, error)
}

// CacheInterface defines the cache operations used by services
type CacheInterface interface {
	GetURL(ctx context.Context, code string) (string, error)
	PutURL(ctx context.Context, code, targetURL string, ttl time.Duration) error
	DeleteURL(ctx context.Context, code string) error
	MarkSeen(ctx context.Context, code, clientID string, bucket int64, ttl time.Duration) (bool, error)
	CountRequest(ctx context.Context, clientIP string, window time.Duration) (int64, error)
	SetConfig(ctx context.Context, key, value string) error
	GetConfig(ctx context.Context, key string) (string, error)
	Info(ctx context.Context) (string, error)
}

// PublisherInterface defines the click event publisher used by services
type PublisherInterface interface {
	PublishClick(ctx context.Context, event *mq.ClickEvent) error
}

// ShortLinkServiceInterface defines the shortening and resolution operations
type ShortLinkServiceInterface interface {
	Create(ctx context.Context, targetURL, customAlias string) (*model.ShortLink, bool, error)
	Resolve(ctx context.Context, code string) (string, error)
	Stats(ctx context.Context, code string) (*model.ShortLink, error)
}

// ClickServiceInterface defines the click accounting operations
type ClickServiceInterface interface {
	RecordAsync(code, clientID string)
}

// ConfigServiceInterface defines the dynamic configuration operations
type ConfigServiceInterface interface {
	Set(ctx context.Context, req *model.ConfigUpdateRequest) error
	List(ctx context.Context) ([]model.SystemConfig, error)
	RateLimit(ctx context.Context) (limit int, window time.Duration)
	MaintenanceOn(ctx context.Context) bool
	Allow(ctx context.Context, clientIP string) (bool, error)
}

// AdminServiceInterface defines the administrative link operations
type AdminServiceInterface interface {
	ListLinks(ctx context.Context, skip, limit int) (*model.PaginatedLinks, error)
	TotalClicks(ctx context.Context) (int64, error)
	Deactivate(ctx context.Context, code string) error
	Metrics(ctx context.Context) (map[string]interface{}, error)
}
