package repository

import (
	"context"
	"errors"
	"time"

	"shortly/internal/model"
)

var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateCode is returned when an insert hits the unique index on code
	ErrDuplicateCode = errors.New("short code already exists")
	// ErrDuplicateURL is returned when an insert hits the unique index on target URL
	ErrDuplicateURL = errors.New("target URL already exists")
	// ErrCacheMiss is returned when a key is absent from the cache
	ErrCacheMiss = errors.New("cache miss")
)

// StoreInterface defines the durable identifier store operations
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
	Ping(ctx context.Context) error
	Close() error
}

// CacheInterface defines the Redis-backed cache operations
type CacheInterface interface {
	GetURL(ctx context.Context, code string) (string, error)
	PutURL(ctx context.Context, code, targetURL string, ttl time.Duration) error
	DeleteURL(ctx context.Context, code string) error
	MarkSeen(ctx context.Context, code, clientID string, bucket int64, ttl time.Duration) (bool, error)
	CountRequest(ctx context.Context, clientIP string, window time.Duration) (int64, error)
	SetConfig(ctx context.Context, key, value string) error
	GetConfig(ctx context.Context, key string) (string, error)
	Info(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close() error
}
