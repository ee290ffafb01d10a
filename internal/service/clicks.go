package service

import (
	"context"
	"time"

	"shortly/internal/mq"

	"github.com/rs/zerolog/log"
)

const recordTimeout = 5 * time.Second

// ClickService performs best-effort, deduplicated click accounting off the
// redirect path. Duplicate signals from the same client inside one second
// (browser retries, prefetch) collapse into a single increment via a SetNX
// marker. Every failure in this path is logged and discarded; click
// accounting never affects redirect availability or latency.
type ClickService struct {
	store     StoreInterface
	cache     CacheInterface
	publisher PublisherInterface
	dedupeTTL time.Duration

	now func() time.Time
}

// NewClickService creates a new ClickService. The publisher may be nil, in
// which case increments are applied directly instead of going through MQ.
func NewClickService(
	store StoreInterface,
	cache CacheInterface,
	publisher PublisherInterface,
	dedupeTTL time.Duration,
) *ClickService {
	if dedupeTTL <= 0 {
		dedupeTTL = 2 * time.Second
	}
	return &ClickService{
		store:     store,
		cache:     cache,
		publisher: publisher,
		dedupeTTL: dedupeTTL,
		now:       time.Now,
	}
}

// RecordAsync records a click without blocking the caller
func (c *ClickService) RecordAsync(code, clientID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := c.Record(ctx, code, clientID); err != nil {
			log.Error().Err(err).Str("code", code).Msg("Failed to record click")
		}
	}()
}

// Record deduplicates and applies one click signal. Exposed for tests and
// for callers that manage their own concurrency.
func (c *ClickService) Record(ctx context.Context, code, clientID string) error {
	bucket := c.now().Unix()

	created, err := c.cache.MarkSeen(ctx, code, clientID, bucket, c.dedupeTTL)
	if err != nil {
		// Dedupe unavailable: counting continues, duplicates may slip through
		log.Warn().Err(err).Str("code", code).Msg("Dedupe marker failed, counting anyway")
	} else if !created {
		log.Debug().Str("code", code).Str("client", clientID).Msg("Duplicate click suppressed")
		return nil
	}

	if c.publisher != nil {
		event := &mq.ClickEvent{
			Code:     code,
			ClientID: clientID,
			At:       c.now().UTC(),
		}
		return c.publisher.PublishClick(ctx, event)
	}

	updated, err := c.store.IncrementClick(ctx, code)
	if err != nil {
		return err
	}
	if !updated {
		// Link vanished or was deactivated between resolve and count
		log.Debug().Str("code", code).Msg("Click ignored, link missing or inactive")
	}
	return nil
}
