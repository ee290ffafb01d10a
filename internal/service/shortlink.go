package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortly/internal/generator"
	"shortly/internal/model"
	"shortly/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidURL is returned when the target URL is empty
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidAlias is returned when a custom alias fails validation
	ErrInvalidAlias = errors.New("invalid custom alias")
	// ErrAliasTaken is returned when a custom alias is already mapped
	ErrAliasTaken = errors.New("custom alias already in use")
	// ErrLinkNotFound is returned when a code does not resolve
	ErrLinkNotFound = errors.New("short link not found")
	// ErrCodeSpaceExhausted is returned when code generation keeps colliding.
	// Operational alarm condition, not a user validation error.
	ErrCodeSpaceExhausted = errors.New("could not generate a unique code")
)

// ShortLinkService ties generation, the store and the cache together. The
// store's unique constraints are the final arbiter for every conflict; all
// pre-checks here are optimizations. Cache failures never fail a request.
type ShortLinkService struct {
	gen         *generator.Generator
	store       StoreInterface
	cache       CacheInterface
	cacheTTL    time.Duration
	maxAttempts int
}

// NewShortLinkService creates a new ShortLinkService
func NewShortLinkService(
	store StoreInterface,
	cache CacheInterface,
	gen *generator.Generator,
	cacheTTL time.Duration,
	maxAttempts int,
) *ShortLinkService {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &ShortLinkService{
		gen:         gen,
		store:       store,
		cache:       cache,
		cacheTTL:    cacheTTL,
		maxAttempts: maxAttempts,
	}
}

// Create shortens a URL. With a custom alias the alias must be free; without
// one the call is idempotent: the same URL always yields the same code, even
// under concurrent duplicate requests. The returned bool is true when a new
// row was created.
func (s *ShortLinkService) Create(ctx context.Context, targetURL, customAlias string) (*model.ShortLink, bool, error) {
	if targetURL == "" {
		return nil, false, ErrInvalidURL
	}

	if customAlias != "" {
		return s.createWithAlias(ctx, targetURL, customAlias)
	}

	// Idempotency: return the existing mapping if the URL is already known.
	// A deactivated mapping is still the canonical one (codes are never
	// recycled) but must not re-enter the resolution cache.
	existing, err := s.store.FindByURL(ctx, targetURL)
	if err == nil {
		if existing.IsActive {
			s.populateCache(ctx, existing.Code, existing.TargetURL)
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up URL: %w", err)
	}

	return s.createGenerated(ctx, targetURL)
}

func (s *ShortLinkService) createWithAlias(ctx context.Context, targetURL, alias string) (*model.ShortLink, bool, error) {
	alias = generator.Normalize(alias)
	if !generator.Valid(alias) {
		return nil, false, ErrInvalidAlias
	}

	// Pre-check is a fast path only; the unique index decides races
	_, err := s.store.FindByCode(ctx, alias)
	if err == nil {
		return nil, false, ErrAliasTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to check alias: %w", err)
	}

	link := &model.ShortLink{
		Code:      alias,
		TargetURL: targetURL,
		IsActive:  true,
	}
	err = s.store.Insert(ctx, link)
	switch {
	case err == nil:
		s.populateCache(ctx, link.Code, link.TargetURL)
		return link, true, nil
	case errors.Is(err, repository.ErrDuplicateCode):
		// Lost the insert race for this alias
		return nil, false, ErrAliasTaken
	case errors.Is(err, repository.ErrDuplicateURL):
		// URL uniqueness is enforced, so a URL that already has a code keeps
		// it; the requested alias is not honored.
		return s.refetchByURL(ctx, targetURL, err)
	default:
		return nil, false, fmt.Errorf("failed to insert short link: %w", err)
	}
}

func (s *ShortLinkService) createGenerated(ctx context.Context, targetURL string) (*model.ShortLink, bool, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		link := &model.ShortLink{
			Code:      s.gen.Generate(),
			TargetURL: targetURL,
			IsActive:  true,
		}

		err := s.store.Insert(ctx, link)
		switch {
		case err == nil:
			s.populateCache(ctx, link.Code, link.TargetURL)
			return link, true, nil
		case errors.Is(err, repository.ErrDuplicateCode):
			log.Warn().
				Str("code", link.Code).
				Int("attempt", attempt).
				Msg("Generated code collided, retrying")
			continue
		case errors.Is(err, repository.ErrDuplicateURL):
			// Lost the idempotency race to a concurrent request for the
			// same URL; its row is the canonical one.
			return s.refetchByURL(ctx, targetURL, err)
		default:
			return nil, false, fmt.Errorf("failed to insert short link: %w", err)
		}
	}

	log.Error().
		Int("attempts", s.maxAttempts).
		Msg("Code generation exhausted retries")
	return nil, false, ErrCodeSpaceExhausted
}

func (s *ShortLinkService) refetchByURL(ctx context.Context, targetURL string, cause error) (*model.ShortLink, bool, error) {
	existing, err := s.store.FindByURL(ctx, targetURL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to re-fetch after URL conflict: %w (conflict: %v)", err, cause)
	}
	if existing.IsActive {
		s.populateCache(ctx, existing.Code, existing.TargetURL)
	}
	return existing, false, nil
}

// Resolve returns the target URL for a code via cache-then-store lookup.
// A cache failure degrades to a store lookup; a store failure is returned to
// the caller and must not be conflated with not-found.
func (s *ShortLinkService) Resolve(ctx context.Context, code string) (string, error) {
	code = generator.Normalize(code)
	if !generator.Valid(code) {
		return "", ErrLinkNotFound
	}

	targetURL, err := s.cache.GetURL(ctx, code)
	if err == nil {
		return targetURL, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		log.Warn().Err(err).Str("code", code).Msg("Cache read failed, falling through to store")
	}

	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrLinkNotFound
		}
		return "", fmt.Errorf("failed to resolve code: %w", err)
	}
	if !link.IsActive {
		return "", ErrLinkNotFound
	}

	s.populateCache(ctx, link.Code, link.TargetURL)

	return link.TargetURL, nil
}

// Stats returns the stored metadata for a code, active or not
func (s *ShortLinkService) Stats(ctx context.Context, code string) (*model.ShortLink, error) {
	code = generator.Normalize(code)
	if !generator.Valid(code) {
		return nil, ErrLinkNotFound
	}

	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return link, nil
}

// populateCache writes through to the cache, logging and swallowing failures
func (s *ShortLinkService) populateCache(ctx context.Context, code, targetURL string) {
	if err := s.cache.PutURL(ctx, code, targetURL, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("Failed to populate cache")
	}
}
