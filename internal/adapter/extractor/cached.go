package extractor

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"
)

// PathResolver is the part of Registry the cache needs to find the file on disk.
type PathResolver interface {
	domain.TextExtractor
	Resolve(path string) (string, error)
}

// CachedExtractor remembers extracted text per file version. A file version is
// its resolved path plus size and modification time.
type CachedExtractor struct {
	next   PathResolver
	cache  domain.Cache
	ttl    time.Duration
	logger *zap.Logger
}

var _ domain.TextExtractor = (*CachedExtractor)(nil)

func NewCachedExtractor(next PathResolver, c domain.Cache, ttl time.Duration, logger *zap.Logger) *CachedExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedExtractor{next: next, cache: c, ttl: ttl, logger: logger}
}

func (c *CachedExtractor) ExtractText(ctx context.Context, path string) string {
	resolved, err := c.next.Resolve(path)
	if err != nil {
		return c.next.ExtractText(ctx, path)
	}
	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return c.next.ExtractText(ctx, path)
	}

	key := cache.ExtractedTextKey(resolved, info.Size(), info.ModTime().UnixNano())
	text, err := c.cache.Get(ctx, key)
	if err == nil {
		return text
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		c.logger.Warn("Extracted text cache read failed", zap.String("path", path), zap.Error(err))
	}

	text = c.next.ExtractText(ctx, path)
	if text == "" {
		return ""
	}
	if err := c.cache.Set(ctx, key, text, c.ttl); err != nil {
		c.logger.Warn("Extracted text cache write failed", zap.String("path", path), zap.Error(err))
	}
	return text
}
