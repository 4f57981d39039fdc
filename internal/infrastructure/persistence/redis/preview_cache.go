package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/infrastructure/cache"
	"github.com/lutongbahay/v2/internal/ports/outbound"
)

const (
	previewKeyPrefix = "preview:plan:"

	// previewTTL bounds how long an uncommitted plan is offered for
	// saving. A preview that old has been abandoned.
	previewTTL = 24 * time.Hour
)

// PreviewCache holds the single generated-but-uncommitted plan per
// authenticated user, keyed by user ID.
type PreviewCache struct {
	redis  *cache.RedisClient
	logger *zap.Logger
}

// NewPreviewCache creates a Redis-backed preview cache
func NewPreviewCache(redis *cache.RedisClient, logger *zap.Logger) outbound.PreviewCache {
	return &PreviewCache{
		redis:  redis,
		logger: logger.Named("preview-cache"),
	}
}

// Get returns the user's parked preview, (nil, nil) when none exists
func (c *PreviewCache) Get(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error) {
	data, err := c.redis.Get(ctx, previewKeyPrefix+userID.String())
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preview: %w", err)
	}

	var doc planDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		c.logger.Warn("Discarding unreadable preview document",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, nil
	}

	return doc.toDomain(), nil
}

// Set parks a freshly generated plan, replacing any previous preview
func (c *PreviewCache) Set(ctx context.Context, userID uuid.UUID, plan *mealplan.MealPlan) error {
	doc := toPlanDocument(plan)
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}

	if err := c.redis.Set(ctx, previewKeyPrefix+userID.String(), data, previewTTL); err != nil {
		return fmt.Errorf("failed to park preview: %w", err)
	}
	return nil
}

// Clear drops the user's parked preview
func (c *PreviewCache) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := c.redis.Delete(ctx, previewKeyPrefix+userID.String()); err != nil {
		return fmt.Errorf("failed to clear preview: %w", err)
	}
	return nil
}
