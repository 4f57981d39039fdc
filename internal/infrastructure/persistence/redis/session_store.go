package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/session"
	"github.com/lutongbahay/v2/internal/infrastructure/cache"
	"github.com/lutongbahay/v2/internal/ports/outbound"
)

const (
	sessionKeyPrefix = "guest:session:"
	plansKeyPrefix   = "guest:plans:"
)

// SessionStore persists guest sessions as JSON documents with a
// sliding TTL: every save refreshes the expiry horizon. The small
// session document and the plan list live under separate keys so a
// large plan never inflates the hot session document.
type SessionStore struct {
	redis  *cache.RedisClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionStore creates a Redis-backed session store. A zero ttl
// falls back to the domain default.
func NewSessionStore(redis *cache.RedisClient, ttl time.Duration, logger *zap.Logger) outbound.SessionStore {
	if ttl <= 0 {
		ttl = session.TTL
	}
	return &SessionStore{
		redis:  redis,
		ttl:    ttl,
		logger: logger.Named("session-store"),
	}
}

// Get loads a session by ID. A missing or expired session returns
// (nil, nil); absence is not an error. A present session whose plan
// key expired separately simply loads with no plans.
func (s *SessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.redis.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var doc sessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// A corrupt document is unrecoverable; treat it as expired
		s.logger.Warn("Discarding unreadable session document",
			zap.String("session_id", id),
			zap.Error(err))
		return nil, nil
	}

	doc.Plans, err = s.loadPlans(ctx, id)
	if err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

// loadPlans reads the session's plan list from its own key
func (s *SessionStore) loadPlans(ctx context.Context, id string) ([]planDocument, error) {
	data, err := s.redis.Get(ctx, plansKeyPrefix+id)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session plans: %w", err)
	}

	var plans []planDocument
	if err := json.Unmarshal(data, &plans); err != nil {
		s.logger.Warn("Discarding unreadable plan document",
			zap.String("session_id", id),
			zap.Error(err))
		return nil, nil
	}
	return plans, nil
}

// Save writes both session documents and refreshes their TTL
func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	doc := toSessionDocument(sess)
	plans := doc.Plans
	doc.Plans = nil

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKeyPrefix+sess.ID(), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	planData, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("failed to encode session plans: %w", err)
	}
	if err := s.redis.Set(ctx, plansKeyPrefix+sess.ID(), planData, s.ttl); err != nil {
		return fmt.Errorf("failed to save session plans: %w", err)
	}

	s.logger.Debug("Session saved",
		zap.String("session_id", sess.ID()),
		zap.Int("plans", len(plans)))
	return nil
}

// Delete removes a session and its plan list immediately
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Delete(ctx, sessionKeyPrefix+id, plansKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
