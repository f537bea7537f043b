package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
	"github.com/eternal-wealth/toolkit/internal/integration/persistence/model"
)

// maxUpdateAttempts bounds optimistic retries when a watched key changes.
const maxUpdateAttempts = 5

// redisSessionRepository implements the adapter.SessionRepository interface
// on Redis. Each session is one JSON value whose key expires after the TTL;
// every access pushes the expiry forward.
type redisSessionRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSessionRepository creates a new Redis-backed session repository.
func NewRedisSessionRepository(client *redis.Client, keyPrefix string, ttl time.Duration) adapter.SessionRepository {
	return &redisSessionRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Create stores a new session.
func (r *redisSessionRepository) Create(ctx context.Context, session *entity.Session, ws *workspace.Workspace) error {
	data, err := json.Marshal(model.SessionDocumentFromEntity(session, ws))
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.key(session.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

// Get returns the session and its workspace, refreshing the key's expiry.
func (r *redisSessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, *workspace.Workspace, error) {
	key := r.key(id)

	data, err := r.client.GetEx(ctx, key, r.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil, domainerror.ErrSessionNotFound
		}
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	doc, err := decodeSessionDocument(data)
	if err != nil {
		return nil, nil, err
	}

	session, ws := doc.ToEntity()
	return session, ws, nil
}

// Update applies fn inside a WATCH/MULTI transaction, retrying when another
// writer changes the session concurrently.
func (r *redisSessionRepository) Update(ctx context.Context, id uuid.UUID, fn adapter.MutateFunc) (*workspace.Workspace, error) {
	key := r.key(id)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var result *workspace.Workspace

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return domainerror.ErrSessionNotFound
				}
				return fmt.Errorf("failed to load session: %w", err)
			}

			doc, err := decodeSessionDocument(data)
			if err != nil {
				return err
			}

			session, ws := doc.ToEntity()
			if err := fn(ws); err != nil {
				return err
			}
			session.LastSeenAt = time.Now().UTC()

			updated, err := json.Marshal(model.SessionDocumentFromEntity(session, ws))
			if err != nil {
				return fmt.Errorf("failed to encode session: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, updated, r.ttl)
				return nil
			})
			if err != nil {
				return err
			}

			result = ws
			return nil
		}, key)

		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, domainerror.ErrSessionConflict
}

// Delete removes a session.
func (r *redisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if removed == 0 {
		return domainerror.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired is a no-op: Redis expires idle session keys on its own.
func (r *redisSessionRepository) DeleteExpired(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

// Ping checks the Redis connection.
func (r *redisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisSessionRepository) key(id uuid.UUID) string {
	return r.keyPrefix + id.String()
}

func decodeSessionDocument(data []byte) (*model.SessionDocument, error) {
	var doc model.SessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &doc, nil
}
