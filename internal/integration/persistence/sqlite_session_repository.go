package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
	"github.com/eternal-wealth/toolkit/internal/integration/persistence/model"
)

// sqliteSessionRepository implements the adapter.SessionRepository interface
// on a GORM database. Each session is one row holding the workspace as JSON.
type sqliteSessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteSessionRepository creates a new database-backed session repository.
func NewSQLiteSessionRepository(db *gorm.DB, ttl time.Duration, opts ...Option) adapter.SessionRepository {
	o := applyOptions(opts)
	return &sqliteSessionRepository{
		db:  db,
		ttl: ttl,
		now: o.now,
	}
}

// Create stores a new session.
func (r *sqliteSessionRepository) Create(ctx context.Context, session *entity.Session, ws *workspace.Workspace) error {
	sessionModel, err := model.SessionFromEntity(session, ws)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Get returns the session and its workspace, refreshing its idle timer.
func (r *sqliteSessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, *workspace.Workspace, error) {
	var (
		session *entity.Session
		ws      *workspace.Workspace
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessionModel, err := r.findLive(tx, id)
		if err != nil {
			return err
		}

		now := r.now()
		if err := tx.Model(&model.SessionModel{}).
			Where("id = ?", id).
			Update("last_seen_at", now).Error; err != nil {
			return err
		}
		sessionModel.LastSeenAt = now

		session, ws, err = sessionModel.ToEntity()
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return session, ws, nil
}

// Update applies fn inside a transaction. The row version guards against a
// concurrent writer that committed between the read and the write.
func (r *sqliteSessionRepository) Update(ctx context.Context, id uuid.UUID, fn adapter.MutateFunc) (*workspace.Workspace, error) {
	var result *workspace.Workspace

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessionModel, err := r.findLive(tx, id)
		if err != nil {
			return err
		}

		_, ws, err := sessionModel.ToEntity()
		if err != nil {
			return err
		}
		if err := fn(ws); err != nil {
			return err
		}

		data, err := model.EncodeWorkspace(ws)
		if err != nil {
			return err
		}

		update := tx.Model(&model.SessionModel{}).
			Where("id = ? AND version = ?", id, sessionModel.Version).
			Updates(map[string]any{
				"workspace":    string(data),
				"version":      sessionModel.Version + 1,
				"last_seen_at": r.now(),
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return domainerror.ErrSessionConflict
		}

		result = ws
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a session.
func (r *sqliteSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND last_seen_at > ?", id, r.cutoff(r.now())).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes every session idle for at least the TTL.
func (r *sqliteSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Where("last_seen_at <= ?", r.cutoff(now)).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

// Ping checks the database connection.
func (r *sqliteSessionRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *sqliteSessionRepository) findLive(tx *gorm.DB, id uuid.UUID) (*model.SessionModel, error) {
	var sessionModel model.SessionModel
	result := tx.Where("id = ? AND last_seen_at > ?", id, r.cutoff(r.now())).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, result.Error
	}
	return &sessionModel, nil
}

func (r *sqliteSessionRepository) cutoff(now time.Time) time.Time {
	return now.Add(-r.ttl).UTC()
}
