// Package model defines storage models for the persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// SessionModel represents the sessions table in the database.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Workspace  string    `gorm:"type:text;not null"` // JSON WorkspaceDocument
	Version    int64     `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the SessionModel.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts a SessionModel to a domain Session and its workspace.
func (m *SessionModel) ToEntity() (*entity.Session, *workspace.Workspace, error) {
	ws, err := DecodeWorkspace([]byte(m.Workspace))
	if err != nil {
		return nil, nil, err
	}

	return &entity.Session{
		ID:         m.ID,
		CreatedAt:  m.CreatedAt,
		LastSeenAt: m.LastSeenAt,
	}, ws, nil
}

// SessionFromEntity creates a SessionModel from a domain Session and its workspace.
func SessionFromEntity(session *entity.Session, ws *workspace.Workspace) (*SessionModel, error) {
	data, err := EncodeWorkspace(ws)
	if err != nil {
		return nil, err
	}

	return &SessionModel{
		ID:         session.ID,
		Workspace:  string(data),
		CreatedAt:  session.CreatedAt,
		LastSeenAt: session.LastSeenAt,
	}, nil
}

// SessionDocument is the JSON value stored per session key in redis.
type SessionDocument struct {
	ID         uuid.UUID         `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	LastSeenAt time.Time         `json:"last_seen_at"`
	Workspace  WorkspaceDocument `json:"workspace"`
}

// SessionDocumentFromEntity creates a SessionDocument from a domain Session and its workspace.
func SessionDocumentFromEntity(session *entity.Session, ws *workspace.Workspace) *SessionDocument {
	return &SessionDocument{
		ID:         session.ID,
		CreatedAt:  session.CreatedAt,
		LastSeenAt: session.LastSeenAt,
		Workspace:  *WorkspaceFromEntity(ws),
	}
}

// ToEntity converts a SessionDocument to a domain Session and its workspace.
func (d *SessionDocument) ToEntity() (*entity.Session, *workspace.Workspace) {
	return &entity.Session{
		ID:         d.ID,
		CreatedAt:  d.CreatedAt,
		LastSeenAt: d.LastSeenAt,
	}, d.Workspace.ToEntity()
}

// EncodeWorkspace serializes a workspace to JSON.
func EncodeWorkspace(ws *workspace.Workspace) ([]byte, error) {
	data, err := json.Marshal(WorkspaceFromEntity(ws))
	if err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}
	return data, nil
}

// DecodeWorkspace deserializes a workspace from JSON.
func DecodeWorkspace(data []byte) (*workspace.Workspace, error) {
	var doc WorkspaceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode workspace: %w", err)
	}
	return doc.ToEntity(), nil
}
