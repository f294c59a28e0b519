package storage

import (
	"context"
	"time"
)

// SessionRecord is one signed-in browser session. Token is the backend
// bearer credential and never leaves the server.
type SessionRecord struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Plan       string
	OfferCount int
	Token      string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// WizardRecord is the serialized wizard state of one draft in one session.
type WizardRecord struct {
	SessionID string
	DraftKey  string
	Payload   []byte
	UpdatedAt time.Time
}

// SessionStore persists browser sessions.
type SessionStore interface {
	PutSession(ctx context.Context, record SessionRecord) error
	GetSession(ctx context.Context, id string) (SessionRecord, bool, error)
	DeleteSession(ctx context.Context, id string) error
	UpdateSessionOfferCount(ctx context.Context, id string, count int) error
}

// WizardStore persists in-progress drafts keyed by session and draft key.
type WizardStore interface {
	PutWizardState(ctx context.Context, record WizardRecord) error
	GetWizardState(ctx context.Context, sessionID, draftKey string) (WizardRecord, bool, error)
	DeleteWizardState(ctx context.Context, sessionID, draftKey string) error
}

// Store is the web persistence lifecycle contract.
type Store interface {
	SessionStore
	WizardStore
	Close() error
}
