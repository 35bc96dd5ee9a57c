package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/shared"
)

// Session is a server-side record of an issued login token.
// Revoking the row invalidates the token before its JWT expiry.
type Session struct {
	shared.BaseEntity
	UserID    uuid.UUID
	TokenID   string
	UserAgent string
	ClientIP  string
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// NewSession creates a session for an issued token
func NewSession(userID uuid.UUID, tokenID string, ttl time.Duration, userAgent, clientIP string) *Session {
	return &Session{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		TokenID:    tokenID,
		UserAgent:  userAgent,
		ClientIP:   clientIP,
		ExpiresAt:  time.Now().Add(ttl),
	}
}

// IsActive returns true if the session is neither revoked nor expired
func (s *Session) IsActive() bool {
	return s.RevokedAt == nil && time.Now().Before(s.ExpiresAt)
}

// Revoke marks the session as revoked. Idempotent.
func (s *Session) Revoke() {
	if s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
}
