package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/shared"
)

// UserRepository defines the persistence interface for users
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// SessionRepository defines the persistence interface for sessions
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	FindByTokenID(ctx context.Context, tokenID string) (*Session, error)
	RevokeByTokenID(ctx context.Context, tokenID string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
