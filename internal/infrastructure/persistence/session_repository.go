package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/identity"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSessionRepository implements identity.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Save creates or updates a session
func (r *GormSessionRepository) Save(ctx context.Context, session *identity.Session) error {
	model := models.SessionModelFromDomain(session)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByTokenID finds a session by its JWT token ID
func (r *GormSessionRepository) FindByTokenID(ctx context.Context, tokenID string) (*identity.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).First(&model, "token_id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// RevokeByTokenID marks a session as revoked
func (r *GormSessionRepository) RevokeByTokenID(ctx context.Context, tokenID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("token_id = ? AND revoked_at IS NULL", tokenID).
		Update("revoked_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// RevokeAllForUser revokes every active session of a user
func (r *GormSessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now()).Error
}

// DeleteExpired removes sessions whose expiry has passed
func (r *GormSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.SessionModel{})
	return result.RowsAffected, result.Error
}

var _ identity.SessionRepository = (*GormSessionRepository)(nil)
