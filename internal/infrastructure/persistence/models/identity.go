package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate root.
type UserModel struct {
	AggregateModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(30)"`
	Address      string `gorm:"type:varchar(500)"`
	City         string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"type:varchar(10)"`
	Country      string `gorm:"type:varchar(100)"`
	Role         string `gorm:"type:varchar(20);not null;default:'client'"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		Address:           m.Address,
		City:              m.City,
		PostalCode:        m.PostalCode,
		Country:           m.Country,
		Role:              identity.Role(m.Role),
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Phone = u.Phone
	m.Address = u.Address
	m.City = u.City
	m.PostalCode = u.PostalCode
	m.Country = u.Country
	m.Role = string(u.Role)
	m.IsActive = u.IsActive
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// SessionModel is the persistence model for the Session entity.
type SessionModel struct {
	BaseModel
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenID   string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	UserAgent string     `gorm:"type:varchar(500)"`
	ClientIP  string     `gorm:"type:varchar(45)"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	RevokedAt *time.Time
}

// TableName returns the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts the persistence model to a domain Session entity.
func (m *SessionModel) ToDomain() *identity.Session {
	return &identity.Session{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		TokenID:    m.TokenID,
		UserAgent:  m.UserAgent,
		ClientIP:   m.ClientIP,
		ExpiresAt:  m.ExpiresAt,
		RevokedAt:  m.RevokedAt,
	}
}

// FromDomain populates the persistence model from a domain Session entity.
func (m *SessionModel) FromDomain(s *identity.Session) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.UserID = s.UserID
	m.TokenID = s.TokenID
	m.UserAgent = s.UserAgent
	m.ClientIP = s.ClientIP
	m.ExpiresAt = s.ExpiresAt
	m.RevokedAt = s.RevokedAt
}

// SessionModelFromDomain creates a new persistence model from a domain Session entity.
func SessionModelFromDomain(s *identity.Session) *SessionModel {
	m := &SessionModel{}
	m.FromDomain(s)
	return m
}
