package identity

import (
	"strings"

	"github.com/yishaq/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents a user role
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

const bcryptCost = 12

// User is the user aggregate root. The address fields are the customer's
// default shipping details; orders always carry their own snapshot, so
// editing these never rewrites order history.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	City         string
	PostalCode   string
	Country      string
	Role         Role
	IsActive     bool
}

// NewUser creates a new user with a hashed password
func NewUser(email, password, firstName, lastName string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role: "+role.String())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      string(hash),
		FirstName:         firstName,
		LastName:          lastName,
		Role:              role,
		IsActive:          true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash with a hash of the new password
func (u *User) ChangePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// ProfileUpdate carries the editable profile fields.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
	Country    *string
}

// UpdateProfile applies the non-nil fields of the update
func (u *User) UpdateProfile(update ProfileUpdate) error {
	if update.FirstName != nil {
		if strings.TrimSpace(*update.FirstName) == "" {
			return shared.NewDomainError("INVALID_INPUT", "First name cannot be empty")
		}
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.City != nil {
		u.City = *update.City
	}
	if update.PostalCode != nil {
		u.PostalCode = *update.PostalCode
	}
	if update.Country != nil {
		u.Country = *update.Country
	}
	return nil
}

// IsAdmin returns true for back-office users
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns the display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
