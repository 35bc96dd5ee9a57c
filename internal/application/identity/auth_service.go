package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/identity"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration, login and session management.
// Issued tokens are backed by a session row so they can be revoked
// server-side before their JWT expiry.
type AuthService struct {
	userRepo    identity.UserRepository
	sessionRepo identity.SessionRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	sessionRepo identity.SessionRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		logger:      logger,
	}
}

// ClientInfo carries request metadata recorded on the session
type ClientInfo struct {
	UserAgent string
	IP        string
}

// Register creates a customer account and logs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest, client ClientInfo) (*AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(req.Email, req.Password, req.FirstName, req.LastName, identity.RoleClient)
	if err != nil {
		return nil, err
	}
	user.Phone = req.Phone

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	return s.startSession(ctx, user, client)
}

// Login authenticates a user by email and password.
// The same error is returned for unknown emails and wrong passwords.
func (s *AuthService) Login(ctx context.Context, req LoginRequest, client ClientInfo) (*AuthResponse, error) {
	invalidCredentials := shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "This account has been disabled")
	}
	if !user.CheckPassword(req.Password) {
		return nil, invalidCredentials
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	return s.startSession(ctx, user, client)
}

// Logout revokes the session behind a token and blacklists its JTI for
// the token's remaining lifetime. Idempotent: logging out twice succeeds.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.sessionRepo.RevokeByTokenID(ctx, claims.ID); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if ttl := claims.GetRemainingTTL(); ttl > 0 {
		if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
			return err
		}
	}
	return nil
}

// CurrentUser loads the user behind validated claims
func (s *AuthService) CurrentUser(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies the non-nil fields of the request to the current
// user. Orders are unaffected: they carry their own address snapshot.
func (s *AuthService) UpdateProfile(ctx context.Context, claims *auth.Claims, req UpdateProfileRequest) (*UserResponse, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(identity.ProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// ValidateSession checks that the token behind the claims is neither
// blacklisted nor attached to a revoked or expired session.
func (s *AuthService) ValidateSession(ctx context.Context, claims *auth.Claims) error {
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return auth.ErrTokenRevoked
	}

	session, err := s.sessionRepo.FindByTokenID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return auth.ErrTokenRevoked
		}
		return err
	}
	if !session.IsActive() {
		return auth.ErrTokenRevoked
	}
	return nil
}

// RevokeAllSessions force-logs-out every session of a user
func (s *AuthService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.RevokeAllForUser(ctx, userID)
}

func (s *AuthService) startSession(ctx context.Context, user *identity.User, client ClientInfo) (*AuthResponse, error) {
	issued, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	session := identity.NewSession(user.ID, issued.TokenID, s.jwtService.TokenExpiration(), client.UserAgent, client.IP)
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:      ToUserResponse(user),
		Token:     issued.Token,
		TokenType: issued.TokenType,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}
