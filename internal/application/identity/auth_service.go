package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
	metrics    *telemetry.DomainMetrics
	now        func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
		now:        time.Now,
	}
}

// SetMetrics sets the domain metrics recorder (optional)
func (s *AuthService) SetMetrics(m *telemetry.DomainMetrics) {
	s.metrics = m
}

// Register creates a user with the User role and returns a token for it
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Email is already registered")
	}

	user, err := identity.NewUser(req.Email, req.Password, identity.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	s.metrics.RecordCreated(ctx, telemetry.EntityUser)
	return s.issueToken(user)
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email")
			s.metrics.RecordLogin(ctx, false)
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		s.metrics.RecordLogin(ctx, false)
		return nil, identity.ErrInvalidCredentials
	}

	user.RecordLogin(s.now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		// The login itself succeeded
		s.logger.Error("Failed to record last login", zap.Error(err))
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	s.metrics.RecordLogin(ctx, true)
	return s.issueToken(user)
}

// Me returns the profile of the given user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "User not found")
		}
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Logout revokes the token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return nil
	}
	ttl := input.ExpiresAt.Sub(s.now())
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
		return err
	}

	s.logger.Info("User logged out", zap.String("user_id", input.UserID.String()))
	return nil
}

// SeedAdmin creates the administrator account unless the email is taken
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debug("Admin user already present", zap.String("email", email))
		return nil
	}

	admin, err := identity.NewUser(email, password, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	s.logger.Info("Admin user seeded", zap.String("email", admin.Email))
	return nil
}

func (s *AuthService) issueToken(user *identity.User) (*AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Roles:  user.RoleNames(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, err
	}

	return &AuthResponse{
		Token:     token.AccessToken,
		ExpiresAt: token.ExpiresAt,
		Email:     user.Email,
		Roles:     user.RoleNames(),
	}, nil
}
