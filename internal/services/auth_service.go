// File: internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/graceworks/churchos/internal/auth"
	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/invitation"
	"github.com/graceworks/churchos/internal/repository/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvitationInvalid  = errors.New("invitation code is invalid or expired")
	ErrEmailTaken         = errors.New("email is already registered")
)

// AuthService issues and validates session tokens, and onboards new
// members through invitation codes. The token carries the verified
// user id, role and branch so no handler ever trusts client-supplied
// identity values.
type AuthService struct {
	userRepo       user.UserRepository
	invitationRepo invitation.InvitationRepository
	secretKey      []byte
	logger         Logger
}

func NewAuthService(userRepo user.UserRepository, invitationRepo invitation.InvitationRepository, jwtSecretKey string, logger Logger) (*AuthService, error) {
	if userRepo == nil {
		return nil, errors.New("user repository is required")
	}
	if invitationRepo == nil {
		return nil, errors.New("invitation repository is required")
	}
	if jwtSecretKey == "" {
		return nil, errors.New("JWT secret key is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &AuthService{
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		secretKey:      []byte(jwtSecretKey),
		logger:         logger,
	}, nil
}

// Login authenticates by email and password and returns the user with
// a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	usr, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login failed", "reason", "user_not_found")
		return nil, "", ErrInvalidCredentials
	}

	if err := usr.ValidatePassword(password); err != nil {
		s.logger.Warn("login failed", "reason", "invalid_password", "user_id", usr.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken(usr, s.secretKey)
	if err != nil {
		s.logger.Error("session token generation failed", "user_id", usr.ID, "error", err)
		return nil, "", errors.New("failed to create session")
	}

	s.logger.Info("login successful", "user_id", usr.ID, "role", usr.Role)
	return usr, token, nil
}

// Register redeems an invitation code and creates the account with the
// role and branch the invitation carries. The code is single-use.
func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*domain.User, string, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	inv, err := s.invitationRepo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Warn("registration failed", "reason", "unknown_code")
		return nil, "", ErrInvitationInvalid
	}
	if !inv.Usable(time.Now()) {
		s.logger.Warn("registration failed", "reason", "code_spent_or_expired", "invitation_id", inv.ID)
		return nil, "", ErrInvitationInvalid
	}

	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	usr := &domain.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Role:     inv.Role,
		BranchID: inv.BranchID,
	}
	if err := usr.HashPassword(req.Password); err != nil {
		return nil, "", err
	}
	created, err := s.userRepo.Create(ctx, usr)
	if err != nil {
		s.logger.Error("registration failed", "email", usr.Email, "error", err)
		return nil, "", err
	}
	if err := s.invitationRepo.MarkUsed(ctx, inv.ID); err != nil {
		// The account exists; a stale invitation row is recoverable.
		s.logger.Error("failed to mark invitation used", "invitation_id", inv.ID, "error", err)
	}

	token, err := auth.GenerateSessionToken(created, s.secretKey)
	if err != nil {
		s.logger.Error("session token generation failed", "user_id", created.ID, "error", err)
		return nil, "", errors.New("failed to create session")
	}

	s.logger.Info("registration successful", "user_id", created.ID, "role", created.Role)
	return created, token, nil
}

// Validate checks a session token and returns the principal it vouches for.
func (s *AuthService) Validate(token string) (domain.Principal, error) {
	return auth.ValidateSessionToken(token, s.secretKey)
}
