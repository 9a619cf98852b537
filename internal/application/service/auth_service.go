package service

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
	"github.com/dukaops/enterprise-api/pkg/utils"
)

// AuthService handles authentication
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User  *entity.User
	Token string
}

// Login verifies credentials against the stored bcrypt hash and issues a
// session token.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateSessionToken(user.ID, user.Username, user.Role.Name, user.Role.Permissions)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: user, Token: token}, nil
}
