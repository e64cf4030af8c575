package service

import (
	"context"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.BadRequestf("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindNotFound {
			// Same message as a wrong password so login never reveals
			// which accounts exist.
			return nil, domain.Unauthorizedf("invalid credentials")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.Unauthorizedf("user account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.Unauthorizedf("invalid credentials")
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		logger.ErrorContext(ctx, "failed to sign access token", "user_id", user.ID, "error", err)
		return nil, domain.Internalf("failed to generate access token")
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}
