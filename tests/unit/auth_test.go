package unit

import (
	"context"
	"testing"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("unit-test-secret-0123456789abcdef", 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           "user-1",
			FullName:     "Test User",
			Email:        "u@test.com",
			PasswordHash: string(hash),
			IsActive:     true,
			Roles:        []string{domain.RoleClient},
		}
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "u@test.com").Return(activeUser(), nil)

		result, err := svc.Login(ctx, "u@test.com", "s3cret")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "user-1", result.User.ID)

		// Round-trip the token and check the embedded principal.
		claims, err := tokens.ValidateToken(result.AccessToken)
		assert.NoError(t, err)
		p := claims.Principal()
		assert.Equal(t, "user-1", p.ID)
		assert.True(t, p.HasRole(domain.RoleClient))
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "u@test.com").Return(activeUser(), nil)

		_, err := svc.Login(ctx, "u@test.com", "wrong")
		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("Unknown email yields the same error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.NotFoundf("user not found"))

		_, err := svc.Login(ctx, "nobody@test.com", "whatever")
		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("Disabled account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		disabled := activeUser()
		disabled.IsActive = false
		userRepo.On("GetByEmail", ctx, "u@test.com").Return(disabled, nil)

		_, err := svc.Login(ctx, "u@test.com", "s3cret")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disabled")
	})
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to client role and hashes password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		roleRepo := new(MockRoleRepo)
		svc := service.NewUserService(userRepo, roleRepo)

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Create(ctx, &domain.User{FullName: "New User", Email: "n@test.com"}, "password1")
		assert.NoError(t, err)
		assert.Equal(t, []string{domain.RoleClient}, user.Roles)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "password1", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
	})

	t.Run("Missing password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		roleRepo := new(MockRoleRepo)
		svc := service.NewUserService(userRepo, roleRepo)

		_, err := svc.Create(ctx, &domain.User{FullName: "New User", Email: "n@test.com"}, "")
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	})
}

func TestUserService_UpdateRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown role rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		roleRepo := new(MockRoleRepo)
		svc := service.NewUserService(userRepo, roleRepo)

		roleRepo.On("GetByName", ctx, "superuser").Return(nil, domain.NotFoundf("role not found"))

		_, err := svc.UpdateRoles(ctx, "user-1", []string{"superuser"})
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	})

	t.Run("Replaces role set", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		roleRepo := new(MockRoleRepo)
		svc := service.NewUserService(userRepo, roleRepo)

		roleRepo.On("GetByName", ctx, domain.RoleTechnician).Return(&domain.Role{ID: "r-1", Name: domain.RoleTechnician}, nil)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Roles: []string{domain.RoleClient}}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.UpdateRoles(ctx, "user-1", []string{domain.RoleTechnician})
		assert.NoError(t, err)
		assert.Equal(t, []string{domain.RoleTechnician}, user.Roles)
	})
}
