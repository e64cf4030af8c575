package service

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) Create(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if user.FullName == "" {
		return nil, domain.BadRequestf("fullName is required")
	}
	if user.Email == "" {
		return nil, domain.BadRequestf("email is required")
	}
	if password == "" {
		return nil, domain.BadRequestf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internalf("failed to hash password")
	}
	user.PasswordHash = string(hash)

	if len(user.Roles) == 0 {
		user.Roles = []string{domain.RoleClient}
	}
	user.IsActive = true
	user.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) FindOne(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *userService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.DNI != nil {
		user.DNI = *in.DNI
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.Internalf("failed to hash password")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Remove(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error) {
	if len(roles) == 0 {
		return nil, domain.BadRequestf("at least one role is required")
	}
	// Every assigned role must exist in the catalog.
	for _, name := range roles {
		if _, err := s.roleRepo.GetByName(ctx, name); err != nil {
			return nil, domain.BadRequestf("role '%s' does not exist", name)
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ToggleStatus(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
