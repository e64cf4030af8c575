package service

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type roleService struct {
	roleRepo repository.RoleRepository
}

func NewRoleService(roleRepo repository.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if role.Name == "" {
		return nil, domain.BadRequestf("role name is required")
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) FindAll(ctx context.Context) ([]domain.Role, error) {
	return s.roleRepo.List(ctx)
}

func (s *roleService) FindOne(ctx context.Context, id string) (*domain.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

func (s *roleService) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	existing, err := s.roleRepo.GetByID(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	if role.Name == "" {
		role.Name = existing.Name
	}
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Remove(ctx context.Context, id string) error {
	if _, err := s.roleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.roleRepo.Delete(ctx, id)
}
