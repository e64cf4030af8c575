package service

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func newEquipmentView(eq *domain.Equipment) *EquipmentView {
	return &EquipmentView{
		Equipment: *eq,
		Status:    eq.Status(),
		Spec:      eq.Spec,
	}
}

func (s *equipmentService) Create(ctx context.Context, eq *domain.Equipment) (*EquipmentView, error) {
	if eq.Name == "" {
		return nil, domain.BadRequestf("equipment name is required")
	}
	if !eq.Type.Valid() {
		return nil, domain.BadRequestf("invalid equipment type '%s'", eq.Type)
	}
	if eq.Spec == nil {
		return nil, domain.BadRequestf("equipment spec is required")
	}
	if eq.Spec.SpecType() != eq.Type {
		return nil, domain.BadRequestf("spec does not match equipment type '%s'", eq.Type)
	}
	if eq.Stock < 0 {
		return nil, domain.BadRequestf("stock cannot be negative")
	}
	if eq.Price.IsNegative() {
		return nil, domain.BadRequestf("price cannot be negative")
	}

	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return newEquipmentView(eq), nil
}

func (s *equipmentService) FindAll(ctx context.Context) ([]EquipmentView, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]EquipmentView, 0, len(items))
	for i := range items {
		views = append(views, *newEquipmentView(&items[i]))
	}
	return views, nil
}

func (s *equipmentService) FindOne(ctx context.Context, id string) (*EquipmentView, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newEquipmentView(eq), nil
}

func (s *equipmentService) Update(ctx context.Context, id string, in UpdateEquipmentInput) (*EquipmentView, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		eq.Name = *in.Name
	}
	if in.Brand != nil {
		eq.Brand = *in.Brand
	}
	if in.Model != nil {
		eq.Model = *in.Model
	}
	if in.Description != nil {
		eq.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.BadRequestf("price cannot be negative")
		}
		eq.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.BadRequestf("stock cannot be negative")
		}
		eq.Stock = *in.Stock
	}
	if in.WarrantyPeriod != nil {
		eq.WarrantyPeriod = *in.WarrantyPeriod
	}
	if in.Image != nil {
		eq.Image = *in.Image
	}
	if in.Spec != nil {
		// The spec sheet is replaced wholesale; its variant must still
		// match the equipment's fixed type.
		if in.Spec.SpecType() != eq.Type {
			return nil, domain.BadRequestf("spec does not match equipment type '%s'", eq.Type)
		}
		eq.Spec = in.Spec
	}

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return newEquipmentView(eq), nil
}

func (s *equipmentService) Remove(ctx context.Context, id string) error {
	if _, err := s.equipmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) UpdateStock(ctx context.Context, id string, stock int32) (*EquipmentView, error) {
	if stock < 0 {
		return nil, domain.BadRequestf("stock cannot be negative")
	}
	if err := s.equipmentRepo.UpdateStock(ctx, id, stock); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}
