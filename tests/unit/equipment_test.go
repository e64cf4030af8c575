package unit

import (
	"context"
	"testing"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEquipmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with matching spec", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		view, err := svc.Create(ctx, &domain.Equipment{
			Name:  "ThinkPad T14",
			Type:  domain.EquipmentTypeComputer,
			Price: decimal.NewFromInt(300),
			Stock: 5,
			Spec:  &domain.ComputerSpec{Processor: "i7", RAM: "16GB", Storage: "512GB", OS: "Linux"},
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.EquipmentStatusAvailable, view.Status)
	})

	t.Run("Spec type mismatch", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)

		_, err := svc.Create(ctx, &domain.Equipment{
			Name: "ThinkPad T14",
			Type: domain.EquipmentTypeComputer,
			Spec: &domain.PrinterSpec{PrintTechnology: "laser"},
		})
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid type", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)

		_, err := svc.Create(ctx, &domain.Equipment{
			Name: "Widget",
			Type: "toaster",
			Spec: &domain.ComputerSpec{},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid equipment type")
	})
}

func TestEquipmentService_StatusProjection(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEquipmentRepo)
	svc := service.NewEquipmentService(repo)

	repo.On("List", ctx).Return([]domain.Equipment{
		{ID: "a", Name: "A", Stock: 3},
		{ID: "b", Name: "B", Stock: 0},
		{ID: "c", Name: "C", Stock: 4, IsInRepair: true},
	}, nil)

	views, err := svc.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, views, 3)
	assert.Equal(t, domain.EquipmentStatusAvailable, views[0].Status)
	assert.Equal(t, domain.EquipmentStatusOutOfStock, views[1].Status)
	// Repair wins over positive stock.
	assert.Equal(t, domain.EquipmentStatusInRepair, views[2].Status)
}

func TestEquipmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Merges fields and replaces spec", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)

		repo.On("GetByID", ctx, "eq-1").Return(&domain.Equipment{
			ID:    "eq-1",
			Name:  "ThinkPad T14",
			Type:  domain.EquipmentTypeComputer,
			Stock: 2,
			Spec:  &domain.ComputerSpec{Processor: "i5"},
		}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		name := "ThinkPad T14 Gen 2"
		view, err := svc.Update(ctx, "eq-1", service.UpdateEquipmentInput{
			Name: &name,
			Spec: &domain.ComputerSpec{Processor: "i7"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "ThinkPad T14 Gen 2", view.Name)
		assert.Equal(t, "i7", view.Spec.(*domain.ComputerSpec).Processor)
		assert.Equal(t, int32(2), view.Stock)
	})

	t.Run("Spec variant cannot change", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)

		repo.On("GetByID", ctx, "eq-1").Return(&domain.Equipment{
			ID:   "eq-1",
			Type: domain.EquipmentTypeComputer,
		}, nil)

		_, err := svc.Update(ctx, "eq-1", service.UpdateEquipmentInput{
			Spec: &domain.PhoneSpec{ScreenSize: "6.1"},
		})
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	})
}

func TestEquipmentService_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Negative stock rejected", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)

		_, err := svc.UpdateStock(ctx, "eq-1", -1)
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	})

	t.Run("Unknown equipment", func(t *testing.T) {
		repo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(repo)
		repo.On("UpdateStock", ctx, "missing", int32(3)).Return(domain.NotFoundf("equipment with ID missing not found"))

		_, err := svc.UpdateStock(ctx, "missing", 3)
		assert.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}
