package unit

import (
	"context"
	"testing"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRentalFixture() (*MockRentalRepo, *MockEquipmentRepo, *MockUserRepo, *MockContractService, *MockEmailService, service.RentalService) {
	rentalRepo := new(MockRentalRepo)
	equipmentRepo := new(MockEquipmentRepo)
	userRepo := new(MockUserRepo)
	contractSvc := new(MockContractService)
	emailSvc := new(MockEmailService)
	svc := service.NewRentalService(rentalRepo, equipmentRepo, userRepo, contractSvc, emailSvc, fakeTx{})
	return rentalRepo, equipmentRepo, userRepo, contractSvc, emailSvc, svc
}

func TestRentalService_CreateRequest(t *testing.T) {
	ctx := context.Background()
	clientID := "client-1"
	equipmentID := "eq-1"

	laptop := func() *domain.Equipment {
		return &domain.Equipment{
			ID:    equipmentID,
			Name:  "ThinkPad T14",
			Type:  domain.EquipmentTypeComputer,
			Price: decimal.NewFromInt(300),
			Stock: 2,
		}
	}

	t.Run("Success", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, contractSvc, emailSvc, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, equipmentID).Return(laptop(), nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(nil)
		contractSvc.On("CreateFromRental", ctx, clientID, mock.AnythingOfType("*domain.RentalContract")).
			Return(&domain.Contract{ContractID: "CTR-1", MonthlyValue: decimal.NewFromInt(300)}, nil)
		equipmentRepo.On("AdjustStock", ctx, equipmentID, int32(-1)).Return(nil)
		userRepo.On("GetByID", ctx, clientID).Return(&domain.User{ID: clientID, Email: "c@test.com", FullName: "Client"}, nil)
		emailSvc.On("SendRentalRequestConfirmation", ctx, "c@test.com", "Client", "ThinkPad T14").Return(nil)

		rental, contract, err := svc.CreateRequest(ctx, clientID, equipmentID, "2026-10-01", "2026-11-01")
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.NotNil(t, contract)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
		assert.Equal(t, clientID, rental.ClientID)
		equipmentRepo.AssertCalled(t, "AdjustStock", ctx, equipmentID, int32(-1))
	})

	t.Run("Equipment in repair", func(t *testing.T) {
		_, equipmentRepo, _, _, _, svc := newRentalFixture()

		broken := laptop()
		broken.IsInRepair = true
		equipmentRepo.On("GetByID", ctx, equipmentID).Return(broken, nil)

		_, _, err := svc.CreateRequest(ctx, clientID, equipmentID, "2026-10-01", "2026-11-01")
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
		assert.Contains(t, err.Error(), "under repair")
	})

	t.Run("Out of stock", func(t *testing.T) {
		_, equipmentRepo, _, _, _, svc := newRentalFixture()

		empty := laptop()
		empty.Stock = 0
		equipmentRepo.On("GetByID", ctx, equipmentID).Return(empty, nil)

		_, _, err := svc.CreateRequest(ctx, clientID, equipmentID, "2026-10-01", "2026-11-01")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of stock")
	})

	t.Run("End date before start date", func(t *testing.T) {
		rentalRepo, equipmentRepo, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, equipmentID).Return(laptop(), nil)

		_, _, err := svc.CreateRequest(ctx, clientID, equipmentID, "2026-11-01", "2026-10-01")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "end date must be after start date")
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown equipment", func(t *testing.T) {
		_, equipmentRepo, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, "missing").Return(nil, domain.NotFoundf("equipment with ID missing not found"))

		_, _, err := svc.CreateRequest(ctx, clientID, "missing", "2026-10-01", "2026-11-01")
		assert.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestRentalService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	admin := domain.Principal{ID: "admin-1", Roles: []string{domain.RoleAdmin}}
	client := domain.Principal{ID: "client-1", Roles: []string{domain.RoleClient}}

	pendingRental := func() *domain.RentalContract {
		return &domain.RentalContract{
			ID:          "rc-1",
			ClientID:    "client-1",
			EquipmentID: "eq-1",
			Status:      domain.RentalStatusPending,
			Equipment:   &domain.Equipment{ID: "eq-1", Name: "ThinkPad T14"},
		}
	}

	t.Run("Approve records approver", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, _, emailSvc, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, "rc-1").Return(pendingRental(), nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(nil)
		userRepo.On("GetByID", ctx, "client-1").Return(&domain.User{ID: "client-1", Email: "c@test.com", FullName: "Client"}, nil)
		emailSvc.On("SendRentalStatusUpdate", ctx, "c@test.com", "Client", "ThinkPad T14", domain.RentalStatusApproved).Return(nil)

		rental, err := svc.UpdateStatus(ctx, "rc-1", domain.RentalStatusApproved, admin)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusApproved, rental.Status)
		assert.NotNil(t, rental.ApprovedBy)
		assert.Equal(t, "admin-1", *rental.ApprovedBy)
		assert.NotNil(t, rental.ApprovalDate)
		assert.WithinDuration(t, time.Now().UTC(), *rental.ApprovalDate, time.Minute)
		// Approval never touches stock.
		equipmentRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reject restores stock", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, _, emailSvc, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, "rc-1").Return(pendingRental(), nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(nil)
		equipmentRepo.On("AdjustStock", ctx, "eq-1", int32(1)).Return(nil)
		userRepo.On("GetByID", ctx, "client-1").Return(&domain.User{ID: "client-1", Email: "c@test.com", FullName: "Client"}, nil)
		emailSvc.On("SendRentalStatusUpdate", ctx, "c@test.com", "Client", "ThinkPad T14", domain.RentalStatusRejected).Return(nil)

		rental, err := svc.UpdateStatus(ctx, "rc-1", domain.RentalStatusRejected, admin)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusRejected, rental.Status)
		equipmentRepo.AssertCalled(t, "AdjustStock", ctx, "eq-1", int32(1))
	})

	t.Run("Client is forbidden", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, "rc-1").Return(pendingRental(), nil)

		_, err := svc.UpdateStatus(ctx, "rc-1", domain.RentalStatusApproved, client)
		assert.Error(t, err)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("Illegal transition", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()

		completed := pendingRental()
		completed.Status = domain.RentalStatusCompleted
		rentalRepo.On("GetByID", ctx, "rc-1").Return(completed, nil)

		_, err := svc.UpdateStatus(ctx, "rc-1", domain.RentalStatusApproved, admin)
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
		assert.Contains(t, err.Error(), "cannot transition rental")
	})

	t.Run("Pending to completed is illegal", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, "rc-1").Return(pendingRental(), nil)

		_, err := svc.UpdateStatus(ctx, "rc-1", domain.RentalStatusCompleted, admin)
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	})
}

func TestRentalService_GetRentalMetrics(t *testing.T) {
	ctx := context.Background()
	rentalRepo, _, _, _, _, svc := newRentalFixture()

	rentalRepo.On("Metrics", ctx).Return(&domain.RentalMetrics{
		Active:  3,
		Pending: 1,
		Revenue: decimal.NewFromInt(900),
	}, nil)

	metrics, err := svc.GetRentalMetrics(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), metrics.Active)
	assert.Equal(t, int32(1), metrics.Pending)
	assert.True(t, metrics.Revenue.Equal(decimal.NewFromInt(900)))
}

func TestRentalService_FindAll_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	_, _, _, _, _, svc := newRentalFixture()

	_, err := svc.FindAll(ctx, domain.RentalFilter{Status: "bogus"})
	assert.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}
