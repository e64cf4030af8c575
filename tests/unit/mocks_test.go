package unit

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// fakeTx satisfies repository.Transactor by running fn directly; unit tests
// assert on the repository calls made inside.
type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) Create(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}
func (m *MockRoleRepo) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockRoleRepo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockRoleRepo) List(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Role), args.Error(1)
}
func (m *MockRoleRepo) Update(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}
func (m *MockRoleRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) UpdateStock(ctx context.Context, id string, stock int32) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}
func (m *MockEquipmentRepo) AdjustStock(ctx context.Context, id string, delta int32) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SetInRepair(ctx context.Context, id string, inRepair bool) error {
	args := m.Called(ctx, id, inRepair)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.RentalContract) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}
func (m *MockRentalRepo) ListByClient(ctx context.Context, clientID string) ([]domain.RentalContract, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalContract, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}
func (m *MockRentalRepo) ListActiveFrom(ctx context.Context, from time.Time) ([]domain.RentalContract, error) {
	args := m.Called(ctx, from)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.RentalContract) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) SetDisabled(ctx context.Context, id string, disabled bool) error {
	args := m.Called(ctx, id, disabled)
	return args.Error(0)
}
func (m *MockRentalRepo) Metrics(ctx context.Context) (*domain.RentalMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalMetrics), args.Error(1)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) List(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockDeliveryRepo
type MockDeliveryRepo struct {
	mock.Mock
}

func (m *MockDeliveryRepo) Create(ctx context.Context, delivery *domain.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}
func (m *MockDeliveryRepo) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}
func (m *MockDeliveryRepo) List(ctx context.Context) ([]domain.Delivery, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Delivery), args.Error(1)
}
func (m *MockDeliveryRepo) Update(ctx context.Context, delivery *domain.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}
func (m *MockDeliveryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLabRepo
type MockLabRepo struct {
	mock.Mock
}

func (m *MockLabRepo) Create(ctx context.Context, lab *domain.Lab) error {
	args := m.Called(ctx, lab)
	return args.Error(0)
}
func (m *MockLabRepo) GetByID(ctx context.Context, id string) (*domain.Lab, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lab), args.Error(1)
}
func (m *MockLabRepo) List(ctx context.Context) ([]domain.Lab, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Lab), args.Error(1)
}
func (m *MockLabRepo) Update(ctx context.Context, lab *domain.Lab) error {
	args := m.Called(ctx, lab)
	return args.Error(0)
}
func (m *MockLabRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalRequestConfirmation(ctx context.Context, toEmail, toName, equipmentName string) error {
	args := m.Called(ctx, toEmail, toName, equipmentName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalStatusUpdate(ctx context.Context, toEmail, toName, equipmentName string, status domain.RentalStatus) error {
	args := m.Called(ctx, toEmail, toName, equipmentName, status)
	return args.Error(0)
}
func (m *MockEmailService) SendRepairCompleted(ctx context.Context, toEmail, toName, equipmentName string) error {
	args := m.Called(ctx, toEmail, toName, equipmentName)
	return args.Error(0)
}

// MockContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) CreateFromRental(ctx context.Context, userID string, rental *domain.RentalContract) (*domain.Contract, error) {
	args := m.Called(ctx, userID, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) FindOne(ctx context.Context, contractID string, requester domain.Principal) (*domain.ContractDetail, error) {
	args := m.Called(ctx, contractID, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractDetail), args.Error(1)
}
func (m *MockContractService) FindAll(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) FindByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
