package repository

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
)

// Transactor runs fn with every repository call inside it bound to a single
// database transaction. Workflow steps with multiple writes (rental creation,
// lab reports) go through this so no partial application is observable.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id string) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, stock int32) error
	// AdjustStock applies delta atomically and fails rather than letting
	// stock go negative, closing the concurrent-rental oversell race.
	AdjustStock(ctx context.Context, id string, delta int32) error
	SetInRepair(ctx context.Context, id string, inRepair bool) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.RentalContract) error
	GetByID(ctx context.Context, id string) (*domain.RentalContract, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.RentalContract, error)
	List(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalContract, error)
	ListActiveFrom(ctx context.Context, from time.Time) ([]domain.RentalContract, error)
	Update(ctx context.Context, rental *domain.RentalContract) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
	Metrics(ctx context.Context) (*domain.RentalMetrics, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Contract, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.Delivery) error
	GetByID(ctx context.Context, id string) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	Update(ctx context.Context, delivery *domain.Delivery) error
	Delete(ctx context.Context, id string) error
}

type LabRepository interface {
	Create(ctx context.Context, lab *domain.Lab) error
	GetByID(ctx context.Context, id string) (*domain.Lab, error)
	List(ctx context.Context) ([]domain.Lab, error)
	Update(ctx context.Context, lab *domain.Lab) error
	Delete(ctx context.Context, id string) error
}
