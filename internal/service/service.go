package service

import (
	"context"

	"equiprent-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult carries the authenticated user and the signed access token.
type LoginResult struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

type UserService interface {
	Create(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindOne(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Remove(ctx context.Context, id string) error
	UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error)
	ToggleStatus(ctx context.Context, id string) (*domain.User, error)
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	DNI      *string `json:"dni,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type RoleService interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindOne(ctx context.Context, id string) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Remove(ctx context.Context, id string) error
}

type EquipmentService interface {
	Create(ctx context.Context, eq *domain.Equipment) (*EquipmentView, error)
	FindAll(ctx context.Context) ([]EquipmentView, error)
	FindOne(ctx context.Context, id string) (*EquipmentView, error)
	Update(ctx context.Context, id string, in UpdateEquipmentInput) (*EquipmentView, error)
	Remove(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, stock int32) (*EquipmentView, error)
}

// EquipmentView is the catalog read model: the stored equipment plus its
// derived availability status and the type-specific spec sheet.
type EquipmentView struct {
	domain.Equipment
	Status domain.EquipmentStatus `json:"status"`
	Spec   domain.Spec            `json:"spec,omitempty"`
}

// UpdateEquipmentInput is a partial update; nil fields are left unchanged.
// Spec replaces the whole spec sheet when present and must match the
// equipment's type.
type UpdateEquipmentInput struct {
	Name           *string          `json:"name,omitempty"`
	Brand          *string          `json:"brand,omitempty"`
	Model          *string          `json:"model,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Stock          *int32           `json:"stock,omitempty"`
	WarrantyPeriod *string          `json:"warrantyPeriod,omitempty"`
	Image          *string          `json:"image,omitempty"`
	Spec           domain.Spec      `json:"-"`
}

type RentalService interface {
	CreateRequest(ctx context.Context, clientID, equipmentID, startDate, endDate string) (*domain.RentalContract, *domain.Contract, error)
	UpdateStatus(ctx context.Context, rentalID string, newStatus domain.RentalStatus, actor domain.Principal) (*domain.RentalContract, error)
	FindByClient(ctx context.Context, clientID string) ([]domain.RentalContract, error)
	FindAll(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalContract, error)
	GetActiveDeliveries(ctx context.Context) ([]domain.RentalContract, error)
	GetRentalMetrics(ctx context.Context) (*domain.RentalMetrics, error)
}

type ContractService interface {
	CreateFromRental(ctx context.Context, userID string, rental *domain.RentalContract) (*domain.Contract, error)
	FindOne(ctx context.Context, contractID string, requester domain.Principal) (*domain.ContractDetail, error)
	FindAll(ctx context.Context) ([]domain.Contract, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Contract, error)
}

type DeliveryService interface {
	Create(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error)
	FindAll(ctx context.Context) ([]domain.Delivery, error)
	FindOne(ctx context.Context, id string) (*domain.Delivery, error)
	Update(ctx context.Context, id string, in UpdateDeliveryInput) (*domain.Delivery, error)
	Remove(ctx context.Context, id string) error
}

// UpdateDeliveryInput is a partial update; nil fields are left unchanged.
type UpdateDeliveryInput struct {
	ActDocumentURL        *string                `json:"actDocumentUrl,omitempty"`
	ClientSignatureURL    *string                `json:"clientSignatureUrl,omitempty"`
	VisualObservations    *string                `json:"visualObservations,omitempty"`
	TechnicalObservations *string                `json:"technicalObservations,omitempty"`
	Status                *domain.DeliveryStatus `json:"status,omitempty"`
}

type LabService interface {
	ReportBrokenEquipment(ctx context.Context, userID, rentalID, notes string) (*domain.Lab, error)
	MarkAsRepaired(ctx context.Context, labID string) (*domain.Lab, error)
	Create(ctx context.Context, lab *domain.Lab) (*domain.Lab, error)
	FindAll(ctx context.Context) ([]domain.Lab, error)
	FindOne(ctx context.Context, id string) (*domain.Lab, error)
	Update(ctx context.Context, lab *domain.Lab) (*domain.Lab, error)
	Remove(ctx context.Context, id string) error
}

type EmailService interface {
	SendRentalRequestConfirmation(ctx context.Context, toEmail, toName, equipmentName string) error
	SendRentalStatusUpdate(ctx context.Context, toEmail, toName, equipmentName string, status domain.RentalStatus) error
	SendRepairCompleted(ctx context.Context, toEmail, toName, equipmentName string) error
}
