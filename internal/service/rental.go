package service

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
	contractSvc   ContractService
	emailSvc      EmailService
	tx            repository.Transactor
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	contractSvc ContractService,
	emailSvc EmailService,
	tx repository.Transactor,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		contractSvc:   contractSvc,
		emailSvc:      emailSvc,
		tx:            tx,
	}
}

func (s *rentalService) CreateRequest(ctx context.Context, clientID, equipmentID, startDateStr, endDateStr string) (*domain.RentalContract, *domain.Contract, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, nil, err
	}

	if eq.IsInRepair {
		return nil, nil, domain.BadRequestf("equipment is currently under repair")
	}
	if eq.Stock < 1 {
		return nil, nil, domain.BadRequestf("equipment out of stock")
	}

	start, err := time.Parse(dateLayout, startDateStr)
	if err != nil {
		return nil, nil, domain.BadRequestf("invalid start date '%s'", startDateStr)
	}
	end, err := time.Parse(dateLayout, endDateStr)
	if err != nil {
		return nil, nil, domain.BadRequestf("invalid end date '%s'", endDateStr)
	}
	if !end.After(start) {
		return nil, nil, domain.BadRequestf("end date must be after start date")
	}

	rental := &domain.RentalContract{
		ClientID:    clientID,
		EquipmentID: equipmentID,
		Equipment:   eq,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.RentalStatusPending,
	}

	var contract *domain.Contract
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.rentalRepo.Create(ctx, rental); err != nil {
			return err
		}
		contract, err = s.contractSvc.CreateFromRental(ctx, clientID, rental)
		if err != nil {
			return err
		}
		// Guarded decrement: a concurrent request for the last unit makes
		// the whole transaction fail instead of overselling.
		return s.equipmentRepo.AdjustStock(ctx, equipmentID, -1)
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyClient(ctx, clientID, func(client *domain.User) error {
		return s.emailSvc.SendRentalRequestConfirmation(ctx, client.Email, client.FullName, eq.Name)
	})

	return rental, contract, nil
}

func (s *rentalService) UpdateStatus(ctx context.Context, rentalID string, newStatus domain.RentalStatus, actor domain.Principal) (*domain.RentalContract, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if !actor.HasAnyRole(domain.RoleAdmin, domain.RoleSalesperson) {
		return nil, domain.Forbiddenf("only administrators or salespersons can update rental status")
	}

	if !newStatus.Valid() {
		return nil, domain.BadRequestf("invalid rental status '%s'", newStatus)
	}
	if !domain.CanTransitionRental(rental.Status, newStatus) {
		return nil, domain.BadRequestf("cannot transition rental from '%s' to '%s'", rental.Status, newStatus)
	}

	previous := rental.Status
	rental.Status = newStatus
	if newStatus == domain.RentalStatusApproved {
		now := time.Now().UTC()
		rental.ApprovedBy = &actor.ID
		rental.ApprovalDate = &now
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.rentalRepo.Update(ctx, rental); err != nil {
			return err
		}
		if newStatus == domain.RentalStatusRejected {
			// The unit reserved at request time goes back on the shelf.
			return s.equipmentRepo.AdjustStock(ctx, rental.EquipmentID, 1)
		}
		return nil
	})
	if err != nil {
		rental.Status = previous
		return nil, err
	}

	s.notifyClient(ctx, rental.ClientID, func(client *domain.User) error {
		name := ""
		if rental.Equipment != nil {
			name = rental.Equipment.Name
		}
		return s.emailSvc.SendRentalStatusUpdate(ctx, client.Email, client.FullName, name, newStatus)
	})

	return rental, nil
}

func (s *rentalService) FindByClient(ctx context.Context, clientID string) ([]domain.RentalContract, error) {
	return s.rentalRepo.ListByClient(ctx, clientID)
}

func (s *rentalService) FindAll(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalContract, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.BadRequestf("invalid rental status '%s'", filter.Status)
	}
	return s.rentalRepo.List(ctx, filter)
}

func (s *rentalService) GetActiveDeliveries(ctx context.Context) ([]domain.RentalContract, error) {
	return s.rentalRepo.ListActiveFrom(ctx, time.Now().UTC())
}

func (s *rentalService) GetRentalMetrics(ctx context.Context) (*domain.RentalMetrics, error) {
	return s.rentalRepo.Metrics(ctx)
}

// notifyClient sends a best-effort email to the rental's client. Delivery
// failures are logged and never fail the calling operation.
func (s *rentalService) notifyClient(ctx context.Context, clientID string, send func(*domain.User) error) {
	if s.emailSvc == nil {
		return
	}
	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		logger.WithService("rental").Warn("skipping notification, client lookup failed", "client_id", clientID, "error", err)
		return
	}
	if err := send(client); err != nil {
		logger.WithService("rental").Warn("failed to send notification email", "client_id", clientID, "error", err)
	}
}
