package service

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

type labService struct {
	labRepo       repository.LabRepository
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
	tx            repository.Transactor
}

func NewLabService(
	labRepo repository.LabRepository,
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	tx repository.Transactor,
) LabService {
	return &labService{
		labRepo:       labRepo,
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
		tx:            tx,
	}
}

func (s *labService) ReportBrokenEquipment(ctx context.Context, userID, rentalID, notes string) (*domain.Lab, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if rental.ClientID != userID {
		return nil, domain.BadRequestf("unauthorized report")
	}

	lab := &domain.Lab{
		EquipmentID:  rental.EquipmentID,
		ReportedByID: userID,
		ReportedAt:   time.Now().UTC(),
		Notes:        notes,
		IsRepaired:   false,
	}

	// The report, the rental freeze, and the equipment repair flag land
	// together or not at all.
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.labRepo.Create(ctx, lab); err != nil {
			return err
		}
		if err := s.rentalRepo.SetDisabled(ctx, rental.ID, true); err != nil {
			return err
		}
		return s.equipmentRepo.SetInRepair(ctx, rental.EquipmentID, true)
	})
	if err != nil {
		return nil, err
	}

	return lab, nil
}

func (s *labService) MarkAsRepaired(ctx context.Context, labID string) (*domain.Lab, error) {
	lab, err := s.labRepo.GetByID(ctx, labID)
	if err != nil {
		return nil, err
	}
	if lab.IsRepaired {
		return nil, domain.BadRequestf("lab record is already marked as repaired")
	}

	lab.IsRepaired = true
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.labRepo.Update(ctx, lab); err != nil {
			return err
		}
		if err := s.equipmentRepo.SetInRepair(ctx, lab.EquipmentID, false); err != nil {
			return err
		}
		// The repaired unit goes back into the rentable pool.
		return s.equipmentRepo.AdjustStock(ctx, lab.EquipmentID, 1)
	})
	if err != nil {
		lab.IsRepaired = false
		return nil, err
	}

	s.notifyReporter(ctx, lab)

	return lab, nil
}

func (s *labService) Create(ctx context.Context, lab *domain.Lab) (*domain.Lab, error) {
	if lab.EquipmentID == "" {
		return nil, domain.BadRequestf("equipment_id is required")
	}
	if lab.ReportedByID == "" {
		return nil, domain.BadRequestf("reported_by is required")
	}
	if _, err := s.equipmentRepo.GetByID(ctx, lab.EquipmentID); err != nil {
		return nil, err
	}
	if lab.ReportedAt.IsZero() {
		lab.ReportedAt = time.Now().UTC()
	}
	if err := s.labRepo.Create(ctx, lab); err != nil {
		return nil, err
	}
	return lab, nil
}

func (s *labService) FindAll(ctx context.Context) ([]domain.Lab, error) {
	return s.labRepo.List(ctx)
}

func (s *labService) FindOne(ctx context.Context, id string) (*domain.Lab, error) {
	return s.labRepo.GetByID(ctx, id)
}

func (s *labService) Update(ctx context.Context, lab *domain.Lab) (*domain.Lab, error) {
	existing, err := s.labRepo.GetByID(ctx, lab.ID)
	if err != nil {
		return nil, err
	}
	if lab.EquipmentID == "" {
		lab.EquipmentID = existing.EquipmentID
	}
	if lab.ReportedByID == "" {
		lab.ReportedByID = existing.ReportedByID
	}
	if lab.ReportedAt.IsZero() {
		lab.ReportedAt = existing.ReportedAt
	}
	if err := s.labRepo.Update(ctx, lab); err != nil {
		return nil, err
	}
	return lab, nil
}

func (s *labService) Remove(ctx context.Context, id string) error {
	if _, err := s.labRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.labRepo.Delete(ctx, id)
}

// notifyReporter emails the user who filed the report once the repair is
// done. Best effort, never fails the operation.
func (s *labService) notifyReporter(ctx context.Context, lab *domain.Lab) {
	if s.emailSvc == nil {
		return
	}
	reporter, err := s.userRepo.GetByID(ctx, lab.ReportedByID)
	if err != nil {
		logger.WithService("lab").Warn("skipping repair notification, reporter lookup failed", "user_id", lab.ReportedByID, "error", err)
		return
	}
	name := ""
	if eq, err := s.equipmentRepo.GetByID(ctx, lab.EquipmentID); err == nil {
		name = eq.Name
	}
	if err := s.emailSvc.SendRepairCompleted(ctx, reporter.Email, reporter.FullName, name); err != nil {
		logger.WithService("lab").Warn("failed to send repair notification", "user_id", lab.ReportedByID, "error", err)
	}
}
