package service

import (
	"context"
	"errors"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	rentalRepo   repository.RentalRepository
	userRepo     repository.UserRepository
}

func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	rentalRepo repository.RentalRepository,
	userRepo repository.UserRepository,
) DeliveryService {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		rentalRepo:   rentalRepo,
		userRepo:     userRepo,
	}
}

func (s *deliveryService) Create(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error) {
	if delivery.RentalID == "" {
		return nil, domain.BadRequestf("rental_id is required")
	}
	if delivery.TechnicianID == "" {
		return nil, domain.BadRequestf("technician_id is required")
	}
	if delivery.ClientID == "" {
		return nil, domain.BadRequestf("client_id is required")
	}

	if _, err := s.rentalRepo.GetByID(ctx, delivery.RentalID); err != nil {
		return nil, asBadReference(err, "rental with ID %s does not exist", delivery.RentalID)
	}
	if _, err := s.userRepo.GetByID(ctx, delivery.TechnicianID); err != nil {
		return nil, asBadReference(err, "technician with ID %s does not exist", delivery.TechnicianID)
	}
	if _, err := s.userRepo.GetByID(ctx, delivery.ClientID); err != nil {
		return nil, asBadReference(err, "client with ID %s does not exist", delivery.ClientID)
	}

	if delivery.Status == "" {
		delivery.Status = domain.DeliveryStatusPending
	}
	if !delivery.Status.Valid() {
		return nil, domain.BadRequestf("invalid delivery status '%s'", delivery.Status)
	}
	delivery.CreatedAt = time.Now().UTC()

	if err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) FindAll(ctx context.Context) ([]domain.Delivery, error) {
	return s.deliveryRepo.List(ctx)
}

func (s *deliveryService) FindOne(ctx context.Context, id string) (*domain.Delivery, error) {
	return s.deliveryRepo.GetByID(ctx, id)
}

func (s *deliveryService) Update(ctx context.Context, id string, in UpdateDeliveryInput) (*domain.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ActDocumentURL != nil {
		delivery.ActDocumentURL = *in.ActDocumentURL
	}
	if in.ClientSignatureURL != nil {
		delivery.ClientSignatureURL = *in.ClientSignatureURL
	}
	if in.VisualObservations != nil {
		delivery.VisualObservations = *in.VisualObservations
	}
	if in.TechnicalObservations != nil {
		delivery.TechnicalObservations = *in.TechnicalObservations
	}
	if in.Status != nil && *in.Status != delivery.Status {
		if !in.Status.Valid() {
			return nil, domain.BadRequestf("invalid delivery status '%s'", *in.Status)
		}
		if !domain.CanTransitionDelivery(delivery.Status, *in.Status) {
			return nil, domain.BadRequestf("cannot transition delivery from '%s' to '%s'", delivery.Status, *in.Status)
		}
		delivery.Status = *in.Status
	}

	if err := s.deliveryRepo.Update(ctx, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) Remove(ctx context.Context, id string) error {
	if _, err := s.deliveryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deliveryRepo.Delete(ctx, id)
}

// asBadReference downgrades a missing referenced entity to a BadRequest
// naming the offending field. Other errors pass through unchanged.
func asBadReference(err error, format string, args ...any) error {
	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindNotFound {
		return domain.BadRequestf(format, args...)
	}
	return err
}
