package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type contractService struct {
	contractRepo repository.ContractRepository
}

func NewContractService(contractRepo repository.ContractRepository) ContractService {
	return &contractService{contractRepo: contractRepo}
}

func (s *contractService) CreateFromRental(ctx context.Context, userID string, rental *domain.RentalContract) (*domain.Contract, error) {
	monthly := decimal.Zero
	if rental.Equipment != nil {
		monthly = rental.Equipment.Price
	}

	contract := &domain.Contract{
		ContractID:     fmt.Sprintf("CTR-%d", time.Now().UnixMilli()),
		ContractNumber: fmt.Sprintf("CN-%04d", rand.Intn(10000)),
		StartDate:      rental.StartDate,
		EndDate:        rental.EndDate,
		MonthlyValue:   monthly,
		UserID:         userID,
		RentalID:       rental.ID,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *contractService) FindOne(ctx context.Context, contractID string, requester domain.Principal) (*domain.ContractDetail, error) {
	contract, err := s.contractRepo.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	// Plain clients only ever see their own contracts. A foreign contract
	// reads as absent so its existence is not leaked.
	if requester.HasOnlyRole(domain.RoleClient) && contract.UserID != requester.ID {
		return nil, domain.NotFoundf("contract with ID %s not found", contractID)
	}

	return buildContractDetail(contract), nil
}

func (s *contractService) FindAll(ctx context.Context) ([]domain.Contract, error) {
	return s.contractRepo.List(ctx)
}

func (s *contractService) FindByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	return s.contractRepo.ListByUser(ctx, userID)
}

func buildContractDetail(c *domain.Contract) *domain.ContractDetail {
	detail := &domain.ContractDetail{
		ContractID:     c.ContractID,
		ContractNumber: c.ContractNumber,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		MonthlyValue:   c.MonthlyValue,
		User: domain.ContractOwner{
			ID:    c.UserID,
			Name:  "N/A",
			Email: "N/A",
		},
		Rental: domain.RentalSummary{
			ID:            c.RentalID,
			EquipmentName: "N/A",
			StartDate:     c.StartDate.Format(dateLayout),
			EndDate:       c.EndDate.Format(dateLayout),
		},
	}

	if c.User != nil {
		if c.User.FullName != "" {
			detail.User.Name = c.User.FullName
		}
		if c.User.Email != "" {
			detail.User.Email = c.User.Email
		}
	}
	if c.Rental != nil {
		detail.Rental.StartDate = c.Rental.StartDate.Format(dateLayout)
		detail.Rental.EndDate = c.Rental.EndDate.Format(dateLayout)
		if c.Rental.Equipment != nil && c.Rental.Equipment.Name != "" {
			detail.Rental.EquipmentName = c.Rental.Equipment.Name
		}
	}

	return detail
}
