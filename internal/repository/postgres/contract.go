package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (contract_id, contract_number, start_date, end_date, monthly_value, user_id, rental_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, c.ContractID, c.ContractNumber, c.StartDate, c.EndDate, c.MonthlyValue, c.UserID, c.RentalID)
	return err
}

const contractSelect = `SELECT c.contract_id, c.contract_number, c.start_date, c.end_date, c.monthly_value, c.user_id, c.rental_id,
       u.full_name, u.email, r.start_date, r.end_date, e.name
FROM contracts c
LEFT JOIN users u ON u.id = c.user_id
LEFT JOIN rental_contracts r ON r.id = c.rental_id
LEFT JOIN equipments e ON e.id = r.equipment_id`

func scanContract(scan func(dest ...any) error) (*domain.Contract, error) {
	c := &domain.Contract{}
	var (
		userName      sql.NullString
		userEmail     sql.NullString
		rentalStart   sql.NullTime
		rentalEnd     sql.NullTime
		equipmentName sql.NullString
	)
	err := scan(&c.ContractID, &c.ContractNumber, &c.StartDate, &c.EndDate, &c.MonthlyValue, &c.UserID, &c.RentalID,
		&userName, &userEmail, &rentalStart, &rentalEnd, &equipmentName)
	if err != nil {
		return nil, err
	}
	if userName.Valid {
		c.User = &domain.User{ID: c.UserID, FullName: userName.String, Email: userEmail.String}
	}
	if rentalStart.Valid {
		c.Rental = &domain.RentalContract{
			ID:        c.RentalID,
			StartDate: rentalStart.Time,
			EndDate:   rentalEnd.Time,
		}
		if equipmentName.Valid {
			c.Rental.Equipment = &domain.Equipment{Name: equipmentName.String}
		}
	}
	return c, nil
}

func (r *contractRepository) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx, contractSelect+` WHERE c.contract_id = $1`, contractID)
	c, err := scanContract(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("contract with ID %s not found", contractID)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) queryContracts(ctx context.Context, where string, args ...any) ([]domain.Contract, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, contractSelect+where+` ORDER BY c.start_date DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows.Scan)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	return r.queryContracts(ctx, "")
}

func (r *contractRepository) ListByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	return r.queryContracts(ctx, ` WHERE c.user_id = $1`, userID)
}
