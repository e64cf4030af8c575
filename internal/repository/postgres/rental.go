package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.RentalContract) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	rt.CreatedAt = time.Now()
	query := `INSERT INTO rental_contracts (id, client_id, technician_id, equipment_id, start_date, end_date, status, is_disabled, is_delivered, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, rt.ID, rt.ClientID, rt.TechnicianID, rt.EquipmentID, rt.StartDate, rt.EndDate, rt.Status, rt.IsDisabled, rt.IsDelivered, rt.CreatedAt)
	return err
}

const rentalSelect = `SELECT r.id, r.client_id, r.technician_id, r.equipment_id, r.start_date, r.end_date, r.status, r.is_disabled,
       r.approved_by, r.approval_date, r.is_delivered, COALESCE(r.delivery_notes, ''), r.created_at,
       u.full_name, u.email, e.name, e.price, e.stock, e.is_in_repair
FROM rental_contracts r
LEFT JOIN users u ON u.id = r.client_id
LEFT JOIN equipments e ON e.id = r.equipment_id`

func scanRental(scan func(dest ...any) error) (*domain.RentalContract, error) {
	rt := &domain.RentalContract{}
	var (
		approvalDate  sql.NullTime
		approvedBy    sql.NullString
		technicianID  sql.NullString
		clientName    sql.NullString
		clientEmail   sql.NullString
		equipmentName sql.NullString
		price         decimal.NullDecimal
		stock         sql.NullInt32
		inRepair      sql.NullBool
	)
	err := scan(&rt.ID, &rt.ClientID, &technicianID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate, &rt.Status, &rt.IsDisabled,
		&approvedBy, &approvalDate, &rt.IsDelivered, &rt.DeliveryNotes, &rt.CreatedAt,
		&clientName, &clientEmail, &equipmentName, &price, &stock, &inRepair)
	if err != nil {
		return nil, err
	}
	if technicianID.Valid {
		rt.TechnicianID = &technicianID.String
	}
	if approvedBy.Valid {
		rt.ApprovedBy = &approvedBy.String
	}
	if approvalDate.Valid {
		t := approvalDate.Time
		rt.ApprovalDate = &t
	}
	if clientName.Valid {
		rt.Client = &domain.User{ID: rt.ClientID, FullName: clientName.String, Email: clientEmail.String}
	}
	if equipmentName.Valid {
		rt.Equipment = &domain.Equipment{
			ID:         rt.EquipmentID,
			Name:       equipmentName.String,
			Price:      price.Decimal,
			Stock:      stock.Int32,
			IsInRepair: inRepair.Bool,
		}
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx, rentalSelect+` WHERE r.id = $1`, id)
	rt, err := scanRental(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("rental contract with ID %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) queryRentals(ctx context.Context, where string, args ...any) ([]domain.RentalContract, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, rentalSelect+where+` ORDER BY r.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalContract
	for rows.Next() {
		rt, err := scanRental(rows.Scan)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByClient(ctx context.Context, clientID string) ([]domain.RentalContract, error) {
	return r.queryRentals(ctx, ` WHERE r.client_id = $1`, clientID)
}

func (r *rentalRepository) List(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalContract, error) {
	where := ""
	var args []any
	addClause := func(clause string, arg any) {
		args = append(args, arg)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(clause, len(args))
	}

	if filter.Status != "" {
		addClause("r.status = $%d", filter.Status)
	}
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		addClause("r.start_date >= $%d", *filter.StartDate)
		addClause("r.start_date <= $%d", *filter.EndDate)
	case filter.StartDate != nil:
		addClause("r.start_date >= $%d", *filter.StartDate)
	}

	return r.queryRentals(ctx, where, args...)
}

func (r *rentalRepository) ListActiveFrom(ctx context.Context, from time.Time) ([]domain.RentalContract, error) {
	return r.queryRentals(ctx, ` WHERE r.status = $1 AND r.start_date >= $2`, domain.RentalStatusApproved, from)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.RentalContract) error {
	query := `UPDATE rental_contracts SET status=$1, is_disabled=$2, approved_by=$3, approval_date=$4, is_delivered=$5, delivery_notes=$6, technician_id=$7 WHERE id=$8`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, rt.Status, rt.IsDisabled, rt.ApprovedBy, rt.ApprovalDate, rt.IsDelivered, rt.DeliveryNotes, rt.TechnicianID, rt.ID)
	return err
}

func (r *rentalRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	_, err := querier(ctx, r.db).ExecContext(ctx, `UPDATE rental_contracts SET is_disabled = $1 WHERE id = $2`, disabled, id)
	return err
}

func (r *rentalRepository) Metrics(ctx context.Context) (*domain.RentalMetrics, error) {
	q := querier(ctx, r.db)
	m := &domain.RentalMetrics{}

	err := q.QueryRowContext(ctx, `SELECT count(*) FROM rental_contracts WHERE status = $1`, domain.RentalStatusApproved).Scan(&m.Active)
	if err != nil {
		return nil, err
	}
	err = q.QueryRowContext(ctx, `SELECT count(*) FROM rental_contracts WHERE status = $1`, domain.RentalStatusPending).Scan(&m.Pending)
	if err != nil {
		return nil, err
	}

	// Revenue is the summed equipment price over approved rentals, zero when
	// there are none.
	query := `SELECT COALESCE(SUM(e.price), 0)
	          FROM rental_contracts r
	          LEFT JOIN equipments e ON e.id = r.equipment_id
	          WHERE r.status = $1`
	if err := q.QueryRowContext(ctx, query, domain.RentalStatusApproved).Scan(&m.Revenue); err != nil {
		return nil, err
	}
	return m, nil
}
