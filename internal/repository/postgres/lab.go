package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/google/uuid"
)

type labRepository struct {
	db *sql.DB
}

func NewLabRepository(db *sql.DB) repository.LabRepository {
	return &labRepository{db: db}
}

func (r *labRepository) Create(ctx context.Context, lab *domain.Lab) error {
	if lab.ID == "" {
		lab.ID = uuid.NewString()
	}
	lab.ReportedAt = time.Now()
	query := `INSERT INTO labs (id, equipment_id, reported_by, reported_at, notes, is_repaired)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, lab.ID, lab.EquipmentID, lab.ReportedByID, lab.ReportedAt, lab.Notes, lab.IsRepaired)
	return err
}

const labSelect = `SELECT l.id, l.equipment_id, l.reported_by, l.reported_at, COALESCE(l.notes, ''), l.is_repaired,
       e.name, e.stock, e.is_in_repair, u.full_name, u.email
FROM labs l
LEFT JOIN equipments e ON e.id = l.equipment_id
LEFT JOIN users u ON u.id = l.reported_by`

func scanLab(scan func(dest ...any) error) (*domain.Lab, error) {
	lab := &domain.Lab{}
	var (
		equipmentName sql.NullString
		stock         sql.NullInt32
		inRepair      sql.NullBool
		reporterName  sql.NullString
		reporterEmail sql.NullString
	)
	err := scan(&lab.ID, &lab.EquipmentID, &lab.ReportedByID, &lab.ReportedAt, &lab.Notes, &lab.IsRepaired,
		&equipmentName, &stock, &inRepair, &reporterName, &reporterEmail)
	if err != nil {
		return nil, err
	}
	if equipmentName.Valid {
		lab.Equipment = &domain.Equipment{
			ID:         lab.EquipmentID,
			Name:       equipmentName.String,
			Stock:      stock.Int32,
			IsInRepair: inRepair.Bool,
		}
	}
	if reporterName.Valid {
		lab.ReportedBy = &domain.User{ID: lab.ReportedByID, FullName: reporterName.String, Email: reporterEmail.String}
	}
	return lab, nil
}

func (r *labRepository) GetByID(ctx context.Context, id string) (*domain.Lab, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx, labSelect+` WHERE l.id = $1`, id)
	lab, err := scanLab(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("lab record not found")
	}
	if err != nil {
		return nil, err
	}
	return lab, nil
}

func (r *labRepository) List(ctx context.Context) ([]domain.Lab, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, labSelect+` ORDER BY l.reported_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labs []domain.Lab
	for rows.Next() {
		lab, err := scanLab(rows.Scan)
		if err != nil {
			return nil, err
		}
		labs = append(labs, *lab)
	}
	return labs, rows.Err()
}

func (r *labRepository) Update(ctx context.Context, lab *domain.Lab) error {
	query := `UPDATE labs SET notes=$1, is_repaired=$2 WHERE id=$3`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, lab.Notes, lab.IsRepaired, lab.ID)
	return err
}

func (r *labRepository) Delete(ctx context.Context, id string) error {
	_, err := querier(ctx, r.db).ExecContext(ctx, `DELETE FROM labs WHERE id = $1`, id)
	return err
}
