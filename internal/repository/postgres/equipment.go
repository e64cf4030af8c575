package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/google/uuid"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `INSERT INTO equipments (id, name, type, brand, model, description, price, stock, warranty_period, release_date, image, is_in_repair)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, e.ID, e.Name, e.Type, e.Brand, e.Model, e.Description, e.Price, e.Stock, e.WarrantyPeriod, e.ReleaseDate, e.Image, e.IsInRepair)
	if err != nil {
		return err
	}
	return r.saveSpec(ctx, e, true)
}

// saveSpec keeps the variant spec row in lockstep with the equipment record.
func (r *equipmentRepository) saveSpec(ctx context.Context, e *domain.Equipment, insert bool) error {
	if e.Spec == nil {
		return nil
	}
	q := querier(ctx, r.db)
	switch spec := e.Spec.(type) {
	case *domain.ComputerSpec:
		if insert {
			spec.ID = uuid.NewString()
			_, err := q.ExecContext(ctx, `INSERT INTO computer_specs (id, equipment_id, processor, ram, storage, os) VALUES ($1, $2, $3, $4, $5, $6)`,
				spec.ID, e.ID, spec.Processor, spec.RAM, spec.Storage, spec.OS)
			return err
		}
		_, err := q.ExecContext(ctx, `UPDATE computer_specs SET processor=$1, ram=$2, storage=$3, os=$4 WHERE equipment_id=$5`,
			spec.Processor, spec.RAM, spec.Storage, spec.OS, e.ID)
		return err
	case *domain.PrinterSpec:
		if insert {
			spec.ID = uuid.NewString()
			_, err := q.ExecContext(ctx, `INSERT INTO printer_specs (id, equipment_id, print_technology, resolution, connectivity) VALUES ($1, $2, $3, $4, $5)`,
				spec.ID, e.ID, spec.PrintTechnology, spec.Resolution, spec.Connectivity)
			return err
		}
		_, err := q.ExecContext(ctx, `UPDATE printer_specs SET print_technology=$1, resolution=$2, connectivity=$3 WHERE equipment_id=$4`,
			spec.PrintTechnology, spec.Resolution, spec.Connectivity, e.ID)
		return err
	case *domain.PhoneSpec:
		if insert {
			spec.ID = uuid.NewString()
			_, err := q.ExecContext(ctx, `INSERT INTO phone_specs (id, equipment_id, screen_size, battery, camera, os) VALUES ($1, $2, $3, $4, $5, $6)`,
				spec.ID, e.ID, spec.ScreenSize, spec.Battery, spec.Camera, spec.OS)
			return err
		}
		_, err := q.ExecContext(ctx, `UPDATE phone_specs SET screen_size=$1, battery=$2, camera=$3, os=$4 WHERE equipment_id=$5`,
			spec.ScreenSize, spec.Battery, spec.Camera, spec.OS, e.ID)
		return err
	}
	return nil
}

func (r *equipmentRepository) loadSpec(ctx context.Context, e *domain.Equipment) error {
	q := querier(ctx, r.db)
	var err error
	switch e.Type {
	case domain.EquipmentTypeComputer:
		spec := &domain.ComputerSpec{}
		err = q.QueryRowContext(ctx, `SELECT id, processor, ram, storage, os FROM computer_specs WHERE equipment_id = $1`, e.ID).
			Scan(&spec.ID, &spec.Processor, &spec.RAM, &spec.Storage, &spec.OS)
		if err == nil {
			e.Spec = spec
		}
	case domain.EquipmentTypePrinter:
		spec := &domain.PrinterSpec{}
		err = q.QueryRowContext(ctx, `SELECT id, print_technology, resolution, connectivity FROM printer_specs WHERE equipment_id = $1`, e.ID).
			Scan(&spec.ID, &spec.PrintTechnology, &spec.Resolution, &spec.Connectivity)
		if err == nil {
			e.Spec = spec
		}
	case domain.EquipmentTypePhone:
		spec := &domain.PhoneSpec{}
		err = q.QueryRowContext(ctx, `SELECT id, screen_size, battery, camera, os FROM phone_specs WHERE equipment_id = $1`, e.ID).
			Scan(&spec.ID, &spec.ScreenSize, &spec.Battery, &spec.Camera, &spec.OS)
		if err == nil {
			e.Spec = spec
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		// Equipment without a spec sheet is legal.
		return nil
	}
	return err
}

const equipmentColumns = `id, name, type, brand, model, COALESCE(description, ''), price, stock, COALESCE(warranty_period, ''), release_date, COALESCE(image, ''), is_in_repair`

func scanEquipment(scan func(dest ...any) error) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	var releaseDate sql.NullTime
	err := scan(&e.ID, &e.Name, &e.Type, &e.Brand, &e.Model, &e.Description, &e.Price, &e.Stock, &e.WarrantyPeriod, &releaseDate, &e.Image, &e.IsInRepair)
	if err != nil {
		return nil, err
	}
	if releaseDate.Valid {
		t := releaseDate.Time
		e.ReleaseDate = &t
	}
	return e, nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipments WHERE id = $1`, id)
	e, err := scanEquipment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("equipment with ID %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadSpec(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipments []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows.Scan)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range equipments {
		if err := r.loadSpec(ctx, &equipments[i]); err != nil {
			return nil, err
		}
	}
	return equipments, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipments SET name=$1, brand=$2, model=$3, description=$4, price=$5, stock=$6, warranty_period=$7, release_date=$8, image=$9, is_in_repair=$10 WHERE id=$11`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, e.Name, e.Brand, e.Model, e.Description, e.Price, e.Stock, e.WarrantyPeriod, e.ReleaseDate, e.Image, e.IsInRepair, e.ID)
	if err != nil {
		return err
	}
	return r.saveSpec(ctx, e, false)
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	q := querier(ctx, r.db)
	// Spec rows go with the equipment record.
	for _, table := range []string{"computer_specs", "printer_specs", "phone_specs"} {
		if _, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE equipment_id = $1`, id); err != nil {
			return err
		}
	}
	_, err := q.ExecContext(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	return err
}

func (r *equipmentRepository) UpdateStock(ctx context.Context, id string, stock int32) error {
	res, err := querier(ctx, r.db).ExecContext(ctx, `UPDATE equipments SET stock = $1 WHERE id = $2`, stock, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (r *equipmentRepository) AdjustStock(ctx context.Context, id string, delta int32) error {
	query := `UPDATE equipments SET stock = stock + $1 WHERE id = $2 AND stock + $1 >= 0`
	res, err := querier(ctx, r.db).ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.BadRequestf("equipment out of stock")
	}
	return nil
}

func (r *equipmentRepository) SetInRepair(ctx context.Context, id string, inRepair bool) error {
	res, err := querier(ctx, r.db).ExecContext(ctx, `UPDATE equipments SET is_in_repair = $1 WHERE id = $2`, inRepair, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundf("equipment with ID %s not found", id)
	}
	return nil
}
