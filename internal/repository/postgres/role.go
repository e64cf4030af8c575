package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	query := `INSERT INTO roles (id, name, description, permissions) VALUES ($1, $2, $3, $4)`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, role.ID, role.Name, role.Description, pq.Array(role.Permissions))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.Conflictf("role '%s' already exists", role.Name)
	}
	return err
}

func (r *roleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	role := &domain.Role{}
	query := `SELECT id, name, description, permissions FROM roles WHERE id = $1`
	err := querier(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&role.ID, &role.Name, &role.Description, pq.Array(&role.Permissions))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("role with ID %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{}
	query := `SELECT id, name, description, permissions FROM roles WHERE name = $1`
	err := querier(ctx, r.db).QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name, &role.Description, pq.Array(&role.Permissions))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("role '%s' not found", name)
	}
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, `SELECT id, name, description, permissions FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, pq.Array(&role.Permissions)); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) Update(ctx context.Context, role *domain.Role) error {
	query := `UPDATE roles SET name=$1, description=$2, permissions=$3 WHERE id=$4`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, role.Name, role.Description, pq.Array(role.Permissions), role.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.Conflictf("role '%s' already exists", role.Name)
	}
	return err
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	_, err := querier(ctx, r.db).ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	return err
}
