package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, full_name, email, password_hash, dni, phone, is_active, roles, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().Format("2006-01-02")
	u.CreatedOn = now
	_, err := querier(ctx, r.db).ExecContext(ctx, query, u.ID, u.FullName, u.Email, u.PasswordHash, u.DNI, u.Phone, u.IsActive, pq.Array(u.Roles), u.CreatedOn)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.BadRequestf("email already exists")
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, full_name, email, password_hash, COALESCE(dni, ''), COALESCE(phone, ''), is_active, roles, created_on FROM users WHERE id = $1`
	var createdOn time.Time
	err := querier(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.DNI, &u.Phone, &u.IsActive, pq.Array(&u.Roles), &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("user with ID %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, full_name, email, password_hash, COALESCE(dni, ''), COALESCE(phone, ''), is_active, roles, created_on FROM users WHERE LOWER(email) = LOWER($1)`
	var createdOn time.Time
	err := querier(ctx, r.db).QueryRowContext(ctx, query, email).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.DNI, &u.Phone, &u.IsActive, pq.Array(&u.Roles), &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("user with email %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, full_name, email, password_hash, COALESCE(dni, ''), COALESCE(phone, ''), is_active, roles, created_on FROM users ORDER BY created_on DESC`
	rows, err := querier(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn time.Time
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.DNI, &u.Phone, &u.IsActive, pq.Array(&u.Roles), &createdOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format("2006-01-02")
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET full_name=$1, email=$2, password_hash=$3, dni=$4, phone=$5, is_active=$6, roles=$7 WHERE id=$8`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, u.FullName, u.Email, u.PasswordHash, u.DNI, u.Phone, u.IsActive, pq.Array(u.Roles), u.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.BadRequestf("email already exists")
	}
	return err
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	_, err := querier(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
