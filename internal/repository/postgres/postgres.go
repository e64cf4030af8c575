package postgres

import (
	"context"
	"database/sql"

	"equiprent-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository method
// can run standalone or inside a Store.WithinTx transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// querier returns the transaction carried by ctx, or db when none is.
func querier(ctx context.Context, db *sql.DB) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RoleRepository
	repository.EquipmentRepository
	repository.RentalRepository
	repository.ContractRepository
	repository.DeliveryRepository
	repository.LabRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		RoleRepository:      NewRoleRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		RentalRepository:    NewRentalRepository(db),
		ContractRepository:  NewContractRepository(db),
		DeliveryRepository:  NewDeliveryRepository(db),
		LabRepository:       NewLabRepository(db),
	}
}

// WithinTx runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join the transaction; any error rolls
// the whole step back.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
