package repos

import (
	"context"
	"database/sql"
	"testing"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEquipmentRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewEquipmentRepository(db)
	ctx := context.Background()

	t.Run("Success with spec", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "type", "brand", "model", "description", "price", "stock", "warranty_period", "release_date", "image", "is_in_repair"}).
			AddRow("eq-1", "ThinkPad T14", "computer", "Lenovo", "T14", "workhorse", "300", 5, "12 months", nil, "", false)

		mock.ExpectQuery("SELECT (.+) FROM equipments WHERE id = \\$1").
			WithArgs("eq-1").
			WillReturnRows(rows)

		specRows := sqlmock.NewRows([]string{"id", "processor", "ram", "storage", "os"}).
			AddRow("cs-1", "i7", "16GB", "512GB", "Linux")
		mock.ExpectQuery("SELECT (.+) FROM computer_specs WHERE equipment_id = \\$1").
			WithArgs("eq-1").
			WillReturnRows(specRows)

		eq, err := repo.GetByID(ctx, "eq-1")
		assert.NoError(t, err)
		assert.Equal(t, "ThinkPad T14", eq.Name)
		assert.True(t, eq.Price.Equal(decimal.NewFromInt(300)))
		spec, ok := eq.Spec.(*domain.ComputerSpec)
		assert.True(t, ok)
		assert.Equal(t, "i7", spec.Processor)
	})

	t.Run("Missing spec row is legal", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "type", "brand", "model", "description", "price", "stock", "warranty_period", "release_date", "image", "is_in_repair"}).
			AddRow("eq-2", "LaserJet", "printer", "HP", "M400", "", "120", 1, "", nil, "", false)

		mock.ExpectQuery("SELECT (.+) FROM equipments WHERE id = \\$1").
			WithArgs("eq-2").
			WillReturnRows(rows)
		mock.ExpectQuery("SELECT (.+) FROM printer_specs WHERE equipment_id = \\$1").
			WithArgs("eq-2").
			WillReturnError(sql.ErrNoRows)

		eq, err := repo.GetByID(ctx, "eq-2")
		assert.NoError(t, err)
		assert.Nil(t, eq.Spec)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM equipments WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestEquipmentRepository_AdjustStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewEquipmentRepository(db)
	ctx := context.Background()

	t.Run("Decrement succeeds while stock remains", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipments SET stock = stock \\+ \\$1 WHERE id = \\$2 AND stock \\+ \\$1 >= 0").
			WithArgs(int32(-1), "eq-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AdjustStock(ctx, "eq-1", -1)
		assert.NoError(t, err)
	})

	t.Run("Guard blocks oversell", func(t *testing.T) {
		// Zero rows affected means the guard predicate rejected the write.
		mock.ExpectExec("UPDATE equipments SET stock = stock \\+ \\$1 WHERE id = \\$2 AND stock \\+ \\$1 >= 0").
			WithArgs(int32(-1), "eq-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AdjustStock(ctx, "eq-1", -1)
		assert.Error(t, err)
		assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
		assert.Contains(t, err.Error(), "out of stock")
	})
}

func TestEquipmentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewEquipmentRepository(db)
	ctx := context.Background()

	eq := &domain.Equipment{
		Name:  "iPhone 15",
		Type:  domain.EquipmentTypePhone,
		Brand: "Apple",
		Model: "15",
		Price: decimal.NewFromInt(45),
		Stock: 3,
		Spec:  &domain.PhoneSpec{ScreenSize: "6.1", Battery: "3349mAh", Camera: "48MP", OS: "iOS"},
	}

	mock.ExpectExec("INSERT INTO equipments").
		WithArgs(sqlmock.AnyArg(), eq.Name, eq.Type, eq.Brand, eq.Model, eq.Description, eq.Price, eq.Stock, eq.WarrantyPeriod, eq.ReleaseDate, eq.Image, eq.IsInRepair).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO phone_specs").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "6.1", "3349mAh", "48MP", "iOS").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, eq)
	assert.NoError(t, err)
	assert.NotEmpty(t, eq.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
