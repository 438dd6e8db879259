package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOrderRepository creates a GormOrderRepository with a mocked SQL connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("maps missing order to ErrNotFound", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
			WithArgs(orderID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByID(context.Background(), orderID)

		assert.Nil(t, order)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_CountByBuyer(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	buyerID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE buyer_id = \$1 AND status = \$2`).
		WithArgs(buyerID, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByBuyer(context.Background(), buyerID, shared.Filter{
		Filters: map[string]any{"status": "pending"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_GenerateOrderNumbers(t *testing.T) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("FO-%d-", year)

	t.Run("formats reserved sequence values", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"nextval"}).
			AddRow(int64(42)).
			AddRow(int64(43)).
			AddRow(int64(44))

		mock.ExpectQuery(`SELECT nextval\('order_number_seq'\) FROM generate_series\(1, \$1\)`).
			WithArgs(3).
			WillReturnRows(rows)

		numbers, err := repo.GenerateOrderNumbers(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, []string{prefix + "00042", prefix + "00043", prefix + "00044"}, numbers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when the sequence returns too few values", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT nextval\('order_number_seq'\) FROM generate_series\(1, \$1\)`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(int64(7)))

		numbers, err := repo.GenerateOrderNumbers(context.Background(), 2)

		assert.Error(t, err)
		assert.Nil(t, numbers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero count skips the query", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		numbers, err := repo.GenerateOrderNumbers(context.Background(), 0)

		assert.NoError(t, err)
		assert.Nil(t, numbers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
