package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/proroofers/crm-api/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// The guarded update must filter on both id and the version read at load
// time, so a row changed in between matches nothing.
func TestCustomerUpdateSQLIsVersionGuarded(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCustomerRepository(db)

	customer := &models.Customer{
		ID:        3,
		FirstName: "Rita", LastName: "Johnson", Email: "r@example.com", Phone: "555",
		BillingStreet: "a", BillingCity: "b", BillingState: "c", BillingZipCode: "d",
		PropertyStreet: "a", PropertyCity: "b", PropertyState: "c", PropertyZipCode: "d",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `customers` SET .+ WHERE id = \\? AND version = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(customer, 7))
	require.Equal(t, uint64(8), customer.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdateMissRechecksExistence(t *testing.T) {
	t.Run("row still exists", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `customers` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `customers` WHERE id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

		err := repo.Update(&models.Customer{ID: 3}, 7)
		require.ErrorIs(t, err, ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row deleted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `customers` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `customers` WHERE id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

		err := repo.Update(&models.Customer{ID: 3}, 7)
		require.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
