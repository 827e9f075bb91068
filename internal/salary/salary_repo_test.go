package salary

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepoDB(t *testing.T) (*gorm.DB, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	assert.NoError(t, err)
	return gdb, sqlDB, mock
}

func TestWithTxBindsStatements(t *testing.T) {
	gdb, sqlDB, mock := newRepoDB(t)

	mock.ExpectBegin()
	tx, err := sqlDB.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	bound := NewRepository(gdb).WithTx(tx).(*repository).conn(context.Background())
	assert.Same(t, tx, bound.Statement.ConnPool)

	unbound := NewRepository(gdb).(*repository).conn(context.Background())
	assert.NotSame(t, tx, unbound.Statement.ConnPool)
}

func TestExistsForPeriodRunsOnTransaction(t *testing.T) {
	gdb, sqlDB, mock := newRepoDB(t)
	employeeID := uuid.NewString()

	mock.ExpectBegin()
	tx, err := sqlDB.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	qtx := NewRepository(gdb).WithTx(tx)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	taken, err := qtx.ExistsForPeriod(context.Background(), employeeID, 3, 2025)
	assert.NoError(t, err)
	assert.True(t, taken)

	mock.ExpectCommit()
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
