package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/rate-tracker/storage"
)

const insertQuery = "INSERT INTO rate_history_test(id, captured_at, base_currency, target_currency, exchange_rate, api_timestamp) VALUES (?,?,?,?,?,?);"

type (
	IDGeneratorMock struct {
		mock.Mock
	}
)

func (i *IDGeneratorMock) Generate() []byte {
	args := i.Called()
	if value, ok := args.Get(0).([]byte); ok {
		return value
	}
	return nil
}

func TestMysqlStorage_StoreUnit(t *testing.T) {
	t.Parallel()
	capturedAt := time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)

	t.Run("InsertMany", func(t *testing.T) {
		asserts := require.New(t)
		db, m, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		asserts.NoError(err)
		defer db.Close()

		st, err := storage.NewSQLStorage(context.Background(), db, nil, "rate_history_test", false)
		asserts.NoError(err)

		m.ExpectBegin()
		prepare := m.ExpectPrepare(insertQuery)
		prepare.ExpectExec().
			WithArgs(sqlmock.AnyArg(), "2024-03-01 09:05:07", "USD", "EUR", "0.5", "2024-03-01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		prepare.ExpectExec().
			WithArgs(sqlmock.AnyArg(), "2024-03-01 09:05:07", "USD", "GBP", "1.5", "2024-03-01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		m.ExpectCommit()

		asserts.NoError(st.Store(records(capturedAt, "EUR", "GBP")))
		asserts.NoError(m.ExpectationsWereMet())
	})

	t.Run("TransactionNotStarted", func(t *testing.T) {
		asserts := require.New(t)
		db, m, _ := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		defer db.Close()
		st, _ := storage.NewSQLStorage(context.Background(), db, nil, "rate_history_test", false)

		m.ExpectBegin().WillReturnError(errors.New("error while starting transaction"))

		err := st.Store(records(capturedAt, "EUR"))
		asserts.Error(err)
		asserts.Equal("error while starting transaction", err.Error())
		asserts.NoError(m.ExpectationsWereMet())
	})

	t.Run("PrepareWithError", func(t *testing.T) {
		asserts := require.New(t)
		db, m, _ := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		defer db.Close()
		st, _ := storage.NewSQLStorage(context.Background(), db, nil, "rate_history_test", false)

		m.ExpectBegin()
		m.ExpectPrepare(insertQuery).WillReturnError(errors.New("cannot create prepare statement"))
		m.ExpectRollback()

		err := st.Store(records(capturedAt, "EUR"))
		asserts.Error(err)
		asserts.Equal("cannot create prepare statement", err.Error())
		asserts.NoError(m.ExpectationsWereMet())
	})

	t.Run("ShortGeneratedID", func(t *testing.T) {
		asserts := require.New(t)
		db, m, _ := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		defer db.Close()

		generator := &IDGeneratorMock{}
		generator.On("Generate").Return(make([]byte, 10))

		st, _ := storage.NewSQLStorage(context.Background(), db, generator, "rate_history_test", false)

		m.ExpectBegin()
		m.ExpectPrepare(insertQuery)
		m.ExpectRollback()

		err := st.Store(records(capturedAt, "EUR"))
		asserts.True(errors.Is(err, storage.ErrNotEnoughBytesInGenerator))
		asserts.NoError(m.ExpectationsWereMet())
		generator.AssertExpectations(t)
	})
}

func TestMysqlStorage_Migrate(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	db, m, _ := sqlmock.New()
	defer db.Close()

	m.ExpectExec("CREATE TABLE IF NOT EXISTS rate_history_test").WillReturnResult(sqlmock.NewResult(0, 0))

	st, err := storage.NewSQLStorage(context.Background(), db, nil, "rate_history_test", true)
	asserts.NoError(err)
	asserts.Equal("mysql", st.GetStorageProviderName())
	asserts.Equal("mysql table rate_history_test", st.Destination())
	asserts.NoError(m.ExpectationsWereMet())
}

func TestMysqlStorage_MigrateFailureClosesDB(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	db, m, _ := sqlmock.New()

	m.ExpectExec("CREATE TABLE IF NOT EXISTS rate_history_test").WillReturnError(errors.New("access denied"))
	m.ExpectClose()

	st, err := storage.NewSQLStorage(context.Background(), db, nil, "rate_history_test", true)

	asserts.Nil(st)
	asserts.EqualError(err, "access denied")
	asserts.NoError(m.ExpectationsWereMet())
}
