package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	// registers the mysql driver for sql.Open
	_ "github.com/go-sql-driver/mysql"

	tracker "github.com/malusev998/rate-tracker"
)

const MySQLTimeFormat = "2006-01-02 15:04:05"

type (
	IDGenerator interface {
		Generate() []byte
	}

	uuidGenerator struct{}

	mysqlStorage struct {
		ctx         context.Context
		db          *sql.DB
		idGenerator IDGenerator
		tableName   string
	}
)

var ErrNotEnoughBytesInGenerator = errors.New("id generator must return at least 16 bytes")

func (uuidGenerator) Generate() []byte {
	id := uuid.New()
	return id[:]
}

func NewMySQLStorage(config MySQLConfig) (tracker.Storage, error) {
	if config.ConnectionString == "" || config.TableName == "" {
		return nil, fmt.Errorf("%w: mysql needs a connection string and a table", ErrInvalidConfig)
	}

	db, err := sql.Open("mysql", config.ConnectionString)

	if err != nil {
		return nil, err
	}

	return NewSQLStorage(config.Ctx, db, config.IDGenerator, config.TableName, config.Migrate)
}

func NewSQLStorage(ctx context.Context, db *sql.DB, idGenerator IDGenerator, tableName string, migrate bool) (tracker.Storage, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if idGenerator == nil {
		idGenerator = uuidGenerator{}
	}

	storage := mysqlStorage{
		ctx:         ctx,
		db:          db,
		idGenerator: idGenerator,
		tableName:   tableName,
	}

	if migrate {
		if err := storage.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return storage, nil
}

func (m mysqlStorage) Migrate() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
	id BINARY(16) PRIMARY KEY,
	captured_at DATETIME NOT NULL,
	base_currency VARCHAR(8) NOT NULL,
	target_currency VARCHAR(8) NOT NULL,
	exchange_rate DECIMAL(20,10) NOT NULL,
	api_timestamp VARCHAR(32) NOT NULL,
	INDEX %s_captured_at_index (captured_at)
);`, m.tableName, m.tableName))

	return err
}

func (m mysqlStorage) Store(records []tracker.HistoryRecord) error {
	tx, err := m.db.BeginTx(m.ctx, nil)

	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(m.ctx, fmt.Sprintf(
		"INSERT INTO %s(id, captured_at, base_currency, target_currency, exchange_rate, api_timestamp) VALUES (?,?,?,?,?,?);",
		m.tableName,
	))

	if err != nil {
		_ = tx.Rollback()
		return err
	}

	defer stmt.Close()

	for _, record := range records {
		id := m.idGenerator.Generate()

		if len(id) < 16 {
			_ = tx.Rollback()
			return ErrNotEnoughBytesInGenerator
		}

		_, err = stmt.ExecContext(
			m.ctx,
			id[:16],
			record.CapturedAt.Format(MySQLTimeFormat),
			record.BaseCurrency,
			record.TargetCurrency,
			record.Rate,
			record.APITimestamp,
		)

		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (m mysqlStorage) Close() error {
	return m.db.Close()
}

func (m mysqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}

func (m mysqlStorage) Destination() string {
	return "mysql table " + m.tableName
}
