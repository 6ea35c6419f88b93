package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	tracker "github.com/malusev998/rate-tracker"
)

const CSVTimeFormat = "2006-01-02 15:04:05"

var (
	ErrFileIO = errors.New("history file error")

	csvHeader = []string{"timestamp", "base_currency", "target_currency", "exchange_rate", "api_timestamp"}
)

type csvStorage struct {
	path string
}

func NewCSVStorage(config CSVConfig) (tracker.Storage, error) {
	path := config.Path

	if path == "" {
		path = DefaultHistoryFile
	}

	return csvStorage{path: path}, nil
}

// exists reports whether the history file is already on disk. Only a
// not-exist error counts as absent; anything else is surfaced to the caller.
func (c csvStorage) exists() (bool, error) {
	_, err := os.Stat(c.path)

	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %v", ErrFileIO, err)
}

func (c csvStorage) Store(records []tracker.HistoryRecord) (err error) {
	exists, err := c.exists()

	if err != nil {
		return err
	}

	file, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrFileIO, closeErr)
		}
	}()

	writer := csv.NewWriter(file)

	if !exists {
		if err := writer.Write(csvHeader); err != nil {
			return fmt.Errorf("%w: %v", ErrFileIO, err)
		}
	}

	for _, record := range records {
		row := []string{
			record.CapturedAt.Format(CSVTimeFormat),
			record.BaseCurrency,
			record.TargetCurrency,
			record.Rate.String(),
			record.APITimestamp,
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrFileIO, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}

	return nil
}

func (c csvStorage) Migrate() error {
	return nil
}

func (c csvStorage) Close() error {
	return nil
}

func (c csvStorage) GetStorageProviderName() string {
	return string(CSV)
}

func (c csvStorage) Destination() string {
	return c.path
}
