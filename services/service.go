package services

import (
	"context"
	"errors"
	"log"
	"time"

	tracker "github.com/malusev998/rate-tracker"
	"github.com/malusev998/rate-tracker/fetchers"
)

var ErrNothingToLog = errors.New("no valid rates to log")

type Service struct {
	Fetcher tracker.Fetcher
	Storage []tracker.Storage
	Logger  *log.Logger
	Now     func() time.Time
}

func (s Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

func (s Service) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}

	return s.Logger
}

// Fetch runs the single rate query. Every failure is reported through the
// logger before it is returned.
func (s Service) Fetch(ctx context.Context, currencies []string) (*tracker.Result, error) {
	logger := s.logger()
	logger.Println("Fetching exchange rates...")

	result, err := s.Fetcher.Fetch(ctx, currencies)

	if err == nil {
		return result, nil
	}

	switch {
	case errors.Is(err, fetchers.ErrTimeout):
		logger.Println("Error: Request timed out. Please check your internet connection.")
	case errors.Is(err, fetchers.ErrConnection):
		logger.Println("Error: Network connection failed. Please check your internet.")
	default:
		logger.Printf("Error: %v\n", err)
	}

	return nil, err
}

// Log appends the valid rates of result to every configured storage. All
// rows share one capture timestamp. A failing storage does not stop the
// remaining ones; the first error is returned.
func (s Service) Log(result *tracker.Result) error {
	if !result.HasRates() {
		return ErrNothingToLog
	}

	logger := s.logger()
	records := result.Records(s.now())

	var firstErr error

	for _, storage := range s.Storage {
		if err := storage.Store(records); err != nil {
			logger.Printf("Error writing to %s: %v\n", storage.GetStorageProviderName(), err)

			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		logger.Printf("Data logged to %s\n", storage.Destination())
	}

	return firstErr
}

// Close releases every storage and returns the first error.
func (s Service) Close() error {
	var firstErr error

	for _, storage := range s.Storage {
		if err := storage.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
