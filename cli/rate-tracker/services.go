package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"

	tracker "github.com/malusev998/rate-tracker"
	"github.com/malusev998/rate-tracker/cli/cmd"
	"github.com/malusev998/rate-tracker/fetchers"
	"github.com/malusev998/rate-tracker/services"
	"github.com/malusev998/rate-tracker/storage"
)

func createStorages(config *Config) ([]tracker.Storage, error) {
	storages := make([]tracker.Storage, 0, len(config.Storage))
	for _, s := range config.Storage {
		c, ok := config.StorageConfig[s]
		if !ok {
			return nil, fmt.Errorf("storage %s does not exist", s)
		}

		st, err := storage.NewStorage(s, c)

		if err != nil {
			closeStorages(storages)
			return nil, fmt.Errorf("error while creating %s storage: %w", s, err)
		}

		storages = append(storages, st)
	}

	return storages, nil
}

func closeStorages(storages []tracker.Storage) {
	for _, st := range storages {
		_ = st.Close()
	}
}

func createFetcher(config *Config) tracker.Fetcher {
	return fetchers.NewExchangeRateAPIFetcher(config.URL, config.Timeout)
}

func createService(ctx context.Context, v *viper.Viper) cmd.ServiceFactory {
	return func(logger *log.Logger) (tracker.Service, error) {
		config, err := getConfig(ctx, v)

		if err != nil {
			return nil, fmt.Errorf("error in configuration: %w", err)
		}

		storages, err := createStorages(config)

		if err != nil {
			return nil, err
		}

		return services.Service{
			Fetcher: createFetcher(config),
			Storage: storages,
			Logger:  logger,
		}, nil
	}
}
