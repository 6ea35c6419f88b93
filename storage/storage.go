package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tracker "github.com/malusev998/rate-tracker"
)

type (
	Provider   string
	BaseConfig struct {
		Ctx     context.Context
		Migrate bool
	}
	CSVConfig struct {
		Path string
	}
	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
		IDGenerator      IDGenerator
	}
	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}
)

const (
	CSV     Provider = "csv"
	MySQL   Provider = "mysql"
	MongoDB Provider = "mongodb"

	DefaultHistoryFile = "portfolio_history.csv"
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
	ErrInvalidConfig   = errors.New("invalid storage config")
)

func ConvertToProvidersFromStringSlice(strings []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "csv":
		return CSV, nil
	case "mysql":
		return MySQL, nil
	case "mongodb", "mongo":
		return MongoDB, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewStorage(provider Provider, config interface{}) (tracker.Storage, error) {
	switch provider {
	case CSV:
		c, ok := config.(CSVConfig)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, provider)
		}
		return NewCSVStorage(c)
	case MySQL:
		c, ok := config.(MySQLConfig)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, provider)
		}
		return NewMySQLStorage(c)
	case MongoDB:
		c, ok := config.(MongoDBConfig)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, provider)
		}
		return NewMongoStorage(c)
	}

	return nil, ErrStorageNotFound
}
