package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	"github.com/malusev998/rate-tracker/fetchers"
	"github.com/malusev998/rate-tracker/storage"
)

type (
	StorageConfig map[storage.Provider]interface{}
	Config        struct {
		URL           string
		Timeout       time.Duration
		Storage       []storage.Provider
		StorageConfig StorageConfig
	}
)

func setupViper(v *viper.Viper) error {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("RATE_TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("url", fetchers.ExchangeRateAPIURL)
	v.SetDefault("timeout", fetchers.DefaultTimeout)
	v.SetDefault("history_file", storage.DefaultHistoryFile)
	v.SetDefault("storage", []string{string(storage.CSV)})
	v.SetDefault("migrate", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

func getMysqlDSN(config map[string]string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = config["user"]
	mysqlDriverConfig.Passwd = config["password"]
	mysqlDriverConfig.Addr = config["addr"]
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = config["db"]

	return mysqlDriverConfig.FormatDSN()
}

func getConfig(ctx context.Context, v *viper.Viper) (*Config, error) {
	storages, err := storage.ConvertToProvidersFromStringSlice(v.GetStringSlice("storage"))

	if err != nil {
		return nil, err
	}

	mysqlConfig := v.GetStringMapString("databases.mysql")
	mongodbConfig := v.GetStringMapString("databases.mongodb")

	storageBaseConfig := storage.BaseConfig{
		Ctx:     ctx,
		Migrate: v.GetBool("migrate"),
	}

	return &Config{
		URL:     v.GetString("url"),
		Timeout: v.GetDuration("timeout"),
		Storage: storages,
		StorageConfig: StorageConfig{
			storage.CSV: storage.CSVConfig{
				Path: v.GetString("history_file"),
			},
			storage.MySQL: storage.MySQLConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: getMysqlDSN(mysqlConfig),
				TableName:        mysqlConfig["table"],
			},
			storage.MongoDB: storage.MongoDBConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: mongodbConfig["uri"],
				Database:         mongodbConfig["database"],
				Collection:       mongodbConfig["collection"],
			},
		},
	}, nil
}
