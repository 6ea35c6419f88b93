package cmd

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/malusev998/rate-tracker/fetchers"
	"github.com/malusev998/rate-tracker/services"
)

func requireCurrencies(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fetchers.ErrNoCurrencies
	}

	return nil
}

func trackCobraCommand(config *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := log.New(cmd.OutOrStdout(), "", 0)

		service, err := config.Service(logger)

		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		defer service.Close()

		now := config.Now
		if now == nil {
			now = time.Now
		}

		ctx := config.Ctx
		if ctx == nil {
			ctx = context.Background()
		}

		logger.Printf("Tracking %d currencies: %s\n", len(args), strings.Join(args, ", "))

		result, err := service.Fetch(ctx, args)

		if err != nil {
			logger.Println("Failed to fetch exchange rates.")
			return nil
		}

		services.Display(cmd.OutOrStdout(), result, now())

		if !result.HasRates() {
			logger.Println("No valid rates to log")
			return nil
		}

		// storage failures are already reported and do not change the exit status
		_ = service.Log(result)

		return nil
	}
}
