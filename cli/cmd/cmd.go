package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	tracker "github.com/malusev998/rate-tracker"
)

type (
	// ServiceFactory builds the service once arguments are validated, so a
	// broken storage config never hides usage or help output.
	ServiceFactory func(logger *log.Logger) (tracker.Service, error)

	Config struct {
		Ctx     context.Context
		Service ServiceFactory
		Now     func() time.Time
	}
)

func newRootCommand(config *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rate-tracker CURRENCY [CURRENCY...]",
		Short: "Fetch currency exchange rates and log them to a CSV history",
		Long: `Fetches the latest exchange rates, prints a report for the requested
currency codes and appends the valid rates to the history log.`,
		Example: "  rate-tracker GBP EUR JPY",
		Args:    requireCurrencies,
		RunE:    trackCobraCommand(config),
	}

	return rootCmd
}

func Execute(config *Config) error {
	return newRootCommand(config).Execute()
}
