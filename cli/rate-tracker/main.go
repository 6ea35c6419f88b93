package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/malusev998/rate-tracker/cli/cmd"
)

func main() {
	ctx := context.Background()
	v := viper.New()

	if err := setupViper(v); err != nil {
		log.Fatalf("Error while reading in the config file: %v", err)
	}

	if err := cmd.Execute(&cmd.Config{
		Ctx:     ctx,
		Service: createService(ctx, v),
	}); err != nil {
		os.Exit(1)
	}
}
