package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/sedegah/eta/internal/cli"
	"github.com/sedegah/eta/internal/config"
	"github.com/sedegah/eta/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
