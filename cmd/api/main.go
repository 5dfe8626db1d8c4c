package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/server"
)

// @title AlumniConnect API
// @version 1.0
// @description Backend for the AlumniConnect alumni network platform
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Missing .env is fine; configuration falls back to YAML and defaults
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
