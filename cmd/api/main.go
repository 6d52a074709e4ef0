package main

import (
	"os"

	"github.com/Aisyah456/liblary-web/internal/pkg/logger"
	"github.com/Aisyah456/liblary-web/internal/server"
)

// @title Library Administration API
// @version 1.0
// @description Back office API for faculty and major reference data, the member directory and library clearance requests

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
