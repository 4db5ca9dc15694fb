package main

import (
	"roomapi/config"
	"roomapi/di"
	"roomapi/helper"
	"roomapi/shared/logger"
	"roomapi/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Room API
// @version 1.0
// @description Create, list and look up rooms.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
