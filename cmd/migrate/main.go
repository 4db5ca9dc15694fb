package main

import (
	"os"
	"roomapi/config"
	"roomapi/helper"
	"roomapi/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop"

func main() {
	cfg := config.Get()
	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if len(os.Args) != 2 {
		log.Fatal().Msg(usage)
	}

	action := os.Args[1]

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Str("driver", cfg.DB.Driver).Msg("Migration failed")
	}

	log.Info().Str("action", action).Str("driver", cfg.DB.Driver).Msg("Migration completed")
}
