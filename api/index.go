package handler

import (
	"net/http"
	"roomapi/config"
	"roomapi/di"
	"roomapi/shared/logger"
	"roomapi/shared/timezone"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler is the serverless entry point. The service is built on the first invocation and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if err := timezone.Init(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("Falling back to UTC")
		}

		app = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
