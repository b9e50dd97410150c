package main

import (
	"github.com/rs/zerolog/log"
	"news-video-lambda/config"
	"news-video-lambda/infrastructure/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire application")
	}
	defer app.Close()

	app.Logger.InfoWithFields("Starting server", map[string]interface{}{"port": cfg.Server.Port})

	err = app.Router.Run(":" + cfg.Server.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
