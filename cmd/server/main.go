package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/config"
	"meus-podcasts/internal/db"
	"meus-podcasts/internal/feed"
	"meus-podcasts/internal/handlers"
	"meus-podcasts/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logg := logger.New(cfg.LogLevel)

	dbConn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbConn.Close()

	if err := db.RunMigrations(context.Background(), dbConn); err != nil {
		logg.Fatal().Err(err).Msg("failed to run migrations")
	}
	logg.Info().Msg("database ready")

	store := db.NewStore(dbConn)
	tokens := auth.NewManager(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	fetcher := feed.NewFetcher()

	h := handlers.New(store, tokens, fetcher, logg)

	logg.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(":"+cfg.Port, h.Router()); err != nil {
		logg.Fatal().Err(err).Msg("server stopped")
	}
}
