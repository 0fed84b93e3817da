package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jeffrey-cordero/capital/internal/logger"
)

func main() {
	log := logger.New()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("error pinging database")
	}

	path := os.Getenv("MIGRATIONS_FILE")
	if path == "" {
		path = "migrations/migrations.sql"
	}
	sqlBytes, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("error reading migrations file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info().Str("path", path).Msg("applying migrations")
	if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	log.Info().Msg("migrations applied")
}
