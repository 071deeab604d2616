// Command migrate applies the SQL migrations to the postgres database
// configured with DB_DSN.
//
//	migrate [-down] [-dsn postgres://...]
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocket-ledger/backend/internal/migrations"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("DB_DSN"), "postgres connection string, defaults to DB_DSN")
	down := flag.Bool("down", false, "revert all migrations instead of applying them")
	flag.Parse()

	if *dsn == "" {
		log.Fatal().Msg("no database configured, set DB_DSN or pass -dsn")
	}

	run := migrations.Up
	if *down {
		run = migrations.Down
	}

	status, err := run(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Uint("before", status.Before).Uint("after", status.After).Msg("done")
}
