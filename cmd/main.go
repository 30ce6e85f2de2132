// Package main provides the API to manage a single account's balance,
// savings and recorded movements.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/gustavoschneider/simple-code-challenge/cmd/httpserver"
	"github.com/gustavoschneider/simple-code-challenge/internal/membank"
	"github.com/gustavoschneider/simple-code-challenge/internal/middleware"
	"github.com/gustavoschneider/simple-code-challenge/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db := membank.Setup()

	server := httpserver.New(db, logger, config)

	logger.Info().Msg("SAVINGS LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
