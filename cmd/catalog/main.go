// Command catalog runs the movie catalog API.
//
// @title                       Movie Catalog API
// @version                     1.0
// @description                 Movie catalog with accounts, favorites, watch history and reviews.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "catalog",
		Usage: "movie catalog API",
		Commands: []*cli.Command{
			serveCommand(),
			seedCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("catalog exited")
	}
}
