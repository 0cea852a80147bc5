package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rubenv/topo2geojson/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := cmd.Run()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
}
