package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rubenv/topo2geojson/convert"
)

type GlobalOptions struct {
	Config  string `short:"c" long:"config" description:"Config file path"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if g.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func (g *GlobalOptions) LoadConfig() (*convert.Config, error) {
	if g.Config == "" {
		return convert.NewConfig(), nil
	}
	return convert.LoadConfig(g.Config)
}
