package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rubenv/topo2geojson/convert"
)

type CmdConvert struct {
	global *GlobalOptions

	Layer       string `short:"l" long:"layer" description:"Layer to convert (default: first layer)"`
	IDProperty  string `long:"id-property" description:"Property to use as feature id"`
	Repair      bool   `short:"r" long:"repair" description:"Repair polygons with a zero-width buffer"`
	SkipInvalid bool   `long:"skip-invalid" description:"Skip objects that cannot be converted"`
	Workers     int    `short:"w" long:"workers" description:"Number of conversion workers"`
	Progress    bool   `short:"p" long:"progress" description:"Show a progress bar"`
}

func init() {
	_, err := parser.AddCommand("convert",
		"Convert TopoJSON to GeoJSON",
		"Convert the objects of one TopoJSON layer into a GeoJSON feature collection",
		&CmdConvert{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdConvert) Usage() string {
	return "input.topojson output.geojson"
}

// Apply overrides config values with the flags that were given.
func (cmd CmdConvert) Apply(config *convert.Config) {
	if cmd.Layer != "" {
		config.Layer = cmd.Layer
	}
	if cmd.IDProperty != "" {
		config.IDProperty = cmd.IDProperty
	}
	if cmd.Repair {
		config.Repair = true
	}
	if cmd.SkipInvalid {
		config.SkipInvalid = true
	}
	if cmd.Workers > 0 {
		config.Workers = cmd.Workers
	}
}

func (cmd CmdConvert) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output path not specified, Usage: %s", cmd.Usage())
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return fmt.Errorf("Failed to load config: %s", err.Error())
	}
	cmd.Apply(config)

	log := cmd.global.Logger()
	c := convert.NewConverter(config, log)
	if cmd.Progress {
		c.Progress = os.Stderr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("input", args[0]).Str("output", args[1]).Msg("Converting")
	err = c.ConvertFile(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("Failed to convert: %s", err.Error())
	}

	return nil
}
