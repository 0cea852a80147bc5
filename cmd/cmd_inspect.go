package cmd

import (
	"fmt"
	"strconv"

	"github.com/kr/pretty"
	"github.com/rubenv/topo2geojson/convert"
)

type CmdInspect struct {
	global *GlobalOptions

	Layer string `short:"l" long:"layer" description:"Layer to inspect (default: first layer)"`
}

func init() {
	_, err := parser.AddCommand("inspect",
		"Inspect an object",
		"Print the topology object and its decoded geometry",
		&CmdInspect{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInspect) Usage() string {
	return "input.topojson index"
}

func (cmd CmdInspect) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	topo, err := convert.ReadTopology(args[0])
	if err != nil {
		return err
	}

	objects, err := convert.Objects(topo, cmd.Layer)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(objects) {
		return fmt.Errorf("No such object: %d, layer has %d objects", index, len(objects))
	}

	obj := objects[index]
	fmt.Printf("%# v\n", pretty.Formatter(obj))

	geom, err := topo.Geometry(obj)
	if err != nil {
		return fmt.Errorf("Failed to decode object: %s", err.Error())
	}

	fmt.Printf("%# v\n", pretty.Formatter(geom))
	return nil
}
