package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb"
	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog"
	"github.com/rubenv/topo2geojson/topojson"
	"golang.org/x/sync/errgroup"
)

// Converter turns one layer of a topology into a GeoJSON feature
// collection.
type Converter struct {
	config *Config
	log    zerolog.Logger

	// Progress bar output, none when nil
	Progress io.Writer
}

func NewConverter(config *Config, log zerolog.Logger) *Converter {
	if config == nil {
		config = NewConfig()
	}
	return &Converter{
		config: config,
		log:    log,
	}
}

// Objects returns the objects of a layer: the members of a geometry
// collection, or the layer object itself.
func Objects(topo *topojson.Topology, layer string) ([]*topojson.Geometry, error) {
	if layer == "" {
		layers := topo.Layers()
		if len(layers) == 0 {
			return nil, fmt.Errorf("Topology has no objects")
		}
		layer = layers[0]
	}

	obj, ok := topo.Objects[layer]
	if !ok {
		return nil, fmt.Errorf("Unknown layer: %s", layer)
	}

	if obj.Type == geojson.GeometryCollection {
		return obj.Geometries, nil
	}
	return []*topojson.Geometry{obj}, nil
}

// Feature decodes a single object and wraps it into a feature. The index
// is used as id when nothing better is available.
func (c *Converter) Feature(topo *topojson.Topology, obj *topojson.Geometry, index int) (*geojson.Feature, error) {
	o, err := topo.Geometry(obj)
	if err != nil {
		return nil, err
	}

	geom, err := o.GeoJSON()
	if err != nil {
		return nil, err
	}

	if c.config.Repair {
		geom, err = Repair(geom)
		if err != nil {
			return nil, err
		}
	}

	f := geojson.NewFeature(geom)
	for k, v := range obj.Properties {
		f.Properties[k] = v
	}

	f.ID = index
	if obj.ID != nil {
		f.ID = obj.ID
	} else if c.config.IDProperty != "" {
		if id, ok := obj.Properties[c.config.IDProperty]; ok {
			f.ID = id
		}
	}

	return f, nil
}

// Convert decodes all objects of the configured layer, in parallel. Feature
// order matches object order.
func (c *Converter) Convert(ctx context.Context, topo *topojson.Topology) (*geojson.FeatureCollection, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	objects, err := Objects(topo, c.config.Layer)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("objects", len(objects)).Int("arcs", len(topo.Arcs)).Msg("Converting layer")

	var bar *pb.ProgressBar
	if c.Progress != nil {
		bar = pb.New(len(objects))
		bar.Output = c.Progress
		bar.Start()
		defer bar.Finish()
	}

	features := make([]*geojson.Feature, len(objects))
	indexes := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(indexes)
		for i := range objects {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workers := c.config.Workers
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				f, err := c.Feature(topo, objects[i], i)
				if bar != nil {
					bar.Increment()
				}
				if err != nil {
					if !c.config.SkipInvalid {
						return fmt.Errorf("object %d: %w", i, err)
					}
					c.log.Warn().Err(err).Int("index", i).Interface("id", objects[i].ID).Msg("Skipping object")
					continue
				}
				features[i] = f
			}
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		if f != nil {
			fc.AddFeature(f)
		}
	}

	skipped := len(objects) - len(fc.Features)
	if skipped > 0 {
		c.log.Warn().Int("skipped", skipped).Msg("Some objects could not be converted")
	}
	c.log.Info().Int("features", len(fc.Features)).Msg("Converted layer")

	return fc, nil
}

// ConvertFile reads a TopoJSON file and writes the features of one of its
// layers to a GeoJSON file.
func (c *Converter) ConvertFile(ctx context.Context, input, output string) error {
	topo, err := ReadTopology(input)
	if err != nil {
		return err
	}

	fc, err := c.Convert(ctx, topo)
	if err != nil {
		return err
	}

	fp, err := os.Create(output)
	if err != nil {
		return err
	}

	err = json.NewEncoder(fp).Encode(fc)
	if err != nil {
		fp.Close()
		return err
	}

	return fp.Close()
}

func ReadTopology(filename string) (*topojson.Topology, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	topo, err := topojson.Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", filename, err)
	}
	return topo, nil
}
