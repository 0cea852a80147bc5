package convert

import (
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulsmith/gogeos/geos"
)

var ErrInvalidGeometry = errors.New("geometry is invalid after repair")

// Repair applies a zero-width buffer to polygonal geometries, which resolves
// self-intersections and bow ties. Other geometries are returned as-is.
func Repair(g *geojson.Geometry) (*geojson.Geometry, error) {
	if g == nil || (!g.IsPolygon() && !g.IsMultiPolygon()) {
		return g, nil
	}

	geom, err := GeometryToGeos(g)
	if err != nil {
		return nil, err
	}

	// Apply a buffer to avoid self-intersections
	geom, err = geom.Buffer(0)
	if err != nil {
		return nil, err
	}

	valid, err := geom.IsValid()
	if err != nil {
		return nil, err
	}
	empty, err := geom.IsEmpty()
	if err != nil {
		return nil, err
	}
	if !valid || empty {
		return nil, ErrInvalidGeometry
	}

	return GeometryFromGeos(geom)
}

func GeometryToGeos(g *geojson.Geometry) (*geos.Geometry, error) {
	switch g.Type {
	case geojson.GeometryPolygon:
		return polygonToGeos(g.Polygon)
	case geojson.GeometryMultiPolygon:
		geoms := make([]*geos.Geometry, 0, len(g.MultiPolygon))
		for _, p := range g.MultiPolygon {
			poly, err := polygonToGeos(p)
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, poly)
		}
		return geos.NewCollection(geos.MULTIPOLYGON, geoms...)
	default:
		return nil, fmt.Errorf("Unsupported geometry type: %v", g.Type)
	}
}

func polygonToGeos(rings [][][]float64) (*geos.Geometry, error) {
	if len(rings) == 0 {
		return nil, errors.New("Polygon without rings")
	}

	coords := make([][]geos.Coord, 0, len(rings))
	for _, ring := range rings {
		points := make([]geos.Coord, 0, len(ring))
		for _, p := range ring {
			points = append(points, geos.Coord{
				X: p[0],
				Y: p[1],
			})
		}
		coords = append(coords, points)
	}

	return geos.NewPolygon(coords[0], coords[1:]...)
}

func GeometryFromGeos(geom *geos.Geometry) (*geojson.Geometry, error) {
	t, err := geom.Type()
	if err != nil {
		return nil, err
	}

	switch t {
	case geos.POLYGON:
		rings, err := polyToRings(geom)
		if err != nil {
			return nil, err
		}
		return geojson.NewPolygonGeometry(rings), nil
	case geos.MULTIPOLYGON:
		c, err := geom.NGeometry()
		if err != nil {
			return nil, err
		}

		polygons := make([][][][]float64, c)
		for i := 0; i < c; i++ {
			g, err := geom.Geometry(i)
			if err != nil {
				return nil, err
			}

			r, err := polyToRings(g)
			if err != nil {
				return nil, err
			}

			polygons[i] = r
		}
		return geojson.NewMultiPolygonGeometry(polygons...), nil
	default:
		return nil, fmt.Errorf("Unknown geometry type: %v", t)
	}
}

func polyToRings(geom *geos.Geometry) ([][][]float64, error) {
	shell, err := geom.Shell()
	if err != nil {
		return nil, err
	}
	c, err := toCoordinates(shell)
	if err != nil {
		return nil, err
	}

	holes, err := geom.Holes()
	if err != nil {
		return nil, err
	}

	rings := make([][][]float64, len(holes)+1)
	rings[0] = c
	for i, h := range holes {
		c, err := toCoordinates(h)
		if err != nil {
			return nil, err
		}
		rings[i+1] = c
	}

	return rings, nil
}

func toCoordinates(ring *geos.Geometry) ([][]float64, error) {
	points, err := ring.Coords()
	if err != nil {
		return nil, err
	}

	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.X, p.Y}
	}
	return coords, nil
}
