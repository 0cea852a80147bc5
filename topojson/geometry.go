package topojson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/go.geojson"
)

// Geometry is a topology object: a named geometry that references the
// shared arcs of its topology.
type Geometry struct {
	ID         interface{}            `json:"id,omitempty"`
	Type       geojson.GeometryType   `json:"type"`
	Properties map[string]interface{} `json:"properties"`

	Point      []float64
	MultiPoint [][]float64
	Arcs       ArcRefs // For lines, multi lines, polygons and multi polygons
	Geometries []*Geometry
}

// arcDepth returns the nesting depth of the arcs of a geometry type, 0 if
// the type does not reference arcs.
func arcDepth(t geojson.GeometryType) int {
	switch t {
	case geojson.GeometryLineString:
		return 1
	case geojson.GeometryMultiLineString, geojson.GeometryPolygon:
		return 2
	case geojson.GeometryMultiPolygon:
		return 3
	}
	return 0
}

// MarshalJSON converts the geometry object into the correct JSON.
// This fulfills the json.Marshaler interface.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	// defining a struct here lets us define the order of the JSON elements.
	type geometry struct {
		ID          interface{}            `json:"id,omitempty"`
		Type        *geojson.GeometryType  `json:"type"`
		Properties  map[string]interface{} `json:"properties,omitempty"`
		Coordinates interface{}            `json:"coordinates,omitempty"`
		Arcs        *ArcRefs               `json:"arcs,omitempty"`
		Geometries  interface{}            `json:"geometries,omitempty"`
	}

	geo := &geometry{
		ID:         g.ID,
		Properties: g.Properties,
	}
	if g.Type != "" {
		geo.Type = &g.Type
	}

	switch g.Type {
	case geojson.GeometryPoint:
		geo.Coordinates = g.Point
	case geojson.GeometryMultiPoint:
		geo.Coordinates = g.MultiPoint
	case geojson.GeometryLineString, geojson.GeometryMultiLineString,
		geojson.GeometryPolygon, geojson.GeometryMultiPolygon:
		geo.Arcs = &g.Arcs
	case geojson.GeometryCollection:
		if g.Geometries == nil {
			geo.Geometries = []*Geometry{}
		} else {
			geo.Geometries = g.Geometries
		}
	}

	return json.Marshal(geo)
}

// UnmarshalJSON decodes the data into a TopoJSON geometry.
// This fulfills the json.Unmarshaler interface.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var object map[string]interface{}
	err := json.Unmarshal(data, &object)
	if err != nil {
		return err
	}

	return decodeGeometry(g, object)
}

func decodeGeometry(g *Geometry, object map[string]interface{}) error {
	t, ok := object["type"]
	if !ok {
		return errors.New("type property not defined")
	}

	switch s := t.(type) {
	case string:
		g.Type = geojson.GeometryType(s)
	case nil:
		g.Type = "" // Null geometry
	default:
		return errors.New("type property not string")
	}

	g.ID = object["id"]
	if props, ok := object["properties"].(map[string]interface{}); ok {
		g.Properties = props
	}

	var err error
	switch g.Type {
	case geojson.GeometryPoint:
		g.Point, err = decodePosition(object["coordinates"])
	case geojson.GeometryMultiPoint:
		g.MultiPoint, err = decodePositionSet(object["coordinates"])
	case geojson.GeometryLineString, geojson.GeometryMultiLineString,
		geojson.GeometryPolygon, geojson.GeometryMultiPolygon:
		g.Arcs, err = parseArcRefsDepth(object["arcs"], arcDepth(g.Type))
	case geojson.GeometryCollection:
		g.Geometries, err = decodeGeometries(object["geometries"])
	case "":
	default:
		err = fmt.Errorf("unknown geometry type %q", g.Type)
	}

	return err
}

func decodePosition(data interface{}) ([]float64, error) {
	coords, ok := data.([]interface{})
	if !ok {
		return nil, &MalformedTopologyError{Value: data, Reason: "not a valid position"}
	}

	result := make([]float64, 0, len(coords))
	for _, coord := range coords {
		if f, ok := coord.(float64); ok {
			result = append(result, f)
		} else {
			return nil, &MalformedTopologyError{Value: coord, Reason: "not a valid coordinate"}
		}
	}

	if len(result) < 2 {
		return nil, &MalformedTopologyError{Value: data, Reason: "position needs at least two coordinates"}
	}

	return result, nil
}

func decodePositionSet(data interface{}) ([][]float64, error) {
	points, ok := data.([]interface{})
	if !ok {
		return nil, &MalformedTopologyError{Value: data, Reason: "not a valid set of positions"}
	}

	result := make([][]float64, 0, len(points))
	for _, point := range points {
		if p, err := decodePosition(point); err == nil {
			result = append(result, p)
		} else {
			return nil, err
		}
	}

	return result, nil
}

func decodeGeometries(data interface{}) ([]*Geometry, error) {
	if vs, ok := data.([]interface{}); ok {
		geometries := make([]*Geometry, 0, len(vs))
		for _, v := range vs {
			g := &Geometry{}

			vmap, ok := v.(map[string]interface{})
			if !ok {
				break
			}

			err := decodeGeometry(g, vmap)
			if err != nil {
				return nil, err
			}

			geometries = append(geometries, g)
		}

		if len(geometries) == len(vs) {
			return geometries, nil
		}
	}

	return nil, fmt.Errorf("not a valid set of geometries, got %v", data)
}
