package topojson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/go.geojson"
)

func TestDecodeGeometryDepth(t *testing.T) {
	is := is.New(t)

	g := &Geometry{}
	err := json.Unmarshal([]byte(`{"type": "MultiPolygon", "arcs": [[[0, -2]], [[3], [4]]], "id": 7}`), g)
	is.NoErr(err)
	is.Equal(g.Type, geojson.GeometryMultiPolygon)
	is.Equal(g.ID, 7.0)
	is.Equal(g.Arcs, Nest(Nest(Line(0, -2)), Nest(Line(3), Line(4))))

	// Nesting has to match the declared type
	var malformed *MalformedTopologyError
	err = json.Unmarshal([]byte(`{"type": "Polygon", "arcs": [0, 1]}`), &Geometry{})
	is.True(errors.As(err, &malformed))

	err = json.Unmarshal([]byte(`{"type": "LineString", "arcs": [[0]]}`), &Geometry{})
	is.True(errors.As(err, &malformed))
}

func TestDecodeGeometryTypes(t *testing.T) {
	is := is.New(t)

	g := &Geometry{}
	is.NoErr(json.Unmarshal([]byte(`{"type": "Point", "coordinates": [1, 2]}`), g))
	is.Equal(g.Point, []float64{1, 2})

	g = &Geometry{}
	is.NoErr(json.Unmarshal([]byte(`{"type": "MultiPoint", "coordinates": [[1, 2], [3, 4]]}`), g))
	is.Equal(g.MultiPoint, [][]float64{{1, 2}, {3, 4}})

	g = &Geometry{}
	is.NoErr(json.Unmarshal([]byte(`{"type": null, "properties": {"a": "b"}}`), g))
	is.Equal(g.Type, geojson.GeometryType(""))
	is.Equal(g.Properties["a"], "b")

	is.Err(json.Unmarshal([]byte(`{"type": "Sphere"}`), &Geometry{}))
	is.Err(json.Unmarshal([]byte(`{"arcs": [0]}`), &Geometry{}))
	is.Err(json.Unmarshal([]byte(`{"type": "Point", "coordinates": [1]}`), &Geometry{}))
	is.Err(json.Unmarshal([]byte(`{"type": "GeometryCollection", "geometries": [1]}`), &Geometry{}))
}

func TestEncodeGeometry(t *testing.T) {
	is := is.New(t)

	g := &Geometry{
		ID:         "p1",
		Type:       geojson.GeometryPolygon,
		Properties: map[string]interface{}{"name": "Ward 1"},
		Arcs:       Nest(Line(0, ^1)),
	}

	b, err := json.Marshal(g)
	is.NoErr(err)
	is.Equal(string(b), `{"id":"p1","type":"Polygon","properties":{"name":"Ward 1"},"arcs":[[0,-2]]}`)

	back := &Geometry{}
	is.NoErr(json.Unmarshal(b, back))
	is.Equal(back.Arcs, g.Arcs)
	is.Equal(back.Properties, g.Properties)
}

func TestEncodeTopology(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(&Topology{})
	is.NoErr(err)
	is.Equal(string(b), `{"type":"Topology","objects":{},"arcs":[]}`)
}
