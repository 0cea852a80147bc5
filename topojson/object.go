package topojson

import (
	"encoding/json"

	"github.com/paulmach/go.geojson"
)

// Object is a decoded geometry: the type of a topology object together with
// its absolute coordinates.
type Object struct {
	Type        geojson.GeometryType
	Coordinates Coordinates
	Point       []float64 // For points
	Geometries  []*Object // For geometry collections
}

// BuildGeometry decodes a topology object. The nesting of the coordinates
// follows the arcs of the object, whether or not it matches the declared
// type.
func BuildGeometry(obj *Geometry, arcs [][][]float64, t *Transform) (*Object, error) {
	out := &Object{
		Type: obj.Type,
	}

	switch obj.Type {
	case geojson.GeometryPoint:
		p, err := DecodePosition(obj.Point, t)
		if err != nil {
			return nil, err
		}
		out.Point = p
	case geojson.GeometryMultiPoint:
		points := make([][]float64, 0, len(obj.MultiPoint))
		for _, pos := range obj.MultiPoint {
			p, err := DecodePosition(pos, t)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		out.Coordinates = Coordinates{Points: points}
	case geojson.GeometryCollection:
		out.Geometries = make([]*Object, 0, len(obj.Geometries))
		for _, g := range obj.Geometries {
			o, err := BuildGeometry(g, arcs, t)
			if err != nil {
				return nil, err
			}
			out.Geometries = append(out.Geometries, o)
		}
	case "":
	default:
		c, err := Assemble(obj.Arcs, arcs, t)
		if err != nil {
			return nil, err
		}
		out.Coordinates = c
	}

	return out, nil
}

// MarshalJSON writes the object as a GeoJSON geometry. A null object is
// written as null.
func (o *Object) MarshalJSON() ([]byte, error) {
	type geometry struct {
		Type        geojson.GeometryType `json:"type"`
		Coordinates interface{}          `json:"coordinates,omitempty"`
		Geometries  []*Object            `json:"geometries,omitempty"`
	}

	switch o.Type {
	case "":
		return []byte("null"), nil
	case geojson.GeometryPoint:
		return json.Marshal(&geometry{Type: o.Type, Coordinates: o.Point})
	case geojson.GeometryCollection:
		geometries := o.Geometries
		if geometries == nil {
			geometries = []*Object{}
		}
		return json.Marshal(&geometry{Type: o.Type, Geometries: geometries})
	default:
		return json.Marshal(&geometry{Type: o.Type, Coordinates: o.Coordinates})
	}
}

// GeoJSON converts the object to a GeoJSON geometry. This fails when the
// nesting of the coordinates does not match the declared type. A null
// object results in a nil geometry.
func (o *Object) GeoJSON() (*geojson.Geometry, error) {
	switch o.Type {
	case "":
		return nil, nil
	case geojson.GeometryPoint:
		return geojson.NewPointGeometry(o.Point), nil
	case geojson.GeometryMultiPoint, geojson.GeometryLineString:
		if !o.Coordinates.IsLine() {
			return nil, &MalformedTopologyError{Value: o.Type, Reason: "expected a single line of coordinates"}
		}
		if o.Type == geojson.GeometryMultiPoint {
			return geojson.NewMultiPointGeometry(o.Coordinates.Points...), nil
		}
		return geojson.NewLineStringGeometry(o.Coordinates.Points), nil
	case geojson.GeometryMultiLineString, geojson.GeometryPolygon:
		lines, err := o.Coordinates.Lines()
		if err != nil {
			return nil, err
		}
		if o.Type == geojson.GeometryPolygon {
			return geojson.NewPolygonGeometry(lines), nil
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	case geojson.GeometryMultiPolygon:
		polygons, err := o.Coordinates.Polygons()
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiPolygonGeometry(polygons...), nil
	case geojson.GeometryCollection:
		geometries := make([]*geojson.Geometry, 0, len(o.Geometries))
		for _, child := range o.Geometries {
			g, err := child.GeoJSON()
			if err != nil {
				return nil, err
			}
			if g != nil {
				geometries = append(geometries, g)
			}
		}
		return geojson.NewCollectionGeometry(geometries...), nil
	}

	return nil, &MalformedTopologyError{Value: o.Type, Reason: "unsupported geometry type"}
}
