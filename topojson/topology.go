package topojson

import (
	"encoding/json"
	"io"
	"sort"
)

type Topology struct {
	Type      string     `json:"type"`
	Transform *Transform `json:"transform,omitempty"`

	BoundingBox []float64            `json:"bbox,omitempty"`
	Objects     map[string]*Geometry `json:"objects"`
	Arcs        [][][]float64        `json:"arcs"`
}

// Transform holds the quantization parameters of a topology. A nil
// *Transform means the arcs already hold absolute coordinates.
type Transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

// NewTransform validates a scale/translate pair. Both must be given or
// neither; with neither, the result is nil.
func NewTransform(scale, translate []float64) (*Transform, error) {
	if scale == nil && translate == nil {
		return nil, nil
	}
	if scale == nil || translate == nil {
		return nil, &InvalidTransformError{Reason: "scale and translate must be provided together"}
	}
	if len(scale) != 2 {
		return nil, &InvalidTransformError{Reason: "scale must have two values"}
	}
	if len(translate) != 2 {
		return nil, &InvalidTransformError{Reason: "translate must have two values"}
	}

	return &Transform{
		Scale:     [2]float64{scale[0], scale[1]},
		Translate: [2]float64{translate[0], translate[1]},
	}, nil
}

// UnmarshalJSON decodes a transform, rejecting one that only carries
// half of its parameters.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var raw struct {
		Scale     []float64 `json:"scale"`
		Translate []float64 `json:"translate"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	tr, err := NewTransform(raw.Scale, raw.Translate)
	if err != nil {
		return err
	}
	if tr == nil {
		return &InvalidTransformError{Reason: "empty transform"}
	}
	*t = *tr
	return nil
}

// Parse reads a TopoJSON document.
func Parse(in io.Reader) (*Topology, error) {
	topo := &Topology{}
	err := json.NewDecoder(in).Decode(topo)
	if err != nil {
		return nil, err
	}
	return topo, nil
}

// MarshalJSON converts the topology object into the proper JSON.
func (t *Topology) MarshalJSON() ([]byte, error) {
	type topology Topology
	out := topology(*t)
	out.Type = "Topology"
	if out.Objects == nil {
		out.Objects = make(map[string]*Geometry) // TopoJSON requires the objects attribute
	}
	if out.Arcs == nil {
		out.Arcs = make([][][]float64, 0) // TopoJSON requires the arcs attribute to be at least []
	}
	return json.Marshal(out)
}

// Layers returns the object names in sorted order.
func (t *Topology) Layers() []string {
	names := make([]string, 0, len(t.Objects))
	for name := range t.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Geometry builds the geometry of an object using this topology's arcs
// and transform.
func (t *Topology) Geometry(obj *Geometry) (*Object, error) {
	return BuildGeometry(obj, t.Arcs, t.Transform)
}
