package topojson

import "encoding/json"

// Coordinates is the result of assembling arc references. Its nesting
// mirrors the references it was built from: a line holds Points, every
// other level holds Children.
type Coordinates struct {
	Points   [][]float64
	Children []Coordinates
}

func (c Coordinates) IsLine() bool {
	return c.Children == nil
}

func (c Coordinates) Depth() int {
	if c.IsLine() {
		return 1
	}
	if len(c.Children) == 0 {
		return 2
	}
	return c.Children[0].Depth() + 1
}

// MarshalJSON writes the coordinates as nested GeoJSON arrays.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	if c.IsLine() {
		if c.Points == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.Points)
	}
	return json.Marshal(c.Children)
}

// Lines returns the children of a depth 2 structure, such as the rings of a
// polygon.
func (c Coordinates) Lines() ([][][]float64, error) {
	if c.IsLine() {
		return nil, &MalformedTopologyError{Value: c.Points, Reason: "expected a list of lines"}
	}

	lines := make([][][]float64, 0, len(c.Children))
	for _, child := range c.Children {
		if !child.IsLine() {
			return nil, &MalformedTopologyError{Value: child.Children, Reason: "expected a line"}
		}
		lines = append(lines, child.Points)
	}
	return lines, nil
}

// Polygons returns the children of a depth 3 structure.
func (c Coordinates) Polygons() ([][][][]float64, error) {
	if c.IsLine() {
		return nil, &MalformedTopologyError{Value: c.Points, Reason: "expected a list of polygons"}
	}

	polygons := make([][][][]float64, 0, len(c.Children))
	for _, child := range c.Children {
		rings, err := child.Lines()
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, rings)
	}
	return polygons, nil
}

// Assemble resolves arc references into coordinates. Consecutive arcs of a
// line share their boundary point, which is only kept once. Negative
// references select arc ^ref, traversed in reverse.
func Assemble(refs ArcRefs, arcs [][][]float64, t *Transform) (Coordinates, error) {
	if !refs.IsLine() {
		children := make([]Coordinates, 0, len(refs.Nested))
		for _, child := range refs.Nested {
			c, err := Assemble(child, arcs, t)
			if err != nil {
				return Coordinates{}, err
			}
			children = append(children, c)
		}
		return Coordinates{Children: children}, nil
	}

	points := make([][]float64, 0)
	for i, ref := range refs.Line {
		index := ref
		if ref < 0 {
			index = ^ref
		}
		if index >= len(arcs) {
			return Coordinates{}, &ArcIndexOutOfRangeError{Ref: ref, Index: index, Len: len(arcs)}
		}

		decoded, err := DecodeArc(arcs[index], t)
		if err != nil {
			return Coordinates{}, err
		}
		if ref < 0 {
			reverse(decoded)
		}

		if i > 0 && len(decoded) > 0 {
			decoded = decoded[1:]
		}
		points = append(points, decoded...)
	}

	return Coordinates{Points: points}, nil
}
