package topojson

import (
	"encoding/json"
	"math"
)

// ArcRefs is a nested structure of arc references. A flat value lists the
// arcs of one line or ring, a nested value holds the rings of a polygon,
// the lines of a multi line or the polygons of a multi polygon.
type ArcRefs struct {
	Line   []int
	Nested []ArcRefs
}

// Line builds flat arc references.
func Line(refs ...int) ArcRefs {
	if refs == nil {
		refs = []int{}
	}
	return ArcRefs{Line: refs}
}

// Nest groups arc references one level deeper.
func Nest(children ...ArcRefs) ArcRefs {
	if children == nil {
		children = []ArcRefs{}
	}
	return ArcRefs{Nested: children}
}

func (r ArcRefs) IsLine() bool {
	return r.Nested == nil
}

// Depth returns the nesting depth: 1 for a line, 2 for a polygon, 3 for a
// multi polygon. Empty nested levels count as a single level.
func (r ArcRefs) Depth() int {
	if r.IsLine() {
		return 1
	}
	if len(r.Nested) == 0 {
		return 2
	}
	return r.Nested[0].Depth() + 1
}

func (r ArcRefs) MarshalJSON() ([]byte, error) {
	if r.IsLine() {
		if r.Line == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(r.Line)
	}
	return json.Marshal(r.Nested)
}

// UnmarshalJSON decodes arc references of any depth, inferring the shape
// from the first element of each level.
func (r *ArcRefs) UnmarshalJSON(data []byte) error {
	var v interface{}
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	refs, err := ParseArcRefs(v)
	if err != nil {
		return err
	}
	*r = refs
	return nil
}

// ParseArcRefs converts a decoded JSON value into arc references. Each
// level must be either all integers or all lists.
func ParseArcRefs(data interface{}) (ArcRefs, error) {
	items, ok := data.([]interface{})
	if !ok {
		return ArcRefs{}, &MalformedTopologyError{Value: data, Reason: "arcs is not a list"}
	}
	if len(items) == 0 {
		return Line(), nil
	}

	switch items[0].(type) {
	case float64, json.Number, int:
		refs := make([]int, 0, len(items))
		for _, item := range items {
			i, err := arcIndex(item)
			if err != nil {
				return ArcRefs{}, err
			}
			refs = append(refs, i)
		}
		return Line(refs...), nil
	case []interface{}:
		children := make([]ArcRefs, 0, len(items))
		for _, item := range items {
			if _, ok := item.([]interface{}); !ok {
				return ArcRefs{}, &MalformedTopologyError{Value: item, Reason: "mixed arc references and lists"}
			}
			child, err := ParseArcRefs(item)
			if err != nil {
				return ArcRefs{}, err
			}
			children = append(children, child)
		}
		return Nest(children...), nil
	default:
		return ArcRefs{}, &MalformedTopologyError{Value: items[0], Reason: "arc reference is neither an integer nor a list"}
	}
}

// parseArcRefsDepth parses arc references that must have exactly the
// given nesting depth.
func parseArcRefsDepth(data interface{}, depth int) (ArcRefs, error) {
	if depth == 1 {
		items, ok := data.([]interface{})
		if !ok {
			return ArcRefs{}, &MalformedTopologyError{Value: data, Reason: "arcs is not a list"}
		}
		refs := make([]int, 0, len(items))
		for _, item := range items {
			i, err := arcIndex(item)
			if err != nil {
				return ArcRefs{}, err
			}
			refs = append(refs, i)
		}
		return Line(refs...), nil
	}

	items, ok := data.([]interface{})
	if !ok {
		return ArcRefs{}, &MalformedTopologyError{Value: data, Reason: "arcs is not a list"}
	}
	children := make([]ArcRefs, 0, len(items))
	for _, item := range items {
		child, err := parseArcRefsDepth(item, depth-1)
		if err != nil {
			return ArcRefs{}, err
		}
		children = append(children, child)
	}
	return Nest(children...), nil
}

func arcIndex(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, &MalformedTopologyError{Value: v, Reason: "arc reference is not an integer"}
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &MalformedTopologyError{Value: v, Reason: "arc reference is not an integer"}
		}
		return int(i), nil
	default:
		return 0, &MalformedTopologyError{Value: v, Reason: "arc reference is neither an integer nor a list"}
	}
}
