package topojson

import "fmt"

// MalformedTopologyError is returned when an arc reference structure or a
// position does not have the expected shape.
type MalformedTopologyError struct {
	Value  interface{}
	Reason string
}

func (e *MalformedTopologyError) Error() string {
	return fmt.Sprintf("malformed topology: %s, got %v", e.Reason, e.Value)
}

// ArcIndexOutOfRangeError is returned when an arc reference resolves to an
// index outside of the arc table.
type ArcIndexOutOfRangeError struct {
	Ref   int // The reference as it appears in the input, possibly negative
	Index int
	Len   int
}

func (e *ArcIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("arc reference %d resolves to index %d, topology has %d arcs", e.Ref, e.Index, e.Len)
}

type InvalidTransformError struct {
	Reason string
}

func (e *InvalidTransformError) Error() string {
	return "invalid transform: " + e.Reason
}
