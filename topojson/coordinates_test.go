package topojson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func TestAssembleDedupAtJoin(t *testing.T) {
	is := is.New(t)

	arcs := [][][]float64{
		{{0, 0}, {1, 0}},
		{{1, 0}, {0, 1}},
	}

	c, err := Assemble(Line(0, 1), arcs, nil)
	is.NoErr(err)
	is.True(c.IsLine())
	is.Equal(c.Points, [][]float64{{0, 0}, {1, 0}, {0, 1}})
}

func TestAssembleSingleArc(t *testing.T) {
	is := is.New(t)

	topo := loadSample(is)
	c, err := Assemble(Line(0), topo.Arcs, nil)
	is.NoErr(err)
	is.Equal(c.Points, [][]float64{{0, 0}, {1, 0}})
}

func TestAssembleReversedArc(t *testing.T) {
	is := is.New(t)

	arcs := [][][]float64{
		{{0, 0}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}},
	}

	c, err := Assemble(Line(^0), arcs, nil)
	is.NoErr(err)
	is.Equal(c.Points, [][]float64{{1, 1}, {1, 0}, {0, 0}})

	// Reversed arcs join like any other
	c, err = Assemble(Line(1, ^0), arcs, nil)
	is.NoErr(err)
	is.Equal(c.Points, [][]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}})
}

// Reversing a forward decode equals decoding the complemented reference,
// with and without a transform.
func TestAssembleReverseSymmetry(t *testing.T) {
	is := is.New(t)

	arcs := [][][]float64{
		{{4, 2}, {1, 3}, {-2, 5}, {7, -1}},
		{{0, 0}, {3, 3}},
	}

	for _, tr := range []*Transform{nil, sampleTransform()} {
		for index := range arcs {
			forward, err := DecodeArc(arcs[index], tr)
			is.NoErr(err)
			reverse(forward)

			c, err := Assemble(Line(^index), arcs, tr)
			is.NoErr(err)
			is.Equal(c.Points, forward)
		}
	}
}

func TestAssembleDepth(t *testing.T) {
	is := is.New(t)

	topo := loadSample(is)

	line, err := Assemble(Line(0), topo.Arcs, nil)
	is.NoErr(err)
	is.Equal(line.Depth(), 1)

	polygon, err := Assemble(Nest(Line(0, 1, 2)), topo.Arcs, nil)
	is.NoErr(err)
	is.Equal(polygon.Depth(), 2)
	is.Equal(len(polygon.Children), 1)

	multi, err := Assemble(Nest(Nest(Line(0, 1, 2))), topo.Arcs, nil)
	is.NoErr(err)
	is.Equal(multi.Depth(), 3)
	is.Equal(len(multi.Children), 1)
	is.Equal(len(multi.Children[0].Children), 1)
	is.Equal(multi.Children[0].Children[0].Points, polygon.Children[0].Points)
}

func TestAssembleOutOfRange(t *testing.T) {
	is := is.New(t)

	arcs := [][][]float64{{{0, 0}}, {{1, 1}}, {{2, 2}}}

	_, err := Assemble(Line(100), arcs, nil)
	is.Err(err)

	var outOfRange *ArcIndexOutOfRangeError
	is.True(errors.As(err, &outOfRange))
	is.Equal(outOfRange.Index, 100)
	is.Equal(outOfRange.Len, 3)

	// Reversed references are checked after complementing
	_, err = Assemble(Nest(Line(0, ^3)), arcs, nil)
	is.True(errors.As(err, &outOfRange))
	is.Equal(outOfRange.Ref, -4)
	is.Equal(outOfRange.Index, 3)
}

func TestAssembleEmpty(t *testing.T) {
	is := is.New(t)

	c, err := Assemble(Line(), nil, nil)
	is.NoErr(err)
	is.True(c.IsLine())
	is.Equal(len(c.Points), 0)

	c, err = Assemble(Nest(), nil, nil)
	is.NoErr(err)
	is.False(c.IsLine())
	is.Equal(len(c.Children), 0)

	b, err := json.Marshal(c)
	is.NoErr(err)
	is.Equal(string(b), "[]")
}

func TestAssembleMarshalJSON(t *testing.T) {
	is := is.New(t)

	topo := loadSample(is)
	c, err := Assemble(Nest(Line(0, 1, 2)), topo.Arcs, nil)
	is.NoErr(err)

	b, err := json.Marshal(c)
	is.NoErr(err)
	is.Equal(string(b), "[[[0,0],[1,0],[0,1],[0,0]]]")
}

func TestParseArcRefs(t *testing.T) {
	is := is.New(t)

	var v interface{}
	is.NoErr(json.Unmarshal([]byte(`[[[0, 1, -3]], [[4], []]]`), &v))

	refs, err := ParseArcRefs(v)
	is.NoErr(err)
	is.Equal(refs, Nest(Nest(Line(0, 1, -3)), Nest(Line(4), Line())))
	is.Equal(refs.Depth(), 3)

	b, err := json.Marshal(refs)
	is.NoErr(err)
	is.Equal(string(b), "[[[0,1,-3]],[[4],[]]]")
}

func TestParseArcRefsMalformed(t *testing.T) {
	is := is.New(t)

	var malformed *MalformedTopologyError
	for _, in := range []string{
		`["a", "b"]`,
		`[0, [1]]`,
		`[[0], 1]`,
		`[1.5]`,
		`[{"arc": 0}]`,
		`3`,
	} {
		var v interface{}
		is.NoErr(json.Unmarshal([]byte(in), &v))

		_, err := ParseArcRefs(v)
		is.True(errors.As(err, &malformed))
	}
}
