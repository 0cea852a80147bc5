package topojson

// DecodeArc converts an arc into absolute coordinates. With a transform,
// the arc is delta-encoded: positions are summed up and then scaled and
// translated. Without one, the positions are copied unchanged.
//
// Dimensions beyond x and y are copied as-is.
func DecodeArc(arc [][]float64, t *Transform) ([][]float64, error) {
	out := make([][]float64, len(arc))

	if t == nil {
		for i, p := range arc {
			if len(p) < 2 {
				return nil, &MalformedTopologyError{Value: p, Reason: "position needs at least two coordinates"}
			}
			out[i] = append([]float64(nil), p...)
		}
		return out, nil
	}

	a, b := 0.0, 0.0
	for i, p := range arc {
		if len(p) < 2 {
			return nil, &MalformedTopologyError{Value: p, Reason: "position needs at least two coordinates"}
		}
		a += p[0]
		b += p[1]

		pt := make([]float64, len(p))
		pt[0] = t.Scale[0]*a + t.Translate[0]
		pt[1] = t.Scale[1]*b + t.Translate[1]
		copy(pt[2:], p[2:])
		out[i] = pt
	}
	return out, nil
}

// DecodePosition converts a quantized point position. Unlike arcs, point
// positions are not delta-encoded.
func DecodePosition(p []float64, t *Transform) ([]float64, error) {
	if len(p) < 2 {
		return nil, &MalformedTopologyError{Value: p, Reason: "position needs at least two coordinates"}
	}

	out := append([]float64(nil), p...)
	if t != nil {
		out[0] = t.Scale[0]*p[0] + t.Translate[0]
		out[1] = t.Scale[1]*p[1] + t.Translate[1]
	}
	return out, nil
}

func reverse(coords [][]float64) {
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
}
