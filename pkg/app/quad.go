package app

import "github.com/df07/go-gl-sandbox/pkg/math"

// quadVertices is the static quad: interleaved position (xyz) and
// color (rgb) per corner.
var quadVertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	-0.5, 0.5, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.0, 1.0, 0.0, 1.0,
}

// quadIndices splits the quad into two triangles
var quadIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

// quadPoints returns the corner positions for the debug overlay
func quadPoints() [4]math.Vec3 {
	var points [4]math.Vec3
	for i := range points {
		points[i] = math.NewVec3(quadVertices[i*6], quadVertices[i*6+1], quadVertices[i*6+2])
	}
	return points
}
