package app

import (
	"testing"

	"github.com/df07/go-gl-sandbox/pkg/math"
)

func TestQuadPoints(t *testing.T) {
	points := quadPoints()

	expected := [4]math.Vec3{
		math.NewVec3(-0.5, -0.5, 0),
		math.NewVec3(-0.5, 0.5, 0),
		math.NewVec3(0.5, 0.5, 0),
		math.NewVec3(0.5, -0.5, 0),
	}
	if points != expected {
		t.Errorf("Expected quad corners %v, got %v", expected, points)
	}
}

func TestQuadGeometryConsistency(t *testing.T) {
	if len(quadVertices) != 4*6 {
		t.Errorf("Expected 4 vertices of 6 floats, got %d floats", len(quadVertices))
	}
	if len(quadIndices) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(quadIndices))
	}
	for _, idx := range quadIndices {
		if idx > 3 {
			t.Errorf("Index %d out of range for 4 vertices", idx)
		}
	}
}
