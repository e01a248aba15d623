package math

import (
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-5

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected float32
	}{
		{"3-4-5 triangle", NewVec3(3, 4, 0), 5},
		{"unit x", NewVec3(1, 0, 0), 1},
		{"negative components", NewVec3(-3, 0, -4), 5},
		{"zero vector", NewVec3(0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Length()
			if math32.Abs(result-tt.expected) > tolerance {
				t.Errorf("Expected length %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"axis aligned", NewVec3(0, 0, -1)},
		{"arbitrary direction", NewVec3(1, 2, 3)},
		{"tiny components", NewVec3(0.001, -0.002, 0.0005)},
		{"large components", NewVec3(-1234, 5678, 910)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()
			if math32.Abs(result.Length()-1) > tolerance {
				t.Errorf("Expected unit length after normalize, got %v", result.Length())
			}
		})
	}
}

func TestVec3_Cross_AntiCommutative(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
	}{
		{"basis vectors", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"arbitrary vectors", NewVec3(1, 2, 3), NewVec3(-4, 5, 0.5)},
		{"parallel vectors", NewVec3(2, 2, 2), NewVec3(4, 4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := tt.a.Cross(tt.b)
			ba := tt.b.Cross(tt.a)

			if ab.Add(ba).Length() > tolerance {
				t.Errorf("Expected a×b = -(b×a), got %v and %v", ab, ba)
			}
		})
	}
}

func TestVec3_Cross_SelfIsZero(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(1, 2, 3),
		NewVec3(-0.5, 0.25, -9),
	}

	for _, v := range vectors {
		if result := v.Cross(v); result.Length() > tolerance {
			t.Errorf("Expected v×v = (0,0,0) for %v, got %v", v, result)
		}
	}
}

func TestVec3_Cross_RightHanded(t *testing.T) {
	// x × y = z in a right-handed system
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	result := x.Cross(y)
	if result.Subtract(z).Length() > tolerance {
		t.Errorf("Expected x×y = z, got %v", result)
	}
}

func TestVec3_Cross_OrthogonalToInputs(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)

	c := a.Cross(b)
	if math32.Abs(c.Dot(a)) > tolerance || math32.Abs(c.Dot(b)) > tolerance {
		t.Errorf("Expected cross product orthogonal to inputs, dots: %v, %v", c.Dot(a), c.Dot(b))
	}
}
