package math

// Mat4 represents a 4x4 row-major matrix
type Mat4 [4][4]float32

// Identity returns the 4x4 identity matrix
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix that shifts points by v
func Translation(v Vec3) Mat4 {
	return Mat4{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m*other.
// Not commutative: the right-hand matrix is applied to points first.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// Flat returns the matrix elements flattened in row-major order,
// in the layout handed to glUniformMatrix4fv.
func (m Mat4) Flat() [16]float32 {
	var flat [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			flat[i*4+j] = m[i][j]
		}
	}
	return flat
}
