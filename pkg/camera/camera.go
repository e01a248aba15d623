package camera

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-gl-sandbox/pkg/math"
)

// pitchLimit keeps the view direction away from world-up, where the
// right-vector cross product degenerates toward zero.
const pitchLimit = 89.0

// WorldUp is the fixed up axis used to derive the camera basis
var WorldUp = math.NewVec3(0, 1, 0)

// Camera is a free-look camera orbited by mouse drag. Yaw and pitch are
// stored in degrees; Direction, Right and Up stay mutually orthonormal
// after every update.
type Camera struct {
	Position  math.Vec3
	Direction math.Vec3
	Right     math.Vec3
	Up        math.Vec3
	Yaw       float32
	Pitch     float32
	View      math.Mat4
}

// New creates a camera at (0,0,3) looking down the negative Z axis
func New() *Camera {
	c := &Camera{
		Position:  math.NewVec3(0, 0, 3),
		Direction: math.NewVec3(0, 0, -1),
	}
	c.rebuild()
	return c
}

// ProcessDrag applies relative mouse motion to the look angles and
// recomputes the basis vectors and view matrix. dx and dy are pixel
// deltas since the previous motion event; one pixel is one degree.
func (c *Camera) ProcessDrag(dx, dy float32) {
	c.Yaw += dx

	c.Pitch -= dy
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	} else if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}

	yaw := degToRad(c.Yaw)
	pitch := degToRad(c.Pitch)

	c.Direction = math.NewVec3(
		math32.Sin(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		-math32.Cos(yaw)*math32.Cos(pitch),
	).Normalize()

	c.rebuild()
}

// rebuild derives Right and Up from Direction and reassembles the view
// matrix: points are translated into camera-relative space first, then
// rotated into the camera axes.
func (c *Camera) rebuild() {
	c.Right = c.Direction.Cross(WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Direction)

	rotation := math.Mat4{
		{c.Right.X, c.Right.Y, c.Right.Z, 0},
		{c.Up.X, c.Up.Y, c.Up.Z, 0},
		{c.Direction.X, c.Direction.Y, c.Direction.Z, 0},
		{0, 0, 0, 1},
	}
	translation := math.Translation(c.Position.Negate())

	c.View = rotation.Multiply(translation)
}

func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
