// Package overlay formats live vector/matrix state into labeled, colored
// lines of text for the debug window to lay out.
package overlay

import (
	"fmt"

	"github.com/df07/go-gl-sandbox/pkg/camera"
	"github.com/df07/go-gl-sandbox/pkg/math"
)

// Color is an 8-bit RGBA text color
type Color struct {
	R, G, B, A uint8
}

var (
	Green  = Color{128, 255, 0, 255}
	Orange = Color{255, 128, 0, 255}
	Blue   = Color{0, 128, 255, 255}
)

// Line is one positioned block of debug text. Text may span multiple
// rows (matrices render as a brace block).
type Line struct {
	Text  string
	Color Color
	X, Y  int32
}

// rowHeight is the vertical spacing between successive overlay rows
const rowHeight = 30

// FormatFloat renders a labeled scalar, value padded to 9.3f
func FormatFloat(name string, value float32) string {
	return fmt.Sprintf("%s = %9.3f", name, value)
}

// FormatVec3 renders a labeled vector as a brace-enclosed component list
func FormatVec3(name string, v math.Vec3) string {
	return fmt.Sprintf("%s = {%9.3f, %9.3f, %9.3f}", name, v.X, v.Y, v.Z)
}

// FormatMat4 renders a labeled matrix as a four-row brace block
func FormatMat4(name string, m math.Mat4) string {
	return fmt.Sprintf("%s = {\n"+
		"    %9.3f, %9.3f, %9.3f, %9.3f,\n"+
		"    %9.3f, %9.3f, %9.3f, %9.3f,\n"+
		"    %9.3f, %9.3f, %9.3f, %9.3f,\n"+
		"    %9.3f, %9.3f, %9.3f, %9.3f\n"+
		"}", name,
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3])
}

// Snapshot builds the ordered debug lines for one frame: the quad corner
// points, the world-up axis, the look angles, the camera basis and the
// assembled view matrix.
func Snapshot(points [4]math.Vec3, cam *camera.Camera) []Line {
	return []Line{
		{Text: FormatVec3("points[0]", points[0]), Color: Green, X: 10, Y: 10},
		{Text: FormatVec3("points[1]", points[1]), Color: Green, X: 10, Y: 10 + 1*rowHeight},
		{Text: FormatVec3("points[2]", points[2]), Color: Green, X: 10, Y: 10 + 2*rowHeight},
		{Text: FormatVec3("points[3]", points[3]), Color: Green, X: 10, Y: 10 + 3*rowHeight},
		{Text: FormatVec3("world_up ", camera.WorldUp), Color: Green, X: 10, Y: 10 + 4*rowHeight},
		{Text: FormatFloat("yaw_deg", cam.Yaw), Color: Orange, X: 10, Y: 10 + 5*rowHeight},
		{Text: FormatFloat("pitch_deg", cam.Pitch), Color: Orange, X: 286, Y: 10 + 5*rowHeight},
		{Text: FormatVec3("camera_pos  ", cam.Position), Color: Blue, X: 10, Y: 10 + 6*rowHeight},
		{Text: FormatVec3("camera_dir  ", cam.Direction), Color: Blue, X: 10, Y: 10 + 7*rowHeight},
		{Text: FormatVec3("camera_right", cam.Right), Color: Blue, X: 10, Y: 10 + 8*rowHeight},
		{Text: FormatVec3("camera_up   ", cam.Up), Color: Blue, X: 10, Y: 10 + 9*rowHeight},
		{Text: FormatMat4("look_at", cam.View), Color: Orange, X: 10, Y: 10 + 10*rowHeight},
	}
}
