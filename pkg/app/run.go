package app

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/df07/go-gl-sandbox/pkg/camera"
	"github.com/df07/go-gl-sandbox/pkg/math"
	"github.com/df07/go-gl-sandbox/pkg/overlay"
)

// Run drives the synchronous per-frame loop: poll input, update the
// camera, draw the quad in the main window and the state overlay in the
// info window. Returns nil on a quit request (window close or Escape).
func (c *Context) Run() error {
	cam := camera.New()
	points := quadPoints()
	dragging := false

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				// Relative motion orbits the camera only while the
				// left button is held
				if dragging {
					cam.ProcessDrag(float32(e.XRel), float32(e.YRel))
				}
			}
		}

		if err := c.drawScene(cam); err != nil {
			return err
		}
		if err := c.drawOverlay(points, cam); err != nil {
			return err
		}
	}
}

// drawScene renders the quad with the camera's current view matrix
func (c *Context) drawScene(cam *camera.Camera) error {
	if err := c.mainWindow.GLMakeCurrent(c.glContext); err != nil {
		return fmt.Errorf("failed to make GL context current: %v", err)
	}

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(c.program)
	view := cam.View.Flat()
	gl.UniformMatrix4fv(c.viewUniform, 1, false, &view[0])
	gl.BindVertexArray(c.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, 0)

	c.mainWindow.GLSwap()
	return nil
}

// drawOverlay renders the labeled state lines into the info window
func (c *Context) drawOverlay(points [4]math.Vec3, cam *camera.Camera) error {
	if err := c.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("failed to set overlay draw color: %v", err)
	}
	if err := c.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear overlay: %v", err)
	}

	for _, line := range overlay.Snapshot(points, cam) {
		if err := c.drawText(line); err != nil {
			return err
		}
	}

	c.renderer.Present()
	return nil
}

// drawText blits one overlay line through a transient texture
func (c *Context) drawText(line overlay.Line) error {
	color := sdl.Color{R: line.Color.R, G: line.Color.G, B: line.Color.B, A: line.Color.A}

	surface, err := c.font.RenderUTF8BlendedWrapped(line.Text, color, 0)
	if err != nil {
		return fmt.Errorf("failed to render overlay text: %v", err)
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("failed to create texture from text surface: %v", err)
	}
	defer texture.Destroy()

	dst := sdl.Rect{X: line.X, Y: line.Y, W: surface.W, H: surface.H}
	if err := c.renderer.Copy(texture, nil, &dst); err != nil {
		return fmt.Errorf("failed to copy text texture: %v", err)
	}
	return nil
}
